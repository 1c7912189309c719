// Package totp provides RFC 6238 Time-based One-Time Password generation and
// otpauth:// URI handling, compatible with authenticator apps.
//
// HMAC computation is delegated to github.com/pquerna/otp; this package adds
// parameter validation, secret normalization, the time window of a code and a
// strict URI parser.
//
// # Basic Usage
//
//	import "github.com/matiboux/totp-online/pkg/totp"
//
//	code, err := totp.Generate(totp.Params{
//		Secret:    "JBSWY3DPEHPK3PXP",
//		Algorithm: totp.AlgorithmSHA256,
//		Digits:    8,
//		Period:    30,
//	}, time.Now())
//	if err != nil {
//		return err
//	}
//	fmt.Println(code.Value, code.Counter, code.Remaining)
//
// Zero parameters take the authenticator defaults: SHA1, 6 digits, 30 seconds.
//
// # URIs
//
//	p, err := totp.ParseURI("otpauth://totp/GitHub:alice?secret=JBSWY3DPEHPK3PXP&issuer=GitHub")
//	uri, err := totp.GetTOTPURI(p)
//
// ParseURI rejects other schemes (ErrInvalidURI), otpauth types other than totp
// (ErrInvalidType), unknown algorithms (ErrUnsupportedAlgorithm) and a missing
// secret (ErrSecretRequired).
//
// # Bounds
//
// Digits run from 1 to 10 and the period from 1 second to 1 day; zero takes the
// default in Params but is rejected in a URI. Generate fails with ErrInvalidTime
// for instants before the Unix epoch.
package totp
