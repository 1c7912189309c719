package totp

import "errors"

var (
	ErrSecretRequired       = errors.New("totp: secret is required")
	ErrURIRequired          = errors.New("totp: uri is required")
	ErrInvalidSecret        = errors.New("totp: secret is not valid base32")
	ErrInvalidURI           = errors.New("totp: invalid otpauth uri")
	ErrInvalidType          = errors.New("totp: otpauth uri is not of type totp")
	ErrUnsupportedAlgorithm = errors.New("totp: unsupported algorithm")
	ErrInvalidDigits        = errors.New("totp: digits must be between 1 and 10")
	ErrInvalidPeriod        = errors.New("totp: period must be between 1 second and 1 day")
	ErrInvalidTime          = errors.New("totp: time is before the unix epoch")
)
