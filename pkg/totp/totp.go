package totp

import (
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

// Algorithm is the HMAC hash used to derive codes.
type Algorithm string

const (
	AlgorithmSHA1   Algorithm = "SHA1"
	AlgorithmSHA256 Algorithm = "SHA256"
	AlgorithmSHA512 Algorithm = "SHA512"
)

// Defaults shared with authenticator apps.
const (
	DefaultAlgorithm = AlgorithmSHA1
	DefaultDigits    = 6
	DefaultPeriod    = 30

	maxDigits = 10
	maxPeriod = 24 * 60 * 60
)

// Algorithms lists the supported algorithms in form order.
var Algorithms = []Algorithm{AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512}

// ParseAlgorithm accepts algorithm names case-insensitively, with or without a dash.
// An empty name yields the default.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
	switch normalized {
	case "":
		return DefaultAlgorithm, nil
	case string(AlgorithmSHA1), string(AlgorithmSHA256), string(AlgorithmSHA512):
		return Algorithm(normalized), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

func (a Algorithm) otp() (otp.Algorithm, error) {
	switch a {
	case AlgorithmSHA1:
		return otp.AlgorithmSHA1, nil
	case AlgorithmSHA256:
		return otp.AlgorithmSHA256, nil
	case AlgorithmSHA512:
		return otp.AlgorithmSHA512, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
}

// Params describes a TOTP generator. Zero values take the defaults.
type Params struct {
	Secret      string
	Issuer      string
	AccountName string
	Algorithm   Algorithm
	Digits      int
	Period      int
}

// Normalize fills defaults, canonicalizes the secret and validates the parameters.
func (p Params) Normalize() (Params, error) {
	p.Secret = NormalizeSecret(p.Secret)
	if p.Secret == "" {
		return p, ErrSecretRequired
	}
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	if _, err := p.Algorithm.otp(); err != nil {
		return p, err
	}
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	if p.Digits < 1 || p.Digits > maxDigits {
		return p, ErrInvalidDigits
	}
	if p.Period == 0 {
		p.Period = DefaultPeriod
	}
	if p.Period < 0 || p.Period > maxPeriod {
		return p, ErrInvalidPeriod
	}
	if _, err := hotp.GenerateCodeCustom(p.Secret, 0, p.hotpOpts()); err != nil {
		return p, ErrInvalidSecret
	}
	return p, nil
}

func (p Params) hotpOpts() hotp.ValidateOpts {
	alg, _ := p.Algorithm.otp()
	return hotp.ValidateOpts{Digits: otp.Digits(p.Digits), Algorithm: alg}
}

// NormalizeSecret strips spaces, dashes and padding and upper-cases a base32 secret.
func NormalizeSecret(secret string) string {
	secret = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '=':
			return -1
		}
		return r
	}, secret)
	return strings.ToUpper(secret)
}

// Code is one generated password together with its time window.
type Code struct {
	Value     string
	Counter   uint64
	Period    time.Duration
	Remaining time.Duration
	ExpiresAt time.Time
}

// Generate derives the code valid at t. Times before the Unix epoch have no
// counter and fail with ErrInvalidTime.
func Generate(p Params, t time.Time) (Code, error) {
	p, err := p.Normalize()
	if err != nil {
		return Code{}, err
	}

	unix := t.Unix()
	if unix < 0 {
		return Code{}, ErrInvalidTime
	}
	period := int64(p.Period)
	counter := uint64(unix / period)

	value, err := hotp.GenerateCodeCustom(p.Secret, counter, p.hotpOpts())
	if err != nil {
		return Code{}, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}

	expiresAt := time.Unix(int64(counter+1)*period, 0)
	return Code{
		Value:     value,
		Counter:   counter,
		Period:    time.Duration(period) * time.Second,
		Remaining: expiresAt.Sub(t),
		ExpiresAt: expiresAt,
	}, nil
}
