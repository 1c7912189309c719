package totp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	uriScheme = "otpauth"
	uriType   = "totp"
)

// GetTOTPURI builds an otpauth:// URI understood by authenticator apps.
// Parameters equal to the defaults are still written out so the URI is explicit.
func GetTOTPURI(p Params) (string, error) {
	p, err := p.Normalize()
	if err != nil {
		return "", err
	}

	label := p.AccountName
	if p.Issuer != "" {
		label = p.Issuer + ":" + p.AccountName
	}

	q := url.Values{}
	q.Set("secret", p.Secret)
	if p.Issuer != "" {
		q.Set("issuer", p.Issuer)
	}
	q.Set("algorithm", string(p.Algorithm))
	q.Set("digits", strconv.Itoa(p.Digits))
	q.Set("period", strconv.Itoa(p.Period))

	u := url.URL{
		Scheme:   uriScheme,
		Host:     uriType,
		Path:     "/" + label,
		RawQuery: q.Encode(),
	}
	return u.String(), nil
}

// ParseURI reads an otpauth://totp/ URI into Params.
// Missing algorithm, digits and period take the defaults.
func ParseURI(raw string) (Params, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Params{}, ErrURIRequired
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if !strings.EqualFold(u.Scheme, uriScheme) {
		return Params{}, fmt.Errorf("%w: scheme %q", ErrInvalidURI, u.Scheme)
	}
	if !strings.EqualFold(u.Host, uriType) {
		return Params{}, fmt.Errorf("%w: %q", ErrInvalidType, u.Host)
	}

	q := u.Query()
	p := Params{Secret: q.Get("secret")}

	label := strings.TrimPrefix(u.Path, "/")
	if issuer, account, ok := strings.Cut(label, ":"); ok {
		p.Issuer = strings.TrimSpace(issuer)
		p.AccountName = strings.TrimSpace(account)
	} else {
		p.AccountName = strings.TrimSpace(label)
	}
	if issuer := q.Get("issuer"); issuer != "" {
		p.Issuer = issuer
	}

	if p.Algorithm, err = ParseAlgorithm(q.Get("algorithm")); err != nil {
		return Params{}, err
	}
	if p.Digits, err = parseIntParam(q, "digits"); err != nil {
		return Params{}, ErrInvalidDigits
	}
	if p.Period, err = parseIntParam(q, "period"); err != nil {
		return Params{}, ErrInvalidPeriod
	}

	return p.Normalize()
}

func parseIntParam(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: %q", name, v)
	}
	return n, nil
}
