package cookie

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	attrExpires  = "expires"
	attrMaxAge   = "max-age"
	attrDomain   = "domain"
	attrPath     = "path"
	attrSameSite = "samesite"
	attrSecure   = "secure"
	attrHTTPOnly = "httponly"

	sameSiteStrict = "strict"
	sameSiteLax    = "lax"
	sameSiteNone   = "none"
)

// maxAgeLimit is the largest Max-Age, in seconds, that fits a time.Duration.
const maxAgeLimit = math.MaxInt64 / int64(time.Second)

// Directive is one attribute of a Set-Cookie value. The set of
// implementations is closed: ExpiresDirective, MaxAgeDirective,
// DomainDirective, PathDirective, SameSiteDirective, SecureDirective,
// HttpOnlyDirective and ExtensionDirective.
type Directive interface {
	apply(c *Cookie)
}

// ExpiresDirective is a parsed Expires attribute.
type ExpiresDirective struct{ Time time.Time }

// MaxAgeDirective is a parsed Max-Age attribute.
type MaxAgeDirective struct{ Duration time.Duration }

// DomainDirective is a Domain attribute as written, leading dot included.
type DomainDirective struct{ Value string }

// PathDirective is a Path attribute.
type PathDirective struct{ Value string }

// SameSiteDirective is a parsed SameSite attribute.
type SameSiteDirective struct{ Mode SameSite }

// SecureDirective is the Secure flag.
type SecureDirective struct{}

// HttpOnlyDirective is the HttpOnly flag.
type HttpOnlyDirective struct{}

// ExtensionDirective is any attribute not recognized above.
type ExtensionDirective struct {
	Key string
	Extension
}

func (d ExpiresDirective) apply(c *Cookie) { c.Expires = d.Time }

func (d MaxAgeDirective) apply(c *Cookie) { c.SetMaxAge(d.Duration) }

func (d DomainDirective) apply(c *Cookie) { c.Domain = strings.TrimPrefix(d.Value, ".") }

func (d PathDirective) apply(c *Cookie) { c.Path = d.Value }

func (d SameSiteDirective) apply(c *Cookie) { c.SameSite = d.Mode }

func (SecureDirective) apply(c *Cookie) { c.Secure = true }

func (HttpOnlyDirective) apply(c *Cookie) { c.HttpOnly = true }

func (d ExtensionDirective) apply(c *Cookie) {
	if c.Extensions == nil {
		c.Extensions = make(map[string]Extension)
	}
	c.Extensions[d.Key] = d.Extension
}

// ParseDirective classifies one segment found between ';' delimiters of a
// Set-Cookie value. Attribute names are case-insensitive.
func ParseDirective(segment string) (Directive, error) {
	rawKey, rawValue, hasValue := strings.Cut(segment, "=")
	key := lowerASCII(strings.TrimSpace(rawKey))
	if !hasValue {
		switch key {
		case attrSecure:
			return SecureDirective{}, nil
		case attrHTTPOnly:
			return HttpOnlyDirective{}, nil
		case attrDomain, attrExpires, attrMaxAge, attrPath, attrSameSite:
			return nil, newDirectiveError(key, segment, ErrDirectiveMissingValue)
		}
		return ExtensionDirective{Key: key}, nil
	}

	value := strings.TrimSpace(rawValue)
	if value == "" {
		return nil, newDirectiveError(key, segment, ErrEmptyValue)
	}

	switch key {
	case attrExpires:
		t, err := ParseHTTPDate(value)
		if err != nil {
			return nil, newDirectiveError(key, value, ErrInvalidDate)
		}
		return ExpiresDirective{Time: t}, nil
	case attrMaxAge:
		seconds, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, newDirectiveError(key, value, ErrInvalidMaxAge)
		}
		if seconds > uint64(maxAgeLimit) {
			seconds = uint64(maxAgeLimit)
		}
		return MaxAgeDirective{Duration: time.Duration(seconds) * time.Second}, nil
	case attrDomain:
		return DomainDirective{Value: value}, nil
	case attrPath:
		return PathDirective{Value: value}, nil
	case attrSameSite:
		mode, err := parseSameSite(value)
		if err != nil {
			return nil, newDirectiveError(key, value, err)
		}
		return SameSiteDirective{Mode: mode}, nil
	}
	return ExtensionDirective{Key: key, Extension: Extension{Value: value, HasValue: true}}, nil
}

func parseSameSite(value string) (SameSite, error) {
	switch lowerASCII(value) {
	case sameSiteStrict:
		return SameSiteStrict, nil
	case sameSiteLax:
		return SameSiteLax, nil
	case sameSiteNone:
		return SameSiteNone, nil
	}
	return SameSiteLax, ErrInvalidSameSite
}

// lowerASCII lower-cases ASCII letters only and leaves other bytes untouched.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
