package cookie

import (
	"time"
)

// SameSite is the value of the SameSite attribute.
type SameSite uint8

const (
	// SameSiteLax is the default when the attribute is absent.
	SameSiteLax SameSite = iota
	SameSiteStrict
	SameSiteNone
)

// String returns the attribute spelling of s.
func (s SameSite) String() string {
	switch s {
	case SameSiteStrict:
		return "Strict"
	case SameSiteNone:
		return "None"
	default:
		return "Lax"
	}
}

// Extension is the value of an unrecognized Set-Cookie attribute. Flag
// attributes such as "Partitioned" have HasValue set to false.
type Extension struct {
	Value    string
	HasValue bool
}

// Cookie represents an HTTP cookie as sent in the Set-Cookie header of an HTTP response.
//
// A Cookie is usually obtained from Parse. Domain and Path are empty when the
// header omitted them; callers should assign the originating host to Domain
// (see Origin) before calling Applies, since cookies without a domain never
// apply to any request.
type Cookie struct {
	Name     string // The name of the cookie
	Value    string // The value of the cookie
	Domain   string // Domain allowed to receive the cookie, without a leading dot
	Path     string // URL path allowed to receive the cookie, "/" when empty
	Expires  time.Time
	SameSite SameSite
	Secure   bool // Only sent over secure connections
	HttpOnly bool // Not exposed to scripts

	// MaxAge is only meaningful when HasMaxAge is set; Max-Age=0 is a valid value.
	MaxAge    time.Duration
	HasMaxAge bool

	// Extensions holds unrecognized attributes keyed by their lower-cased name.
	Extensions map[string]Extension

	created time.Time
	now     func() time.Time
}

// New returns a cookie with the given name and value and default attributes.
func New(name, value string) *Cookie {
	return NewWithConfig(name, value, DefaultConfig())
}

// NewWithConfig is like New but takes the creation time and clock from cfg.
func NewWithConfig(name, value string, cfg Config) *Cookie {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Cookie{
		Name:       name,
		Value:      value,
		SameSite:   SameSiteLax,
		Extensions: make(map[string]Extension),
		created:    now(),
		now:        now,
	}
}

// Created returns the instant the cookie was parsed or constructed.
func (c *Cookie) Created() time.Time {
	return c.created
}

// SetMaxAge sets the Max-Age attribute.
func (c *Cookie) SetMaxAge(d time.Duration) {
	c.MaxAge = d
	c.HasMaxAge = true
}

// ExpireTime returns the instant the cookie expires and false if it never
// does. Max-Age takes precedence over Expires. An Expires before the Unix
// epoch is treated as expired at creation.
func (c *Cookie) ExpireTime() (time.Time, bool) {
	if c.HasMaxAge {
		return c.created.Add(c.MaxAge), true
	}
	if !c.Expires.IsZero() {
		if c.Expires.Unix() < 0 {
			return c.created, true
		}
		return c.Expires, true
	}
	return time.Time{}, false
}

// Expired reports whether the cookie has expired according to its clock.
func (c *Cookie) Expired() bool {
	now := c.now
	if now == nil {
		now = time.Now
	}
	return c.ExpiredAt(now())
}

// ExpiredAt reports whether the cookie has expired at the given instant.
func (c *Cookie) ExpiredAt(now time.Time) bool {
	expires, ok := c.ExpireTime()
	return ok && expires.Before(now)
}

// PathOrDefault returns the cookie path or "/" when unset.
func (c *Cookie) PathOrDefault() string {
	if c.Path == "" {
		return "/"
	}
	return c.Path
}

// Origin assigns host as the cookie domain if the header did not set one.
func (c *Cookie) Origin(host string) *Cookie {
	if c.Domain == "" {
		c.Domain = host
	}
	return c
}

// RequestCookie returns the name/value pair sent back in a Cookie header.
func (c *Cookie) RequestCookie() RequestCookie {
	return RequestCookie{Name: c.Name, Value: c.Value}
}

// Equal reports whether both cookies have the same name, value, domain and path.
func (c *Cookie) Equal(other *Cookie) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Name == other.Name &&
		c.Value == other.Value &&
		c.Domain == other.Domain &&
		c.Path == other.Path
}

// Key identifies a cookie by name and domain.
func (c *Cookie) Key() string {
	return c.Name + ";" + c.Domain
}

// RequestCookie is a cookie as sent in the Cookie header of an HTTP request.
type RequestCookie struct {
	Name  string
	Value string
}

// Equal reports whether both cookies have the same name and value.
func (rc RequestCookie) Equal(other RequestCookie) bool {
	return rc == other
}
