package cookie

import (
	"errors"
	"net/textproto"
)

const (
	// HeaderSetCookie is the response header carrying cookies.
	HeaderSetCookie = "Set-Cookie"
	// HeaderCookie is the request header carrying cookies.
	HeaderCookie = "Cookie"
)

// Header represents the key-value pairs in an HTTP header.
// The keys should be in canonical form, as returned by
// textproto.CanonicalMIMEHeaderKey.
type Header map[string][]string

// Add adds the key, value pair to the header.
// It appends to any existing values associated with key.
func (h Header) Add(key, value string) {
	textproto.MIMEHeader(h).Add(key, value)
}

// Set sets the header entries associated with key to the
// single element value.
func (h Header) Set(key, value string) {
	textproto.MIMEHeader(h).Set(key, value)
}

// Get gets the first value associated with the given key.
// If there are no values associated with the key, Get returns "".
func (h Header) Get(key string) string {
	return textproto.MIMEHeader(h).Get(key)
}

// Values returns all values associated with the given key.
// The returned slice is not a copy.
func (h Header) Values(key string) []string {
	return textproto.MIMEHeader(h).Values(key)
}

// Del deletes the values associated with key.
func (h Header) Del(key string) {
	textproto.MIMEHeader(h).Del(key)
}

// SetCookie adds a Set-Cookie entry for c.
func (h Header) SetCookie(c *Cookie) {
	h.Add(HeaderSetCookie, c.HeaderValue())
}

// AddCookie appends rc to the Cookie header, creating it if needed.
func (h Header) AddCookie(rc RequestCookie) {
	if v := h.Get(HeaderCookie); v != "" {
		h.Set(HeaderCookie, v+headerSeparator+rc.String())
		return
	}
	h.Set(HeaderCookie, rc.String())
}

// RequestCookies returns the pairs of every Cookie header, in order.
func (h Header) RequestCookies() []RequestCookie {
	var cookies []RequestCookie
	for _, v := range h.Values(HeaderCookie) {
		cookies = append(cookies, ParseCookieHeader(v)...)
	}
	return cookies
}

// ParseHeader parses every Set-Cookie value of h. Values that fail to parse
// are skipped and logged at debug level; their errors are joined into the
// returned error while the valid cookies are still returned.
func (p *Parser) ParseHeader(h Header) ([]*Cookie, error) {
	values := h.Values(HeaderSetCookie)
	cookies := make([]*Cookie, 0, len(values))
	var errs []error
	for _, v := range values {
		c, err := p.Parse(v)
		if err != nil {
			if p.config.Logger != nil {
				if event := p.config.Logger.Debug(); event != nil {
					event.Err(err).Str("value", v).Msg("skipping Set-Cookie")
				}
			}
			errs = append(errs, err)
			continue
		}
		cookies = append(cookies, c)
	}
	return cookies, errors.Join(errs...)
}
