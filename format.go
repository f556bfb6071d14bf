package cookie

import (
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/valyala/bytebufferpool"
)

const (
	listSeparator   = ", "
	headerSeparator = "; "
)

// String renders the cookie with its attributes separated by ", ":
//
//	name=value, Domain=d, Path=p, Max-Age=s, SameSite=Strict, Secure, HttpOnly, ext=val
//
// Max-Age replaces Expires when both are set and SameSite is omitted when Lax.
// Extensions are written in key order.
func (c *Cookie) String() string {
	return c.format(listSeparator)
}

// HeaderValue renders the cookie like String but with "; " separators, the
// form expected in a Set-Cookie header and accepted by Parse.
func (c *Cookie) HeaderValue() string {
	return c.format(headerSeparator)
}

func (c *Cookie) format(sep string) string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)

	if c.Domain != "" {
		b.WriteString(sep)
		b.WriteString("Domain=")
		b.WriteString(c.Domain)
	}

	if c.Path != "" {
		b.WriteString(sep)
		b.WriteString("Path=")
		b.WriteString(c.Path)
	}

	if c.HasMaxAge {
		b.WriteString(sep)
		b.WriteString("Max-Age=")
		b.B = strconv.AppendInt(b.B, int64(c.MaxAge/time.Second), 10)
	} else if !c.Expires.IsZero() {
		b.WriteString(sep)
		b.WriteString("Expires=")
		b.B = c.Expires.UTC().AppendFormat(b.B, ExpiresFormat)
	}

	switch c.SameSite {
	case SameSiteNone, SameSiteStrict:
		b.WriteString(sep)
		b.WriteString("SameSite=")
		b.WriteString(c.SameSite.String())
	}

	if c.Secure {
		b.WriteString(sep)
		b.WriteString("Secure")
	}

	if c.HttpOnly {
		b.WriteString(sep)
		b.WriteString("HttpOnly")
	}

	for _, key := range slices.Sorted(maps.Keys(c.Extensions)) {
		ext := c.Extensions[key]
		b.WriteString(sep)
		b.WriteString(key)
		if ext.HasValue {
			b.WriteByte('=')
			b.WriteString(ext.Value)
		}
	}

	return b.String()
}

// String renders the cookie as "name=value".
func (rc RequestCookie) String() string {
	return rc.Name + "=" + rc.Value
}

// FormatCookieHeader joins cookies into a Cookie request header value.
func FormatCookieHeader(cookies ...RequestCookie) string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	for i, rc := range cookies {
		if i > 0 {
			b.WriteString(headerSeparator)
		}
		b.WriteString(rc.Name)
		b.WriteByte('=')
		b.WriteString(rc.Value)
	}
	return b.String()
}
