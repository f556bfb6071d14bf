package cookie

import (
	"time"

	"github.com/goccy/go-json"
)

// cookieJSON is the JSON view of a Cookie.
type cookieJSON struct {
	Name       string             `json:"name"`
	Value      string             `json:"value"`
	Domain     string             `json:"domain,omitempty"`
	Path       string             `json:"path,omitempty"`
	Expires    *time.Time         `json:"expires,omitempty"`
	MaxAge     *int64             `json:"max_age,omitempty"`
	ExpireTime *time.Time         `json:"expire_time,omitempty"`
	SameSite   string             `json:"same_site"`
	Secure     bool               `json:"secure"`
	HttpOnly   bool               `json:"http_only"`
	Extensions map[string]*string `json:"extensions,omitempty"`
	Created    time.Time          `json:"created"`
}

// MarshalJSON implements json.Marshaler. Max-Age is written in seconds and
// the resolved expiry instant is included when the cookie expires.
func (c *Cookie) MarshalJSON() ([]byte, error) {
	v := cookieJSON{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		SameSite: c.SameSite.String(),
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
		Created:  c.created,
	}
	if !c.Expires.IsZero() {
		expires := c.Expires
		v.Expires = &expires
	}
	if c.HasMaxAge {
		seconds := int64(c.MaxAge / time.Second)
		v.MaxAge = &seconds
	}
	if t, ok := c.ExpireTime(); ok {
		v.ExpireTime = &t
	}
	if len(c.Extensions) > 0 {
		v.Extensions = make(map[string]*string, len(c.Extensions))
		for key, ext := range c.Extensions {
			if ext.HasValue {
				value := ext.Value
				v.Extensions[key] = &value
			} else {
				v.Extensions[key] = nil
			}
		}
	}
	return json.Marshal(v)
}
