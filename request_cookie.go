package cookie

import "strings"

// ParseRequestCookie parses a single "name=value" pair.
func ParseRequestCookie(s string) (RequestCookie, error) {
	name, value, err := parsePair(s, s)
	if err != nil {
		return RequestCookie{}, err
	}
	return RequestCookie{Name: name, Value: value}, nil
}

// ParseCookieHeader parses a Cookie request header such as "a=1; b=2".
// It splits the header by semicolons and keeps every well-formed pair in
// order. Empty parts and malformed pairs are skipped.
func ParseCookieHeader(header string) []RequestCookie {
	parts := strings.Split(header, ";")
	cookies := make([]RequestCookie, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rc, err := ParseRequestCookie(part)
		if err != nil {
			continue
		}
		cookies = append(cookies, rc)
	}
	return cookies
}
