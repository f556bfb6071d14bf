package cookie

import (
	"strings"
	"time"
)

// Parser parses Set-Cookie values using a fixed configuration. A Parser
// holds no mutable state and is safe for concurrent use.
type Parser struct {
	config Config
}

// NewParser creates a parser. If no config is given, DefaultConfig is used.
func NewParser(config ...Config) *Parser {
	cfg := DefaultConfig()
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Now == nil {
			cfg.Now = time.Now
		}
	}
	return &Parser{config: cfg}
}

var defaultParser = NewParser()

// Parse parses a Set-Cookie header value with the default configuration.
func Parse(s string) (*Cookie, error) {
	return defaultParser.Parse(s)
}

// MustParse is like Parse but panics if the value cannot be parsed.
func MustParse(s string) *Cookie {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse parses a Set-Cookie header value such as
// "id=a3fWa; Expires=Wed, 21 Oct 2015 07:28:00 GMT; Secure".
//
// The first segment must be a name=value pair. Every following segment is
// classified by ParseDirective. The first error aborts the parse. A value
// made of a single standard attribute, such as "Max-Age=10" or "Secure",
// fails with ErrNoNameValuePair.
func (p *Parser) Parse(s string) (*Cookie, error) {
	segments := strings.Split(s, ";")
	if len(segments) == 1 && isDirectiveName(s) {
		return nil, newParseError(s, ErrNoNameValuePair)
	}

	name, value, err := parsePair(s, segments[0])
	if err != nil {
		return nil, err
	}

	directives := make([]Directive, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		d, err := ParseDirective(segment)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}

	return p.build(name, value, directives), nil
}

// build folds directives, in order, over a cookie with default attributes.
func (p *Parser) build(name, value string, directives []Directive) *Cookie {
	c := NewWithConfig(name, value, p.config)
	for _, d := range directives {
		d.apply(c)
	}
	return c
}

// parsePair splits "name=value". Both sides are trimmed and must be non-empty.
func parsePair(input, segment string) (string, string, error) {
	name, value, ok := strings.Cut(segment, "=")
	if !ok {
		return "", "", newParseError(input, ErrMalformedPair)
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" {
		return "", "", newParseError(input, ErrEmptyName)
	}
	if value == "" {
		return "", "", newParseError(input, ErrEmptyValue)
	}
	return name, value, nil
}

// isDirectiveName reports whether s, with or without a value, names one of
// the standard attributes.
func isDirectiveName(s string) bool {
	key, _, _ := strings.Cut(s, "=")
	switch lowerASCII(strings.TrimSpace(key)) {
	case attrExpires, attrMaxAge, attrDomain, attrPath, attrSameSite, attrSecure, attrHTTPOnly:
		return true
	}
	return false
}
