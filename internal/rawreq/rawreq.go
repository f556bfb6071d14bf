// Package rawreq extracts the cookie matching context from a raw HTTP/1.x
// request head.
package rawreq

import (
	"bytes"
	"errors"
	"net"
	"net/url"
	"strings"

	"github.com/evanphx/wildcat"
	"github.com/ryanbekhen/cookie/internal/pool"
)

var (
	// ErrMalformedRequest is returned when the request head cannot be parsed.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrMissingHost is returned when neither the request target nor the
	// Host header names a host.
	ErrMissingHost = errors.New("request has no host")
)

var (
	hostHeader           = []byte("Host")
	cookieHeader         = []byte("Cookie")
	forwardedProtoHeader = []byte("X-Forwarded-Proto")

	crlf       = []byte("\r\n")
	headEnd    = []byte("\r\n\r\n")
	lf         = []byte("\n")
	httpsProto = []byte("https")
)

// wildcat does not clear the headers of a previous Parse, so they are
// zeroed before the parser goes back to the pool.
var parserPool = pool.New(wildcat.NewHTTPParser, func(p *wildcat.HTTPParser) {
	clear(p.Headers)
})

// Request is the part of an HTTP request that decides which cookies are sent.
type Request struct {
	Method string
	Host   string // Host without port
	Path   string // Request path without query, "/" when empty
	Secure bool   // Absolute https target or X-Forwarded-Proto: https
	Cookie string // Raw Cookie header value
}

// Parse parses the request line and headers in data. Bare "\n" line endings
// are accepted and the terminating blank line may be omitted.
func Parse(data []byte) (*Request, error) {
	head := normalize(data)

	var req *Request
	err := parserPool.With(func(parser *wildcat.HTTPParser) error {
		var err error
		req, err = fromParser(parser, head)
		return err
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func fromParser(parser *wildcat.HTTPParser, head []byte) (*Request, error) {
	if _, err := parser.Parse(head); err != nil {
		return nil, errors.Join(ErrMalformedRequest, err)
	}

	req := &Request{
		Method: string(parser.Method),
		Cookie: strings.TrimSpace(string(parser.FindHeader(cookieHeader))),
	}

	target, err := url.ParseRequestURI(string(parser.Path))
	if err != nil {
		return nil, errors.Join(ErrMalformedRequest, err)
	}

	host := target.Host
	if host == "" {
		host = strings.TrimSpace(string(parser.FindHeader(hostHeader)))
	}
	req.Host = stripPort(host)
	if req.Host == "" {
		return nil, ErrMissingHost
	}

	req.Path = target.Path
	if req.Path == "" {
		req.Path = "/"
	}

	req.Secure = target.Scheme == "https" ||
		bytes.EqualFold(bytes.TrimSpace(parser.FindHeader(forwardedProtoHeader)), httpsProto)

	return req, nil
}

// normalize converts bare "\n" line endings to CRLF and makes sure the head
// ends with an empty line. Anything after the first empty line is dropped.
func normalize(data []byte) []byte {
	if !bytes.Contains(data, crlf) {
		data = bytes.ReplaceAll(data, lf, crlf)
	}
	if i := bytes.Index(data, headEnd); i >= 0 {
		return data[:i+len(headEnd)]
	}
	head := bytes.TrimRight(data, "\r\n")
	out := make([]byte, 0, len(head)+len(headEnd))
	out = append(out, head...)
	return append(out, headEnd...)
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
}
