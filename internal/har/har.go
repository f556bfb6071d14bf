// Package har reads cookie traffic out of HTTP Archive (HAR) files.
package har

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/valyala/fastjson"
)

// ErrNoEntries is returned when the document has no log.entries array.
var ErrNoEntries = errors.New("har: missing log.entries")

// Entry is one request/response exchange.
type Entry struct {
	Method string
	URL    string
	Host   string
	Path   string
	Secure bool

	// Cookie holds the request Cookie header values.
	Cookie []string
	// SetCookie holds the response Set-Cookie header values in order.
	SetCookie []string
}

// Parse returns the entries of a HAR document. Entries whose request URL is
// not absolute are skipped.
func Parse(data []byte) ([]Entry, error) {
	var p fastjson.Parser
	doc, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("har: %w", err)
	}

	raw := doc.Get("log", "entries")
	if raw == nil || raw.Type() != fastjson.TypeArray {
		return nil, ErrNoEntries
	}

	items := raw.GetArray()
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entry, ok := parseEntry(item)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseEntry(v *fastjson.Value) (Entry, bool) {
	rawURL := string(v.GetStringBytes("request", "url"))
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return Entry{}, false
	}

	entry := Entry{
		Method:    string(v.GetStringBytes("request", "method")),
		URL:       rawURL,
		Host:      u.Hostname(),
		Path:      u.Path,
		Secure:    u.Scheme == "https" || u.Scheme == "wss",
		Cookie:    headerValues(v.GetArray("request", "headers"), "Cookie"),
		SetCookie: headerValues(v.GetArray("response", "headers"), "Set-Cookie"),
	}
	if entry.Path == "" {
		entry.Path = "/"
	}
	return entry, true
}

// headerValues collects the values of every header named name. Some tools
// fold several Set-Cookie headers into one value separated by newlines.
func headerValues(headers []*fastjson.Value, name string) []string {
	var values []string
	for _, h := range headers {
		if !strings.EqualFold(string(h.GetStringBytes("name")), name) {
			continue
		}
		for _, line := range strings.Split(string(h.GetStringBytes("value")), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				values = append(values, line)
			}
		}
	}
	return values
}
