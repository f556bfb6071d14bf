package cookie

import "strings"

// PathMatches implements path-match from RFC 6265 section 5.1.4.
func PathMatches(cookiePath, requestPath string) bool {
	if !strings.HasPrefix(requestPath, cookiePath) {
		return false
	}
	return len(requestPath) == len(cookiePath) ||
		strings.HasSuffix(cookiePath, "/") ||
		requestPath[len(cookiePath)] == '/'
}

// DomainMatches implements domain-match from RFC 6265 section 5.1.3: the
// request domain equals the cookie domain or is a subdomain of it. An empty
// cookie domain matches nothing.
func DomainMatches(cookieDomain, requestDomain string) bool {
	if cookieDomain == "" {
		return false
	}
	if requestDomain == cookieDomain {
		return true
	}
	return strings.HasSuffix(requestDomain, cookieDomain) &&
		requestDomain[len(requestDomain)-len(cookieDomain)-1] == '.'
}

// MatchesPath reports whether the cookie path, or "/" when unset, covers path.
func (c *Cookie) MatchesPath(path string) bool {
	return PathMatches(c.PathOrDefault(), path)
}

// MatchesDomain reports whether the cookie may be sent to domain. It is
// always false when Domain is empty.
func (c *Cookie) MatchesDomain(domain string) bool {
	return DomainMatches(c.Domain, domain)
}

// Applies reports whether the cookie should be attached to a request for
// domain and path, sent over a secure channel or not.
//
// The cookie must have a Domain. Cookies parsed from a header without a
// Domain attribute need the originating host assigned first (see Origin);
// until then Applies returns false.
func (c *Cookie) Applies(domain, path string, secure bool) bool {
	if c.Domain == "" {
		return false
	}
	if c.Secure && !secure {
		return false
	}
	switch c.SameSite {
	case SameSiteStrict:
		if c.Domain != domain {
			return false
		}
	case SameSiteLax:
		if !c.MatchesDomain(domain) {
			return false
		}
	case SameSiteNone:
		if !secure {
			return false
		}
	}
	return c.MatchesPath(path)
}
