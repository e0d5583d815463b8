package uri

//go:generate go tool mockgen -package=suffixmock -destination=../internal/testutil/suffixmock/suffixmock.go github.com/ghettovoice/weburi/uri SuffixMatcher

import "golang.org/x/net/publicsuffix"

// SuffixMatcher reports the byte length of the public suffix of a hostname.
type SuffixMatcher interface {
	// SuffixLen returns the length of the recognized public suffix tail
	// of hostname without the leading dot, or 0 if none is recognized.
	// Matching must be case-insensitive.
	SuffixLen(hostname string) int
}

// SuffixMatcherFunc is an adapter to allow the use of ordinary functions as [SuffixMatcher].
type SuffixMatcherFunc func(hostname string) int

// SuffixLen calls f(hostname).
func (f SuffixMatcherFunc) SuffixLen(hostname string) int { return f(hostname) }

// PublicSuffixMatcher matches suffixes from the Public Suffix List
// compiled into golang.org/x/net/publicsuffix.
var PublicSuffixMatcher SuffixMatcher = SuffixMatcherFunc(publicSuffixLen)

func publicSuffixLen(hostname string) int {
	if hostname == "" {
		return 0
	}
	suffix, _ := publicsuffix.PublicSuffix(asciiLower(hostname))
	return len(suffix)
}

func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
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

// CanonicalHostname returns the tail of the hostname that starts maxDepth dots
// before its public suffix, so maxDepth 1 yields the suffix alone
// and maxDepth 2 the registrable domain.
// A leading "www." or "wwwN." label is never included.
// For example, "www2.foo.example.com" with maxDepth 2 yields "example.com".
//
// If m is nil, [PublicSuffixMatcher] is used.
func (u *URI) CanonicalHostname(maxDepth uint, m SuffixMatcher) string {
	if u == nil || u.Hostname == "" {
		return ""
	}
	if m == nil {
		m = PublicSuffixMatcher
	}

	host := u.Hostname
	start := wwwPrefixLen(host)
	i := len(host) - min(max(m.SuffixLen(host), 0), len(host))
	if i < start {
		i = start
	}
	for depth := uint(0); depth < maxDepth && i > start; {
		i--
		if host[i] == '.' {
			depth++
		}
	}
	if i < len(host) && host[i] == '.' {
		i++
	}
	return host[i:]
}
