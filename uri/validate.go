package uri

import (
	"net/netip"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/weburi/internal/errorutil"
	"github.com/ghettovoice/weburi/internal/grammar"
)

// IsValid checks whether the URI is syntactically valid.
func (u *URI) IsValid() bool { return u.Validate() == nil }

// Validate checks the URI syntax: the scheme, the hostname and the port text.
// Parsing never fails on these, so Validate is the strict counterpart of [Parse].
// The returned error matches [ErrInvalidURI].
func (u *URI) Validate() error {
	if u == nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURI, "nil URI"))
	}

	var errs []error
	if u.Scheme != "" && !grammar.IsScheme(u.Scheme) {
		errs = append(errs, errorutil.Errorf("invalid scheme %q", u.Scheme))
	}
	if u.Hostname != "" && !isHostname(u.Hostname) {
		errs = append(errs, errorutil.Errorf("invalid hostname %q", u.Hostname))
	}
	if u.PortText != "" && !grammar.IsPort(u.PortText) {
		errs = append(errs, errorutil.Errorf("invalid port %q", u.PortText))
	}
	if u.Scheme != "" && u.Hostname == "" && (u.User != "" || u.HasPassword || u.Password != "" || u.PortText != "") {
		errs = append(errs, errorutil.Errorf("missing hostname"))
	}

	if len(errs) == 0 {
		return nil
	}
	return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURI, errorutil.Join(errs...)))
}

func isHostname(s string) bool {
	if s[0] == '[' {
		if s[len(s)-1] != ']' {
			return false
		}
		addr, err := netip.ParseAddr(s[1 : len(s)-1])
		return err == nil && addr.Is6()
	}
	if _, err := netip.ParseAddr(s); err == nil {
		return true
	}
	if !grammar.IsRegName(s) {
		return false
	}
	_, ok := dns.IsDomainName(s)
	return ok
}
