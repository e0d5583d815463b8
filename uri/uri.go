package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/weburi/internal/types"
	"github.com/ghettovoice/weburi/internal/util"
)

// RenderOptions contains options for rendering URIs.
type RenderOptions = types.RenderOptions

// RenderFlags selects parts removed from the rendered URI.
type RenderFlags = types.RenderFlags

const (
	RemoveScheme           = types.RemoveScheme
	RemoveWWWPrefix        = types.RemoveWWWPrefix
	RemoveDefaultFilenames = types.RemoveDefaultFilenames
	RemoveTrailingBar      = types.RemoveTrailingBar
	RemoveQuery            = types.RemoveQuery
	RemoveQueryValues      = types.RemoveQueryValues
	RemoveFragment         = types.RemoveFragment
	RemoveUserInfo         = types.RemoveUserInfo
)

// ParseRenderFlags parses comma separated flag names like "scheme,www,query-values".
func ParseRenderFlags(s string) (RenderFlags, error) {
	return errtrace.Wrap2(types.ParseRenderFlags(s))
}

// URI is a decomposed URI.
// All text fields hold raw, non-decoded text as it appeared in the source.
type URI struct {
	Scheme   string
	User     string
	Password string
	// HasPassword records a ":" in the user info, so "u:@h" keeps its empty password.
	HasPassword bool
	Hostname    string
	// Port is the numeric port. It holds the scheme default when PortText is empty
	// and saturates at math.MaxUint32 for longer digit runs.
	Port uint32
	// PortText is the port as written, empty if the source had no explicit port.
	PortText string
	Path     string
	Query    string
	// HasQuery distinguishes an empty query ("/a?") from no query ("/a").
	HasQuery bool
	Fragment string
	// HasFragment distinguishes an empty fragment ("/a#") from no fragment ("/a").
	HasFragment bool
}

var (
	_ types.Renderer        = (*URI)(nil)
	_ types.Cloneable[*URI] = (*URI)(nil)
	_ types.ValidFlag       = (*URI)(nil)
	_ types.Validatable     = (*URI)(nil)
	_ types.Equalable       = (*URI)(nil)
	_ slog.LogValuer        = (*URI)(nil)
	_ fmt.Formatter         = (*URI)(nil)
	_ fmt.Stringer          = (*URI)(nil)
)

// Clone returns a copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// IsZero reports whether all fields are empty.
func (u *URI) IsZero() bool { return u == nil || *u == URI{} }

// HasPort reports whether the URI has an explicit port.
func (u *URI) HasPort() bool { return u != nil && u.PortText != "" }

// Hostinfo returns the authority section: "user:password@host:port".
func (u *URI) Hostinfo() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(u.userInfo())
	sb.WriteString(u.Hostname)
	if u.PortText != "" {
		sb.WriteString(":")
		sb.WriteString(u.PortText)
	}
	return sb.String()
}

// String returns the string representation of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Redacted is like [URI.String] but replaces the password with "xxxxx".
func (u *URI) Redacted() string {
	if u == nil {
		return ""
	}
	if u.Password == "" {
		return u.String()
	}
	u2 := *u
	u2.Password = "xxxxx"
	return u2.String()
}

// LogValue implements [slog.LogValuer]. The password is redacted.
func (u *URI) LogValue() slog.Value {
	return slog.StringValue(u.Redacted())
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Equal compares this URI with another for equality.
// Scheme and hostname are compared case-insensitively, all other fields exactly.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return util.EqFold(u.Scheme, other.Scheme) &&
		u.User == other.User &&
		u.Password == other.Password &&
		u.HasPassword == other.HasPassword &&
		util.EqFold(u.Hostname, other.Hostname) &&
		u.Port == other.Port &&
		u.PortText == other.PortText &&
		u.Path == other.Path &&
		u.HasQuery == other.HasQuery &&
		u.Query == other.Query &&
		u.HasFragment == other.HasFragment &&
		u.Fragment == other.Fragment
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// Unparse returns the URI text with the parts selected by flags removed.
func (u *URI) Unparse(flags RenderFlags) string {
	return u.Render(&RenderOptions{Flags: flags})
}

// RenderTo writes the URI to the provided writer.
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderURI(w, u, opts))
}

// Render returns the string representation of the URI.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}
