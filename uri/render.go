package uri

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/weburi/internal/ioutil"
	"github.com/ghettovoice/weburi/internal/util"
)

var (
	defaultFileExts  = [...]string{".html", ".htm", ".php", ".shtml", ".asp", ".cgi"}
	defaultFileNames = [...]string{"index", "default"}
)

func renderURI(w io.Writer, u *URI, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if u.Scheme != "" && !opts.Has(RemoveScheme) {
		cw.WriteString(u.Scheme, "://") //nolint:errcheck
	}
	if !opts.Has(RemoveUserInfo) {
		cw.WriteString(u.userInfo()) //nolint:errcheck
	}

	host := u.Hostname
	if opts.Has(RemoveWWWPrefix) {
		host = host[wwwPrefixLen(host):]
	}
	cw.WriteString(host) //nolint:errcheck

	if u.PortText != "" && (u.Scheme == "" || u.Port != DefaultPort(u.Scheme)) {
		cw.WriteString(":", u.PortText) //nolint:errcheck
	}

	path := u.Path
	if opts.Has(RemoveDefaultFilenames) {
		path = stripDefaultFilename(path)
	}
	if opts.Has(RemoveTrailingBar) && len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	cw.WriteString(path) //nolint:errcheck

	if u.HasQuery && !opts.Has(RemoveQuery) {
		cw.WriteString("?") //nolint:errcheck
		if opts.Has(RemoveQueryValues) {
			cw.Call(func(w io.Writer) (int, error) {
				return errtrace.Wrap2(writeQueryKeys(w, u.Query))
			})
		} else {
			cw.WriteString(u.Query) //nolint:errcheck
		}
	}

	if u.HasFragment && !opts.Has(RemoveFragment) {
		cw.WriteString("#", u.Fragment) //nolint:errcheck
	}

	return errtrace.Wrap2(cw.Result())
}

// userInfo returns "user:password@", "user@" or an empty string.
func (u *URI) userInfo() string {
	switch {
	case u.HasPassword || u.Password != "":
		return u.User + ":" + u.Password + "@"
	case u.User != "":
		return u.User + "@"
	default:
		return ""
	}
}

// wwwPrefixLen returns the length of a leading "www." or "wwwN." label, or 0.
func wwwPrefixLen(host string) int {
	if !util.HasPrefixFold(host, "www") {
		return 0
	}
	switch {
	case len(host) > 3 && host[3] == '.':
		return 4
	case len(host) > 4 && '0' <= host[3] && host[3] <= '9' && host[4] == '.':
		return 5
	default:
		return 0
	}
}

func stripDefaultFilename(path string) string {
	for _, ext := range defaultFileExts {
		base, ok := strings.CutSuffix(path, ext)
		if !ok {
			continue
		}
		for _, name := range defaultFileNames {
			dir, ok := strings.CutSuffix(base, name)
			if ok && (dir == "" || dir[len(dir)-1] == '/') {
				return dir
			}
		}
		return path
	}
	return path
}

// writeQueryKeys writes the query keeping keys, "=" and "&" but dropping values.
func writeQueryKeys(w io.Writer, query string) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	first := true
	for pair := range strings.SplitSeq(query, "&") {
		if !first {
			cw.WriteString("&") //nolint:errcheck
		}
		first = false
		if key, _, ok := strings.Cut(pair, "="); ok {
			cw.WriteString(key, "=") //nolint:errcheck
		} else {
			cw.WriteString(pair) //nolint:errcheck
		}
	}
	return errtrace.Wrap2(cw.Result())
}
