// Package types contains common types used across the uri package.
package types

//go:generate go tool errtrace -w .

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/weburi/internal/errorutil"
	"github.com/ghettovoice/weburi/internal/util"
)

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderFlags is a set of independent textual filters applied while rendering a URI.
type RenderFlags uint

const (
	// RemoveScheme drops the "scheme://" prefix.
	RemoveScheme RenderFlags = 1 << iota
	// RemoveWWWPrefix drops a leading "www." or "wwwN." label of the hostname.
	RemoveWWWPrefix
	// RemoveDefaultFilenames drops a trailing default document name like "index.html".
	RemoveDefaultFilenames
	// RemoveTrailingBar drops one trailing "/" unless the path is exactly "/".
	RemoveTrailingBar
	// RemoveQuery drops the query.
	RemoveQuery
	// RemoveQueryValues keeps query keys, "=" and "&" but drops values.
	RemoveQueryValues
	// RemoveFragment drops the fragment.
	RemoveFragment
	// RemoveUserInfo drops the "user:password@" part.
	RemoveUserInfo
)

var renderFlagNames = []struct {
	flag RenderFlags
	name string
}{
	{RemoveScheme, "scheme"},
	{RemoveWWWPrefix, "www"},
	{RemoveDefaultFilenames, "filenames"},
	{RemoveTrailingBar, "trailing-bar"},
	{RemoveQuery, "query"},
	{RemoveQueryValues, "query-values"},
	{RemoveFragment, "fragment"},
	{RemoveUserInfo, "userinfo"},
}

// Has reports whether all bits of f2 are set in f.
func (f RenderFlags) Has(f2 RenderFlags) bool { return f&f2 == f2 }

// String returns comma separated flag names.
func (f RenderFlags) String() string {
	if f == 0 {
		return ""
	}
	names := make([]string, 0, len(renderFlagNames))
	for _, fn := range renderFlagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseRenderFlags parses comma separated flag names as returned by [RenderFlags.String].
func ParseRenderFlags(s string) (RenderFlags, error) {
	var f RenderFlags
	for name := range strings.SplitSeq(s, ",") {
		name = util.LCase(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		i := 0
		for ; i < len(renderFlagNames); i++ {
			if renderFlagNames[i].name == name {
				f |= renderFlagNames[i].flag
				break
			}
		}
		if i == len(renderFlagNames) {
			return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown render flag %q", name))
		}
	}
	return f, nil
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// Flags selects parts removed from the output.
	Flags RenderFlags `json:"flags,omitempty"`
}

// Has reports whether the flag is set. It is safe to call on nil options.
func (o *RenderOptions) Has(f RenderFlags) bool {
	return o != nil && o.Flags.Has(f)
}

type ValidFlag interface {
	IsValid() bool
}

type Validatable interface {
	Validate() error
}

type Equalable interface {
	Equal(val any) bool
}

type Cloneable[T any] interface {
	Clone() T
}
