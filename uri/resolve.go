package uri

import "strings"

// Resolve resolves ref against base and returns a new absolute URI.
// Neither argument is modified.
//
// A ref with a scheme is already absolute and is returned as a copy.
// Otherwise the result starts from base: an empty ref path keeps the base path,
// an absolute ref path replaces it, and a relative ref path replaces the last base segment.
// A base path without any "/" is kept whole and the ref path is appended to it.
// An empty result path becomes "/". Dot segments are not collapsed.
func Resolve(ref, base *URI) *URI {
	if ref == nil {
		ref = &URI{}
	}
	if ref.Scheme != "" {
		u := ref.Clone()
		if u.Path == "" {
			u.Path = "/"
		}
		return u
	}

	u := base.Clone()
	if u == nil {
		u = &URI{}
	}
	if u.Path == "" {
		u.Path = "/"
	}

	switch {
	case ref.Path == "":
		if ref.HasQuery {
			u.setQueryFragment(ref)
		} else if ref.HasFragment {
			u.Fragment, u.HasFragment = ref.Fragment, true
		}
	case ref.Path[0] == '/':
		u.Path = ref.Path
		u.setQueryFragment(ref)
	default:
		if i := strings.LastIndexByte(u.Path, '/'); i >= 0 {
			u.Path = u.Path[:i+1]
		}
		u.Path += ref.Path
		u.setQueryFragment(ref)
	}
	return u
}

// ResolveReference resolves ref against u. See [Resolve].
func (u *URI) ResolveReference(ref *URI) *URI {
	return Resolve(ref, u)
}

func (u *URI) setQueryFragment(src *URI) {
	u.Query, u.HasQuery = src.Query, src.HasQuery
	u.Fragment, u.HasFragment = src.Fragment, src.HasFragment
}
