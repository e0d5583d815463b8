package grammar

import (
	"bytes"

	"github.com/ghettovoice/weburi/internal/constraints"
)

var safeChars = func() (tbl [256]bool) {
	for c := range tbl {
		tbl[c] = IsAlphanumChar(byte(c))
	}
	for _, c := range []byte("!$&()*+,-./:;=?@[]_~") {
		tbl[c] = true
	}
	return tbl
}()

// IsSafeChar reports whether c may appear in encoded URI text as is.
func IsSafeChar(c byte) bool { return safeChars[c] }

// Unescape converts each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Percent signs that are not followed by two hex digits are left untouched.
func Unescape[T constraints.Byteseq](s T) T {
	i := 0
	for ; i < len(s); i++ {
		if isEscaped(s, i) {
			break
		}
	}
	if i == len(s) {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isEscaped(s, i) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

func isEscaped[T constraints.Byteseq](s T, i int) bool {
	return s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2])
}

// Escape replaces each byte matched by shouldEscape callback with the hex form "% HEXDIG HEXDIG".
// If shouldEscape is nil, every byte that is not safe is escaped, see [IsSafeChar].
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsSafeChar(c) }
	}

	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
