package uri

import (
	"github.com/ghettovoice/weburi/internal/constraints"
	"github.com/ghettovoice/weburi/internal/grammar"
)

// Encode percent-encodes every byte of s that is not alphanumeric
// or one of "!$&()*+,-./:;=?@[]_~" as "%XX" with two upper-case hex digits.
func Encode[T constraints.Byteseq](s T) T {
	return grammar.Escape(s, nil)
}

// Decode replaces every "%XX" sequence with two hex digits of any case by the byte it encodes.
// Malformed sequences, such as a trailing "%" or "%G1", are kept as is.
func Decode[T constraints.Byteseq](s T) T {
	return grammar.Unescape(s)
}
