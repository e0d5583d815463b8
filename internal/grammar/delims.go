package grammar

// Delims is a set of structural URI delimiters.
type Delims uint8

const (
	DelimColon    Delims = 0x01 // ':'
	DelimSlash    Delims = 0x02 // '/'
	DelimQuestion Delims = 0x04 // '?'
	DelimHash     Delims = 0x08 // '#'
	DelimNUL      Delims = 0x80 // '\x00' and end of text
)

// Scan stop masks.
const (
	// StopScheme stops at any delimiter.
	StopScheme = DelimColon | DelimSlash | DelimQuestion | DelimHash | DelimNUL
	// StopHostinfo stops at the end of the authority section.
	StopHostinfo = DelimSlash | DelimQuestion | DelimHash | DelimNUL
	// StopPath stops at the end of the path.
	StopPath = DelimQuestion | DelimHash | DelimNUL
)

var delims = [256]Delims{
	0x00: DelimNUL,
	'#':  DelimHash,
	'/':  DelimSlash,
	':':  DelimColon,
	'?':  DelimQuestion,
}

// DelimsOf returns delimiter bits of the byte c.
func DelimsOf(c byte) Delims { return delims[c] }

// Scan returns index of the first byte in s starting from the offset from
// that belongs to the stop mask, or len(s) if there is no such byte.
func Scan(s string, from int, stop Delims) int {
	for i := from; i < len(s); i++ {
		if delims[s[i]]&stop != 0 {
			return i
		}
	}
	return len(s)
}
