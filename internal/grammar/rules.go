package grammar

import "github.com/ghettovoice/abnf"

var (
	alpha = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	digit  = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
	hexdig = abnf.Alt(
		"HEXDIG",
		digit,
		abnf.Range("%x41-46", []byte{0x41}, []byte{0x46}),
		abnf.Range("%x61-66", []byte{0x61}, []byte{0x66}),
	)
)

// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
var scheme = abnf.Concat(
	"scheme",
	alpha,
	abnf.Repeat0Inf("*scheme-char", abnf.Alt(
		"scheme-char",
		alpha,
		digit,
		abnf.Literal("+", []byte("+")),
		abnf.Literal("-", []byte("-")),
		abnf.Literal(".", []byte(".")),
	)),
)

// port = 1*DIGIT
var port = abnf.Repeat1Inf("port", digit)

// reg-name = *( unreserved / pct-encoded / sub-delims )
var regName = abnf.Repeat1Inf("reg-name", abnf.Alt(
	"reg-name-char",
	alpha,
	digit,
	abnf.Concat("pct-encoded", abnf.Literal("%", []byte("%")), hexdig, hexdig),
	abnf.Alt(
		"unreserved-mark",
		abnf.Literal("-", []byte("-")),
		abnf.Literal(".", []byte(".")),
		abnf.Literal("_", []byte("_")),
		abnf.Literal("~", []byte("~")),
	),
	abnf.Alt(
		"sub-delims",
		abnf.Literal("!", []byte("!")),
		abnf.Literal("$", []byte("$")),
		abnf.Literal("&", []byte("&")),
		abnf.Literal("'", []byte("'")),
		abnf.Literal("(", []byte("(")),
		abnf.Literal(")", []byte(")")),
		abnf.Literal("*", []byte("*")),
		abnf.Literal("+", []byte("+")),
		abnf.Literal(",", []byte(",")),
		abnf.Literal(";", []byte(";")),
		abnf.Literal("=", []byte("=")),
	),
))
