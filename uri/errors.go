package uri

import (
	"fmt"

	"github.com/ghettovoice/weburi/internal/errorutil"
	"github.com/ghettovoice/weburi/internal/grammar"
)

// Error is a string type that implements the error interface.
type Error = errorutil.Error

const (
	// ErrInvalidPort is returned by the parser when the port is not a decimal number.
	ErrInvalidPort Error = "invalid port"
	// ErrInvalidURI is returned by [URI.Validate].
	ErrInvalidURI Error = "invalid URI"
)

// PortError describes an explicit port that could not be parsed.
type PortError struct {
	// Input is the whole parsed text.
	Input string
	// Port is the port text as written.
	Port string
	// Offset is the byte offset in Input of the first offending character.
	Offset int
	// Reason is a short human-readable reason.
	Reason string
}

func (e *PortError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q at offset %d: %s", ErrInvalidPort, e.Port, e.Offset, e.Reason)
}

func (e *PortError) Unwrap() []error {
	return []error{ErrInvalidPort, grammar.ErrMalformedInput}
}

func (*PortError) Grammar() bool { return true }
