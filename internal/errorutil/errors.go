// Package errorutil provides error helpers shared across the module.
package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"

	"github.com/ghettovoice/weburi/internal/util"
)

// Error is a constant-friendly error type used for sentinels.
type Error string

func (e Error) Error() string { return string(e) }

// Errorf returns the formatted message as an [Error].
func Errorf(format string, args ...any) error {
	return Error(fmt.Sprintf(format, args...)) //errtrace:skip
}

// NewWrapperError ties a cause to the sentinel so that errors.Is matches both.
// The cause is either an error or a format string with arguments.
// A cause that already matches the sentinel is returned unchanged.
func NewWrapperError(sentinel error, cause ...any) error {
	if len(cause) == 0 {
		return sentinel //errtrace:skip
	}

	var err error
	switch v := cause[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		err = v
	case string:
		if len(cause) > 1 {
			v = fmt.Sprintf(v, cause[1:]...)
		}
		err = Error(v)
	default:
		return sentinel //errtrace:skip
	}
	return fmt.Errorf("%w: %w", sentinel, err) //errtrace:skip
}

// ErrInvalidArgument is returned when a function gets an unusable argument.
const ErrInvalidArgument Error = "invalid argument"

// NewInvalidArgumentError wraps the cause with [ErrInvalidArgument], see [NewWrapperError].
func NewInvalidArgumentError(cause ...any) error {
	return NewWrapperError(ErrInvalidArgument, cause...) //errtrace:skip
}

// Join combines errors into one. Nil errors are dropped.
// It returns nil if nothing is left and the error itself if only one is left.
// The message lists all messages separated by "; ".
func Join(errs ...error) error {
	var kept []error
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0] //errtrace:skip
	default:
		return &joinError{errs: kept} //errtrace:skip
	}
}

type joinError struct {
	errs []error
}

func (e *joinError) Error() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, err := range e.errs {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e *joinError) Unwrap() []error { return e.errs }

// IsGrammarErr reports whether err was caused by malformed input text,
// that is, whether some error in its chain has a Grammar() method returning true.
func IsGrammarErr(err error) bool {
	var e interface{ Grammar() bool }
	return errors.As(err, &e) && e.Grammar()
}
