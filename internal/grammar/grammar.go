// Package grammar contains byte classification tables and ABNF rules
// used by the URI decomposition engine and validator.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/weburi/internal/constraints"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

// ErrMalformedInput is matched by errors caused by text that breaks the URI syntax.
const ErrMalformedInput Error = "malformed input"

// IsAlpha checks ALPHA rule.
func IsAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

// IsDigit checks DIGIT rule.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool { return IsAlpha(c) || IsDigit(c) }

// IsScheme reports whether s matches the RFC 3986 scheme rule.
func IsScheme[T constraints.Byteseq](s T) bool { return matchAll(scheme, s) }

// IsPort reports whether s is a non-empty run of decimal digits.
func IsPort[T constraints.Byteseq](s T) bool { return matchAll(port, s) }

// IsRegName reports whether s matches the RFC 3986 reg-name rule.
func IsRegName[T constraints.Byteseq](s T) bool { return matchAll(regName, s) }

func matchAll[T constraints.Byteseq](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
