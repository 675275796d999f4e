// Package diagnostics defines the positional errors accumulated on the
// pipeline context by every compilation stage. Reporting is append-only:
// stages add errors and keep going so a single run surfaces as many
// diagnostics as possible.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/tovalang/tova/internal/token"
)

type ErrorCode string

const (
	// ErrP000 — internal error (a stage ran with missing inputs).
	ErrP000 ErrorCode = "P000"
	// ErrP001 — unexpected token at the top level of a file.
	ErrP001 ErrorCode = "P001"
	// ErrP002 — expected an identifier.
	ErrP002 ErrorCode = "P002"
	// ErrP003 — could not parse a numeric literal.
	ErrP003 ErrorCode = "P003"
	// ErrP004 — expression cannot start with the current token.
	ErrP004 ErrorCode = "P004"
	// ErrP005 — expected a specific next token (closing parens and friends).
	ErrP005 ErrorCode = "P005"
	// ErrP006 — syntax error with a custom message.
	ErrP006 ErrorCode = "P006"
	// ErrP007 — expected a pattern.
	ErrP007 ErrorCode = "P007"
	// ErrP008 — expected a type.
	ErrP008 ErrorCode = "P008"
	// ErrP009 — untyped pattern in a function signature (semantic).
	ErrP009 ErrorCode = "P009"
	// ErrP010 — parameter declared more than once (semantic).
	ErrP010 ErrorCode = "P010"
)

// DiagnosticError is one reported problem, pinned to a source location.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Column  int
}

// NewError builds a diagnostic at the given token's location. Extra args are
// appended to the message as a got-clause, e.g. "expected a pattern (got ')')".
func NewError(code ErrorCode, tok token.Token, message string, args ...interface{}) *DiagnosticError {
	if len(args) > 0 {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = fmt.Sprintf("%v", a)
		}
		message = fmt.Sprintf("%s (got '%s')", message, strings.Join(parts, "', '"))
	}
	return &DiagnosticError{
		Code:    code,
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *DiagnosticError) Error() string {
	file := e.File
	if file == "" {
		file = "<source>"
	}
	return fmt.Sprintf("[%s] %s:%d:%d: %s", e.Code, file, e.Line, e.Column, e.Message)
}
