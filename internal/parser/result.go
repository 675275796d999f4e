package parser

type parseStatus int

const (
	statusOK parseStatus = iota
	statusParseError
	statusSemaError
)

// ParseResult is the tri-state outcome of a sub-parse. A parse error is a
// hard syntax failure: no value exists and the caller must resynchronize the
// token stream. A sema error means the syntax parsed but a semantic rule was
// violated; a best-effort value is still carried so enclosing constructs can
// keep going and surface further diagnostics, but its type must not be
// trusted. The two failure states deliberately cannot be collapsed into one:
// only hard failures trigger token skipping.
type ParseResult[T any] struct {
	status parseStatus
	value  T
}

func parsed[T any](v T) ParseResult[T] {
	return ParseResult[T]{status: statusOK, value: v}
}

func parseFailed[T any]() ParseResult[T] {
	return ParseResult[T]{status: statusParseError}
}

func semaFailed[T any](v T) ParseResult[T] {
	return ParseResult[T]{status: statusSemaError, value: v}
}

func (r ParseResult[T]) IsParseError() bool { return r.status == statusParseError }
func (r ParseResult[T]) IsSemaError() bool  { return r.status == statusSemaError }

// Value returns the parsed or degraded value. It is only meaningful when the
// result is not a parse error.
func (r ParseResult[T]) Value() T { return r.value }
