package config

// Parsing limits.
const (
	// MaxRecursionDepth bounds expression nesting before the parser gives up
	// on the current statement. Recursion depth otherwise tracks source
	// nesting directly, so pathological inputs could exhaust the call stack.
	MaxRecursionDepth = 500

	// MaxErrors caps the diagnostics rendered per compilation unit.
	MaxErrors = 100
)
