// Package symbols implements the lexical declaration context the parser
// threads through pattern parsing. A NamedPattern declares a fresh variable
// into the innermost scope as it is parsed.
package symbols

// Symbol is a named entity introduced by a declaration.
type Symbol struct {
	Name   string
	Line   int
	Column int
}

// Scope is one level of declaration context. Lookups walk outward; a
// declaration only conflicts with names in the same scope.
type Scope struct {
	outer   *Scope
	symbols map[string]*Symbol
}

func NewScope(outer *Scope) *Scope {
	return &Scope{outer: outer, symbols: make(map[string]*Symbol)}
}

func (s *Scope) Outer() *Scope { return s.outer }

// Declare registers a new symbol in this scope. The returned symbol is always
// usable; ok is false when the name was already declared here, in which case
// the existing symbol is returned.
func (s *Scope) Declare(name string, line, column int) (*Symbol, bool) {
	if existing, ok := s.symbols[name]; ok {
		return existing, false
	}
	sym := &Symbol{Name: name, Line: line, Column: column}
	s.symbols[name] = sym
	return sym, true
}

// Resolve finds a symbol by name, searching enclosing scopes outward.
func (s *Scope) Resolve(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.outer {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}
