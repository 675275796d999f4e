// Package typesystem holds the semantic types synthesized during signature
// elaboration. Types are immutable values; structural nodes are rebuilt, never
// patched in place.
package typesystem

import "strings"

// Type is a fully resolved semantic type.
type Type interface {
	typeNode()
	String() string
}

// TCon is a type constant referred to by name, e.g. Int or geo.Point.
type TCon struct {
	Name string
}

func (t TCon) typeNode()      {}
func (t TCon) String() string { return t.Name }

// TupleElement is one component of a tuple type. Name is the bound parameter
// name, empty for positional components. HasDefault records whether the
// originating pattern element carried a default expression.
type TupleElement struct {
	Type       Type
	Name       string
	HasDefault bool
}

// TTuple is an ordered tuple type. The empty tuple doubles as the unit type.
type TTuple struct {
	Elements []TupleElement
}

func (t TTuple) typeNode() {}

func (t TTuple) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, elt := range t.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		if elt.Name != "" {
			sb.WriteString(elt.Name)
			sb.WriteString(": ")
		}
		sb.WriteString(elt.Type.String())
		if elt.HasDefault {
			sb.WriteString(" = _")
		}
	}
	sb.WriteString(")")
	return sb.String()
}

// TArrow is a single-argument function type. Curried signatures nest arrows
// to the right: a -> (b -> c).
type TArrow struct {
	Param  Type
	Result Type
}

func (t TArrow) typeNode() {}

func (t TArrow) String() string {
	param := t.Param.String()
	if _, ok := t.Param.(TArrow); ok {
		param = "(" + param + ")"
	}
	return param + " -> " + t.Result.String()
}

// Unit returns the empty tuple type.
func Unit() Type {
	return TTuple{}
}

// Equal reports structural equality, including tuple component names and
// default markers.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case TCon:
		bt, ok := b.(TCon)
		return ok && at.Name == bt.Name
	case TTuple:
		bt, ok := b.(TTuple)
		if !ok || len(at.Elements) != len(bt.Elements) {
			return false
		}
		for i, elt := range at.Elements {
			other := bt.Elements[i]
			if elt.Name != other.Name || elt.HasDefault != other.HasDefault {
				return false
			}
			if !Equal(elt.Type, other.Type) {
				return false
			}
		}
		return true
	case TArrow:
		bt, ok := b.(TArrow)
		return ok && Equal(at.Param, bt.Param) && Equal(at.Result, bt.Result)
	}
	return false
}
