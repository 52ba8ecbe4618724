package checker

import (
	"fmt"
	"strings"

	"github.com/gxlang/gxc/internal/lexer"
)

// Kind discriminates the closed set of type shapes
type Kind int

const (
	KindVoid Kind = iota
	KindInt
	KindFixed
	KindBool
	KindString
	KindText
	KindByte
	KindHandle
	KindNull
	KindArray
	KindStruct
	KindFunc
	KindError
)

// Type represents a type in the Galaxy type system
type Type struct {
	Kind   Kind
	Name   string // handle or struct name; primitive spelling otherwise
	Elem   *Type  // array element type
	Dims   []int  // array dimension sizes, outermost first
	Fields []StructFieldInfo
	Return *Type   // function return type
	Params []*Type // function parameter types
}

// StructFieldInfo is one member of a struct type, in declaration order
type StructFieldInfo struct {
	Name string
	Type *Type
}

// Builtin types
var (
	TypeVoid   = &Type{Kind: KindVoid, Name: "void"}
	TypeInt    = &Type{Kind: KindInt, Name: "int"}
	TypeFixed  = &Type{Kind: KindFixed, Name: "fixed"}
	TypeBool   = &Type{Kind: KindBool, Name: "bool"}
	TypeString = &Type{Kind: KindString, Name: "string"}
	TypeText   = &Type{Kind: KindText, Name: "text"}
	TypeByte   = &Type{Kind: KindByte, Name: "byte"}
	TypeNull   = &Type{Kind: KindNull, Name: "null"}
	TypeError  = &Type{Kind: KindError, Name: "<error>"}
)

// handleNames are the opaque engine handle types
var handleNames = []string{
	"abilcmd", "actor", "actorscope", "aifilter", "bank", "bitmask",
	"camerainfo", "color", "datetime", "doodad", "effecthistory",
	"generichandle", "marker", "order", "playergroup", "point", "region",
	"revealer", "sound", "soundlink", "timer", "transmissionsource",
	"trigger", "unit", "unitfilter", "unitgroup", "unitref", "wave",
	"waveinfo", "wavetarget",
}

var handleTypes = func() map[string]*Type {
	m := make(map[string]*Type, len(handleNames))
	for _, name := range handleNames {
		m[name] = &Type{Kind: KindHandle, Name: name}
	}
	return m
}()

// BuiltinType returns the primitive or handle type for a name, if any
func BuiltinType(name string) (*Type, bool) {
	switch name {
	case "void":
		return TypeVoid, true
	case "int":
		return TypeInt, true
	case "fixed":
		return TypeFixed, true
	case "bool":
		return TypeBool, true
	case "string":
		return TypeString, true
	case "text":
		return TypeText, true
	case "byte":
		return TypeByte, true
	}
	if h, ok := handleTypes[name]; ok {
		return h, true
	}
	return nil, false
}

// IsError reports whether the type is the poison type
func (t *Type) IsError() bool {
	return t != nil && t.Kind == KindError
}

// IsNumeric reports whether the type takes part in arithmetic
func (t *Type) IsNumeric() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindInt, KindFixed, KindByte:
		return true
	}
	return false
}

// IsPrimitive reports whether the type is a non-void primitive
func (t *Type) IsPrimitive() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindInt, KindFixed, KindBool, KindString, KindText, KindByte:
		return true
	}
	return false
}

// Equal checks if two types are the same type
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindHandle, KindStruct:
		return t.Name == other.Name
	case KindArray:
		if len(t.Dims) != len(other.Dims) {
			return false
		}
		for i := range t.Dims {
			if t.Dims[i] != other.Dims[i] {
				return false
			}
		}
		return t.Elem.Equal(other.Elem)
	case KindFunc:
		if len(t.Params) != len(other.Params) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].Equal(other.Params[i]) {
				return false
			}
		}
		return t.Return.Equal(other.Return)
	default:
		return true
	}
}

// String returns the source spelling of the type
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindArray:
		var sb strings.Builder
		sb.WriteString(t.Elem.String())
		for _, d := range t.Dims {
			fmt.Fprintf(&sb, "[%d]", d)
		}
		return sb.String()
	case KindFunc:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = p.String()
		}
		return "func(" + strings.Join(params, ", ") + ") " + t.Return.String()
	default:
		return t.Name
	}
}

// Assignable reports whether a value of type source can be stored in a
// location of type target. The poison type is assignable in both
// directions so one bad subexpression never produces a second diagnostic.
func Assignable(target, source *Type) bool {
	if target == nil || source == nil {
		return false
	}
	if target.IsError() || source.IsError() {
		return true
	}
	if target.Equal(source) {
		return true
	}
	// numeric coercion, both directions
	if target.IsNumeric() && source.IsNumeric() {
		return true
	}
	// bool converts to and from every primitive
	if target.Kind == KindBool && source.IsPrimitive() {
		return true
	}
	if source.Kind == KindBool && target.IsPrimitive() {
		return true
	}
	// null only fills handles
	if target.Kind == KindHandle && source.Kind == KindNull {
		return true
	}
	return false
}

// BinaryResult computes the result type of a binary operation. It is pure:
// it never reports diagnostics. A poison operand poisons the result; nil
// means the operation is invalid and the caller reports it.
func BinaryResult(op lexer.TokenType, left, right *Type) *Type {
	if left == nil || right == nil {
		return nil
	}
	if left.IsError() || right.IsError() {
		return TypeError
	}

	switch op {
	case lexer.PLUS:
		if left.Kind == KindString && right.Kind == KindString {
			return TypeString
		}
		if left.Kind == KindText && right.Kind == KindText {
			return TypeText
		}
		return arithResult(left, right)

	case lexer.MINUS, lexer.STAR, lexer.SLASH:
		return arithResult(left, right)

	case lexer.PERCENT:
		// modulo is integer only
		if left.IsNumeric() && right.IsNumeric() &&
			left.Kind != KindFixed && right.Kind != KindFixed {
			return TypeInt
		}
		return nil

	case lexer.EQ, lexer.NEQ:
		if left.IsNumeric() && right.IsNumeric() {
			return TypeBool
		}
		if left.Kind == KindHandle && right.Kind == KindNull {
			return TypeBool
		}
		if left.Kind == KindNull && right.Kind == KindHandle {
			return TypeBool
		}
		if left.Kind == KindNull && right.Kind == KindNull {
			return TypeBool
		}
		if left.Equal(right) && comparableKind(left) {
			return TypeBool
		}
		return nil

	case lexer.LT, lexer.GT, lexer.LEQ, lexer.GEQ:
		if left.IsNumeric() && right.IsNumeric() {
			return TypeBool
		}
		return nil

	case lexer.AND, lexer.OR:
		if Assignable(TypeBool, left) && Assignable(TypeBool, right) {
			return TypeBool
		}
		return nil

	default:
		return nil
	}
}

// UnaryResult computes the result type of a unary operation. Same contract
// as BinaryResult.
func UnaryResult(op lexer.TokenType, operand *Type) *Type {
	if operand == nil {
		return nil
	}
	if operand.IsError() {
		return TypeError
	}

	switch op {
	case lexer.MINUS:
		if operand.Kind == KindFixed {
			return TypeFixed
		}
		if operand.IsNumeric() {
			return TypeInt
		}
		return nil
	case lexer.NOT:
		if Assignable(TypeBool, operand) {
			return TypeBool
		}
		return nil
	default:
		return nil
	}
}

// arithResult promotes mixed int/fixed arithmetic to fixed
func arithResult(left, right *Type) *Type {
	if !left.IsNumeric() || !right.IsNumeric() {
		return nil
	}
	if left.Kind == KindFixed || right.Kind == KindFixed {
		return TypeFixed
	}
	return TypeInt
}

// comparableKind reports whether equality is defined for identical values of t
func comparableKind(t *Type) bool {
	switch t.Kind {
	case KindBool, KindString, KindText, KindHandle:
		return true
	}
	return false
}
