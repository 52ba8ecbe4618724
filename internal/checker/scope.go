package checker

import "fmt"

// SymbolKind represents the kind of symbol
type SymbolKind int

const (
	SymVariable SymbolKind = iota
	SymConst
	SymFunction
	SymNative
	SymStruct
	SymTypedef
	SymParam
)

// String returns the string representation of the symbol kind
func (sk SymbolKind) String() string {
	switch sk {
	case SymVariable:
		return "variable"
	case SymConst:
		return "constant"
	case SymFunction:
		return "function"
	case SymNative:
		return "native"
	case SymStruct:
		return "struct"
	case SymTypedef:
		return "typedef"
	case SymParam:
		return "parameter"
	default:
		return "unknown"
	}
}

// Symbol represents a symbol in the symbol table
type Symbol struct {
	Name   string
	Type   *Type
	Kind   SymbolKind
	Static bool
	Line   int
	Column int

	// ConstValue holds the folded value of an integer constant, used when
	// folding array dimensions. Valid only when HasConstValue is set.
	ConstValue    int64
	HasConstValue bool
}

// Scope represents a lexical scope with a symbol table
type Scope struct {
	parent  *Scope
	symbols map[string]*Symbol
}

// NewScope creates a new scope with an optional parent
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:  parent,
		symbols: make(map[string]*Symbol),
	}
}

// Define adds a symbol to the current scope.
// Returns an error if the symbol is already defined in this scope.
// The new symbol replaces the old binding either way, so later uses
// resolve to the newest declaration instead of cascading.
func (s *Scope) Define(name string, sym *Symbol) error {
	_, exists := s.symbols[name]
	s.symbols[name] = sym
	if exists {
		return fmt.Errorf("symbol '%s' already defined in this scope", name)
	}
	return nil
}

// Resolve looks up a symbol in the current scope and parent scopes.
// Returns nil if the symbol is not found.
func (s *Scope) Resolve(name string) *Symbol {
	if sym, ok := s.symbols[name]; ok {
		return sym
	}
	if s.parent != nil {
		return s.parent.Resolve(name)
	}
	return nil
}

// ResolveLocal looks up a symbol only in the current scope (not parent scopes)
func (s *Scope) ResolveLocal(name string) *Symbol {
	if sym, ok := s.symbols[name]; ok {
		return sym
	}
	return nil
}
