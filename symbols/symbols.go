/*
File    : jack-go/symbols/symbols.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package symbols implements the two-scope symbol table of the Jack compiler.
//
// Jack name resolution is deliberately simple: a class scope holding static
// and field variables, and a subroutine scope holding arguments and locals.
// Subroutine names shadow class names during lookup. Each declared name is
// assigned a kind, its declared type, and a contiguous index within its kind;
// the index becomes the offset into the corresponding VM memory segment
// during code generation.
package symbols

import "fmt"

// Kind classifies the role of a declared name.
// It determines both the scope a name lives in (static and field belong to
// the class scope, argument and local to the subroutine scope) and the VM
// segment its index addresses.
type Kind string

// Kind Constants:
// The closed set of variable kinds in Jack. NoneKind is the result of
// looking up a name that is not a variable at all (e.g., a class name
// appearing as the receiver of a static subroutine call).
const (
	StaticKind Kind = "static"   // Class variable, shared across instances
	FieldKind  Kind = "field"    // Instance variable, part of the object layout
	ArgKind    Kind = "argument" // Subroutine parameter
	VarKind    Kind = "local"    // Subroutine local variable
	NoneKind   Kind = "none"     // Not a variable
)

// Symbol represents a single declared name together with everything the
// code generator needs to address it.
//
// Fields:
//   - Name: The identifier as written in the source
//   - Type: The declared type: "int", "char", "boolean", or a class name
//   - Kind: The role of the name (static, field, argument, local)
//   - Index: The slot within the kind's VM segment, contiguous from 0
type Symbol struct {
	Name  string // Identifier as declared
	Type  string // Declared type name
	Kind  Kind   // Role of the declaration
	Index int    // Slot within the kind, 0-based
}

// Table is the two-scope symbol table.
//
// The class scope is populated by class-level variable declarations and
// lives for the whole class. The subroutine scope is emptied at the start
// of every subroutine. Four running counters (one per kind) assign the
// contiguous indices; the counters never decrease within a scope's
// lifetime and only StartSubroutine resets the argument/local pair.
type Table struct {
	classScope      map[string]Symbol // static and field declarations
	subroutineScope map[string]Symbol // argument and local declarations

	staticCount int // next static index
	fieldCount  int // next field index
	argCount    int // next argument index
	varCount    int // next local index
}

// NewTable creates an empty symbol table with both scopes initialized
// and all kind counters at zero.
//
// Returns:
//   - *Table: A fresh table ready for class-level declarations
//
// Example:
//
//	table := NewTable()
//	table.Define("x", "int", FieldKind)
func NewTable() *Table {
	return &Table{
		classScope:      make(map[string]Symbol),
		subroutineScope: make(map[string]Symbol),
	}
}

// StartSubroutine empties the subroutine scope and resets the argument and
// local counters to zero. The class scope and its counters are untouched.
// The compilation engine calls this at the start of every subroutine
// declaration, before defining the implicit 'this' argument of methods.
func (t *Table) StartSubroutine() {
	t.subroutineScope = make(map[string]Symbol)
	t.argCount = 0
	t.varCount = 0
}

// Define inserts a new entry into the scope owned by the given kind.
// The kind's counter becomes the entry's index and is then incremented,
// which keeps indices contiguous from zero in declaration order.
//
// Static and field entries go to the class scope; argument and local
// entries go to the subroutine scope. Defining with NoneKind is a no-op.
//
// Parameters:
//   - name: The identifier being declared
//   - typeName: The declared type ("int", "char", "boolean", or a class name)
//   - kind: The role of the declaration
//
// Returns:
//   - Symbol: The inserted entry with its assigned index
//   - error: Non-nil if the name is already declared in the same scope
func (t *Table) Define(name string, typeName string, kind Kind) (Symbol, error) {
	var symbol Symbol

	switch kind {
	case StaticKind:
		if _, exists := t.classScope[name]; exists {
			return symbol, fmt.Errorf("name %q already declared in class scope", name)
		}
		symbol = Symbol{Name: name, Type: typeName, Kind: kind, Index: t.staticCount}
		t.classScope[name] = symbol
		t.staticCount++
	case FieldKind:
		if _, exists := t.classScope[name]; exists {
			return symbol, fmt.Errorf("name %q already declared in class scope", name)
		}
		symbol = Symbol{Name: name, Type: typeName, Kind: kind, Index: t.fieldCount}
		t.classScope[name] = symbol
		t.fieldCount++
	case ArgKind:
		if _, exists := t.subroutineScope[name]; exists {
			return symbol, fmt.Errorf("name %q already declared in subroutine scope", name)
		}
		symbol = Symbol{Name: name, Type: typeName, Kind: kind, Index: t.argCount}
		t.subroutineScope[name] = symbol
		t.argCount++
	case VarKind:
		if _, exists := t.subroutineScope[name]; exists {
			return symbol, fmt.Errorf("name %q already declared in subroutine scope", name)
		}
		symbol = Symbol{Name: name, Type: typeName, Kind: kind, Index: t.varCount}
		t.subroutineScope[name] = symbol
		t.varCount++
	case NoneKind:
		// Not a variable declaration
	}

	return symbol, nil
}

// Count returns the number of entries of the given kind defined so far in
// the kind's scope. For arguments and locals that is the count since the
// last StartSubroutine; for statics and fields it spans the whole class.
//
// Parameters:
//   - kind: The kind whose counter to read
//
// Returns:
//   - int: The current counter value (0 for NoneKind)
func (t *Table) Count(kind Kind) int {
	switch kind {
	case StaticKind:
		return t.staticCount
	case FieldKind:
		return t.fieldCount
	case ArgKind:
		return t.argCount
	case VarKind:
		return t.varCount
	}
	return 0
}

// Lookup resolves a name, trying the subroutine scope first and falling
// back to the class scope, so that locals and arguments shadow fields and
// statics of the same name.
//
// Parameters:
//   - name: The identifier to resolve
//
// Returns:
//   - Symbol: The resolved entry (zero value if not found)
//   - bool: true if the name is declared in either scope
func (t *Table) Lookup(name string) (Symbol, bool) {
	if symbol, ok := t.subroutineScope[name]; ok {
		return symbol, true
	}
	if symbol, ok := t.classScope[name]; ok {
		return symbol, true
	}
	return Symbol{}, false
}

// KindOf returns the kind of a name, or NoneKind if the name is not
// declared in either scope. A NoneKind result is how the compilation
// engine recognizes class names in qualified subroutine calls.
func (t *Table) KindOf(name string) Kind {
	if symbol, ok := t.Lookup(name); ok {
		return symbol.Kind
	}
	return NoneKind
}

// TypeOf returns the declared type of a name.
//
// Returns:
//   - string: The type name (empty if not found)
//   - bool: true if the name is declared in either scope
func (t *Table) TypeOf(name string) (string, bool) {
	symbol, ok := t.Lookup(name)
	return symbol.Type, ok
}

// IndexOf returns the kind-relative index of a name.
//
// Returns:
//   - int: The index (0 if not found)
//   - bool: true if the name is declared in either scope
func (t *Table) IndexOf(name string) (int, bool) {
	symbol, ok := t.Lookup(name)
	return symbol.Index, ok
}
