/*
File    : jack-go/symbols/symbols_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package symbols

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTable_DefineAndLookup tests contiguous index assignment and the
// subroutine-over-class lookup order
func TestTable_DefineAndLookup(t *testing.T) {
	table := NewTable()

	// Class scope: indices are contiguous per kind, not globally
	first, err := table.Define("version", "int", StaticKind)
	assert.NoError(t, err)
	assert.Equal(t, 0, first.Index)

	x, err := table.Define("x", "int", FieldKind)
	assert.NoError(t, err)
	assert.Equal(t, 0, x.Index)

	y, err := table.Define("y", "int", FieldKind)
	assert.NoError(t, err)
	assert.Equal(t, 1, y.Index)

	assert.Equal(t, 1, table.Count(StaticKind))
	assert.Equal(t, 2, table.Count(FieldKind))

	// Subroutine scope
	table.StartSubroutine()
	this, err := table.Define("this", "Point", ArgKind)
	assert.NoError(t, err)
	assert.Equal(t, 0, this.Index)

	other, err := table.Define("other", "Point", ArgKind)
	assert.NoError(t, err)
	assert.Equal(t, 1, other.Index)

	dx, err := table.Define("dx", "int", VarKind)
	assert.NoError(t, err)
	assert.Equal(t, 0, dx.Index)

	// Locals shadow fields of the same name
	_, err = table.Define("x", "boolean", VarKind)
	assert.NoError(t, err)
	kind := table.KindOf("x")
	assert.Equal(t, VarKind, kind)
	typeName, ok := table.TypeOf("x")
	assert.True(t, ok)
	assert.Equal(t, "boolean", typeName)

	// Class names and OS classes resolve to NoneKind
	assert.Equal(t, NoneKind, table.KindOf("Math"))

	// Fields stay visible through the subroutine scope
	index, ok := table.IndexOf("y")
	assert.True(t, ok)
	assert.Equal(t, 1, index)
}

// TestTable_StartSubroutine tests that only the argument/local counters reset
func TestTable_StartSubroutine(t *testing.T) {
	table := NewTable()
	table.Define("a", "int", FieldKind)
	table.Define("b", "int", StaticKind)

	table.Define("p", "int", ArgKind)
	table.Define("q", "int", VarKind)
	assert.Equal(t, 1, table.Count(ArgKind))
	assert.Equal(t, 1, table.Count(VarKind))

	table.StartSubroutine()

	assert.Equal(t, 0, table.Count(ArgKind))
	assert.Equal(t, 0, table.Count(VarKind))
	assert.Equal(t, 1, table.Count(FieldKind))
	assert.Equal(t, 1, table.Count(StaticKind))

	// Old subroutine names are gone
	assert.Equal(t, NoneKind, table.KindOf("p"))

	// Fresh counters assign from zero again
	p2, err := table.Define("p", "int", ArgKind)
	assert.NoError(t, err)
	assert.Equal(t, 0, p2.Index)
}

// TestTable_Redefinition tests that duplicate names in a scope are rejected
func TestTable_Redefinition(t *testing.T) {
	table := NewTable()

	_, err := table.Define("x", "int", FieldKind)
	assert.NoError(t, err)

	// Same scope, any kind: rejected
	_, err = table.Define("x", "int", StaticKind)
	assert.Error(t, err)

	// Different scope: allowed (shadowing)
	_, err = table.Define("x", "int", VarKind)
	assert.NoError(t, err)

	// NoneKind never inserts, so it cannot collide
	_, err = table.Define("x", "int", NoneKind)
	assert.NoError(t, err)
}

// TestTable_Dump tests the tablewriter rendering of a scope
func TestTable_Dump(t *testing.T) {
	table := NewTable()
	table.Define("x", "int", FieldKind)
	table.Define("greeting", "String", StaticKind)

	var sb strings.Builder
	table.DumpClassScope(&sb)
	out := sb.String()

	assert.Contains(t, out, "x")
	assert.Contains(t, out, "greeting")
	assert.Contains(t, out, "field")
	assert.Contains(t, out, "static")
}
