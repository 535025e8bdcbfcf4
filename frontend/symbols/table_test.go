package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapir-lang/tapir/frontend/ir"
)

func TestTableKeepsInsertionOrder(t *testing.T) {
	table := NewTable()
	table.Set("zebra", &Symbol{Name: "zebra"})
	table.Set("apple", &Symbol{Name: "apple"})
	table.Set("mango", &Symbol{Name: "mango"})

	assert.Equal(t, []string{"zebra", "apple", "mango"}, table.Names())

	var iterated []string
	for name := range table.All() {
		iterated = append(iterated, name)
	}
	assert.Equal(t, []string{"zebra", "apple", "mango"}, iterated)
}

func TestTableReplaceKeepsPosition(t *testing.T) {
	table := NewTable()
	table.Set("first", &Symbol{Name: "first"})
	table.Set("second", &Symbol{Name: "second"})

	replacement := &Symbol{Name: "first"}
	table.Set("first", replacement)

	assert.Equal(t, []string{"first", "second"}, table.Names())
	assert.Equal(t, 2, table.Len())
	sym, ok := table.Get("first")
	require.True(t, ok)
	assert.Same(t, replacement, sym)
}

func TestNilTableIsEmpty(t *testing.T) {
	var table *Table
	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Names())
	_, ok := table.Get("anything")
	assert.False(t, ok)
	for range table.All() {
		t.Fatal("nil table yielded an entry")
	}
}

func TestAddDeclarationDeduplicates(t *testing.T) {
	decl := &ir.Declaration{Kind: ir.DeclarationKindVariable, ModuleName: "app"}
	other := &ir.Declaration{Kind: ir.DeclarationKindVariable, ModuleName: "app"}

	sym := &Symbol{Name: "x"}
	sym.AddDeclaration(decl)
	sym.AddDeclaration(decl)
	sym.AddDeclaration(other)

	// identical contents but a distinct pointer is a distinct declaration
	require.Len(t, sym.Declarations, 2)
	assert.Same(t, decl, sym.Declarations[0])
	assert.Same(t, other, sym.Declarations[1])
}
