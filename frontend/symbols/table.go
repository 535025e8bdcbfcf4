// Package symbols provides the ordered name-to-symbol mapping consumed by
// module and class types. The type core only ever performs lookups on a
// Table; populating it and resolving what a Symbol means is the binder's job.
package symbols

import (
	"iter"

	"github.com/tapir-lang/tapir/frontend/ir"
)

// Symbol is one named entry in a scope.
type Symbol struct {
	Name         string
	Declarations []*ir.Declaration
}

// AddDeclaration appends decl unless the symbol already holds it.
func (s *Symbol) AddDeclaration(decl *ir.Declaration) {
	for _, existing := range s.Declarations {
		if existing == decl {
			return
		}
	}
	s.Declarations = append(s.Declarations, decl)
}

// Table is an insertion-ordered mapping from name to Symbol.
// Iteration order is the order names were first set, which mirrors
// declaration order in the source file.
type Table struct {
	names   []string
	entries map[string]*Symbol
}

func NewTable() *Table {
	return &Table{entries: make(map[string]*Symbol)}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

func (t *Table) Get(name string) (*Symbol, bool) {
	if t == nil {
		return nil, false
	}
	sym, ok := t.entries[name]
	return sym, ok
}

// Set inserts or replaces the symbol for name. A replaced name keeps its
// original position in iteration order.
func (t *Table) Set(name string, sym *Symbol) {
	if _, ok := t.entries[name]; !ok {
		t.names = append(t.names, name)
	}
	t.entries[name] = sym
}

func (t *Table) All() iter.Seq2[string, *Symbol] {
	return func(yield func(string, *Symbol) bool) {
		if t == nil {
			return
		}
		for _, name := range t.names {
			if !yield(name, t.entries[name]) {
				return
			}
		}
	}
}

func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
