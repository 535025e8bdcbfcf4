package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapir-lang/tapir/frontend/symbols"
)

func TestLookupFieldOwnFieldsShadowLoaderFields(t *testing.T) {
	fields := symbols.NewTable()
	fields.Set("path", &symbols.Symbol{Name: "path"})

	loaderFields := symbols.NewTable()
	loaderFields.Set("path", &symbols.Symbol{Name: "path"})
	loaderFields.Set("__name__", &symbols.Symbol{Name: "__name__"})

	m := NewModule("os", fields, loaderFields)

	sym, ok := m.LookupField("path")
	require.True(t, ok)
	own, _ := fields.Get("path")
	assert.Same(t, own, sym)

	sym, ok = m.LookupField("__name__")
	require.True(t, ok)
	injected, _ := loaderFields.Get("__name__")
	assert.Same(t, injected, sym)

	_, ok = m.LookupField("missing")
	assert.False(t, ok)
}

func TestLookupFieldNilTables(t *testing.T) {
	m := NewModule("empty", nil, nil)
	_, ok := m.LookupField("anything")
	assert.False(t, ok)
}

func TestModuleString(t *testing.T) {
	assert.Equal(t, `Module("os.path")`, NewModule("os.path", nil, nil).String())
}

func TestModuleDocString(t *testing.T) {
	m := NewModule("os", nil, nil)
	assert.Empty(t, m.DocString())
	m.SetDocString("OS routines.")
	assert.Equal(t, "OS routines.", m.DocString())
}
