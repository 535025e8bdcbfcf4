package types

import (
	"github.com/tapir-lang/tapir/frontend/symbols"
)

// ModuleType is a namespace over two symbol tables: the module's own fields
// and the fields the import machinery injects before the module body runs.
type ModuleType struct {
	typeBase
	moduleName   string
	fields       *symbols.Table
	loaderFields *symbols.Table
	docString    string
}

func NewModule(moduleName string, fields, loaderFields *symbols.Table) *ModuleType {
	return &ModuleType{
		typeBase:     typeBase{category: CategoryModule, flags: FlagInstance},
		moduleName:   moduleName,
		fields:       fields,
		loaderFields: loaderFields,
	}
}

func (m *ModuleType) ModuleName() string           { return m.moduleName }
func (m *ModuleType) Fields() *symbols.Table       { return m.fields }
func (m *ModuleType) LoaderFields() *symbols.Table { return m.loaderFields }
func (m *ModuleType) DocString() string            { return m.docString }

func (m *ModuleType) SetDocString(doc string) { m.docString = doc }

// LookupField finds a symbol by name. Own fields shadow loader-injected ones:
// loader fields exist before the module body runs, so anything the module
// itself defines must win.
func (m *ModuleType) LookupField(name string) (*symbols.Symbol, bool) {
	if sym, ok := m.fields.Get(name); ok {
		return sym, true
	}
	return m.loaderFields.Get(name)
}

func (m *ModuleType) shallowCopy() Type {
	copied := *m
	return &copied
}

func (m *ModuleType) String() string { return "Module(\"" + m.moduleName + "\")" }
