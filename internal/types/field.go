package types

// ColumnRef names a column. Implementations are Column, TableColumn,
// SchemaTableColumn, Asterisk and TableAsterisk.
type ColumnRef interface {
	isColumnRef()
}

// Column is a bare column name.
type Column struct {
	Name string
}

// TableColumn is a column qualified by its table or alias.
type TableColumn struct {
	Table  string
	Column string
}

// SchemaTableColumn is a column qualified by schema and table.
type SchemaTableColumn struct {
	Schema string
	Table  string
	Column string
}

// Asterisk is the unqualified `*` projection.
type Asterisk struct{}

// TableAsterisk is `table.*`.
type TableAsterisk struct {
	Table string
}

func (Column) isColumnRef()            {}
func (TableColumn) isColumnRef()       {}
func (SchemaTableColumn) isColumnRef() {}
func (Asterisk) isColumnRef()          {}
func (TableAsterisk) isColumnRef()     {}
