package types

// TableRef names a relation in FROM, JOIN or a statement target.
type TableRef interface {
	isTableRef()
}

// Table is a bare table name.
type Table struct {
	Name string
}

// SchemaTable is a schema-qualified table.
type SchemaTable struct {
	Schema string
	Table  string
}

// DatabaseSchemaTable is a table qualified by database and schema.
type DatabaseSchemaTable struct {
	Database string
	Schema   string
	Table    string
}

// TableAlias is `table AS alias`.
type TableAlias struct {
	Table string
	Alias string
}

// SchemaTableAlias is `schema.table AS alias`.
type SchemaTableAlias struct {
	Schema string
	Table  string
	Alias  string
}

// SubQueryTable is a derived table, `(SELECT ...) AS alias`.
type SubQueryTable struct {
	Query *SelectStatement
	Alias string
}

func (Table) isTableRef()               {}
func (SchemaTable) isTableRef()         {}
func (DatabaseSchemaTable) isTableRef() {}
func (TableAlias) isTableRef()          {}
func (SchemaTableAlias) isTableRef()    {}
func (SubQueryTable) isTableRef()       {}
