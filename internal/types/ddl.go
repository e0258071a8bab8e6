package types

// ColumnDef is one column of a CREATE TABLE. Type is the SQL type as the
// target database spells it, e.g. `BIGINT` or `VARCHAR(64)`. Default must be
// a constant expression: DDL cannot carry bound values.
type ColumnDef struct {
	Default       SimpleExpr
	Name          string
	Type          string
	NotNull       bool
	Unique        bool
	PrimaryKey    bool
	AutoIncrement bool
}

// CreateTableStatement is a CREATE TABLE.
type CreateTableStatement struct {
	Table       TableRef
	Columns     []ColumnDef
	PrimaryKey  []string
	IfNotExists bool
}

// NewCreateTable returns an empty CREATE TABLE.
func NewCreateTable() *CreateTableStatement {
	return &CreateTableStatement{}
}

// Build compiles the statement with qb.
func (s *CreateTableStatement) Build(qb QueryBuilder) (string, Values, error) {
	return qb.BuildCreateTable(s)
}

// Named sets the table being created.
func (s *CreateTableStatement) Named(t any) *CreateTableStatement {
	s.Table = tableRef(t)
	return s
}

// Column appends a nullable column of type typ.
func (s *CreateTableStatement) Column(name, typ string) *CreateTableStatement {
	s.Columns = append(s.Columns, ColumnDef{Name: name, Type: typ})
	return s
}

// AddColumn appends a full column definition.
func (s *CreateTableStatement) AddColumn(def ColumnDef) *CreateTableStatement {
	s.Columns = append(s.Columns, def)
	return s
}

// SetPrimaryKey sets a table level primary key over cols.
func (s *CreateTableStatement) SetPrimaryKey(cols ...string) *CreateTableStatement {
	s.PrimaryKey = cols
	return s
}

// SetIfNotExists adds IF NOT EXISTS.
func (s *CreateTableStatement) SetIfNotExists() *CreateTableStatement {
	s.IfNotExists = true
	return s
}

// DropTableStatement is a DROP TABLE.
type DropTableStatement struct {
	Tables   []TableRef
	IfExists bool
	Cascade  bool
}

// NewDropTable returns a DROP TABLE for tables.
func NewDropTable(tables ...any) *DropTableStatement {
	s := &DropTableStatement{}
	for _, t := range tables {
		s.Tables = append(s.Tables, tableRef(t))
	}
	return s
}

// Build compiles the statement with qb.
func (s *DropTableStatement) Build(qb QueryBuilder) (string, Values, error) {
	return qb.BuildDropTable(s)
}

// SetIfExists adds IF EXISTS.
func (s *DropTableStatement) SetIfExists() *DropTableStatement {
	s.IfExists = true
	return s
}

// SetCascade drops dependent objects too.
func (s *DropTableStatement) SetCascade() *DropTableStatement {
	s.Cascade = true
	return s
}

// IndexColumn is one key column of an index.
type IndexColumn struct {
	Name string
	Desc bool
}

// CreateIndexStatement is a CREATE [UNIQUE] INDEX.
type CreateIndexStatement struct {
	Table       TableRef
	Name        string
	Columns     []IndexColumn
	Unique      bool
	IfNotExists bool
}

// NewCreateIndex returns a CREATE INDEX named name.
func NewCreateIndex(name string) *CreateIndexStatement {
	return &CreateIndexStatement{Name: name}
}

// Build compiles the statement with qb.
func (s *CreateIndexStatement) Build(qb QueryBuilder) (string, Values, error) {
	return qb.BuildCreateIndex(s)
}

// On sets the indexed table and ascending key columns.
func (s *CreateIndexStatement) On(t any, cols ...string) *CreateIndexStatement {
	s.Table = tableRef(t)
	for _, c := range cols {
		s.Columns = append(s.Columns, IndexColumn{Name: c})
	}
	return s
}

// AddColumnDesc appends a descending key column.
func (s *CreateIndexStatement) AddColumnDesc(name string) *CreateIndexStatement {
	s.Columns = append(s.Columns, IndexColumn{Name: name, Desc: true})
	return s
}

// SetUnique makes the index unique.
func (s *CreateIndexStatement) SetUnique() *CreateIndexStatement {
	s.Unique = true
	return s
}

// SetIfNotExists adds IF NOT EXISTS.
func (s *CreateIndexStatement) SetIfNotExists() *CreateIndexStatement {
	s.IfNotExists = true
	return s
}

// DropIndexStatement is a DROP INDEX. Table is required by dialects that
// scope index names to a table.
type DropIndexStatement struct {
	Table    TableRef
	Name     string
	IfExists bool
}

// NewDropIndex returns a DROP INDEX named name.
func NewDropIndex(name string) *DropIndexStatement {
	return &DropIndexStatement{Name: name}
}

// Build compiles the statement with qb.
func (s *DropIndexStatement) Build(qb QueryBuilder) (string, Values, error) {
	return qb.BuildDropIndex(s)
}

// On sets the table the index belongs to.
func (s *DropIndexStatement) On(t any) *DropIndexStatement {
	s.Table = tableRef(t)
	return s
}

// SetIfExists adds IF EXISTS.
func (s *DropIndexStatement) SetIfExists() *DropIndexStatement {
	s.IfExists = true
	return s
}

// TruncateStatement is a TRUNCATE TABLE.
type TruncateStatement struct {
	Table   TableRef
	Cascade bool
}

// NewTruncate returns a TRUNCATE of t.
func NewTruncate(t any) *TruncateStatement {
	return &TruncateStatement{Table: tableRef(t)}
}

// Build compiles the statement with qb.
func (s *TruncateStatement) Build(qb QueryBuilder) (string, Values, error) {
	return qb.BuildTruncate(s)
}

// SetCascade truncates tables referencing this one too.
func (s *TruncateStatement) SetCascade() *TruncateStatement {
	s.Cascade = true
	return s
}
