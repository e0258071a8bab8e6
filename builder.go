package relq

import "github.com/zoobzio/relq/internal/types"

// Select starts a SELECT statement.
func Select() *SelectStatement {
	return types.NewSelect()
}

// Insert starts an INSERT statement.
func Insert() *InsertStatement {
	return types.NewInsert()
}

// Update starts an UPDATE statement.
func Update() *UpdateStatement {
	return types.NewUpdate()
}

// Delete starts a DELETE statement.
func Delete() *DeleteStatement {
	return types.NewDelete()
}

// CreateTable starts a CREATE TABLE statement.
func CreateTable(t any) *CreateTableStatement {
	return types.NewCreateTable().Named(t)
}

// DropTable starts a DROP TABLE statement.
func DropTable(tables ...any) *DropTableStatement {
	return types.NewDropTable(tables...)
}

// CreateIndex starts a CREATE INDEX statement.
func CreateIndex(name string) *CreateIndexStatement {
	return types.NewCreateIndex(name)
}

// DropIndex starts a DROP INDEX statement.
func DropIndex(name string) *DropIndexStatement {
	return types.NewDropIndex(name)
}

// Truncate starts a TRUNCATE TABLE statement.
func Truncate(t any) *TruncateStatement {
	return types.NewTruncate(t)
}

// Build compiles stmt with qb.
func Build(qb QueryBuilder, stmt Statement) (string, Values, error) {
	return stmt.Build(qb)
}

// Must unwraps a compilation result, panicking on error. Use it where a
// failure can only mean a programming mistake, such as package level
// statements built from constants.
func Must(sql string, values Values, err error) (string, Values) {
	if err != nil {
		panic("relq: " + err.Error())
	}
	return sql, values
}
