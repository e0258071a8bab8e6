package relq

import (
	"github.com/zoobzio/dbml"

	"github.com/zoobzio/relq/internal/types"
)

// CreateTableFromDBML starts a CREATE TABLE with one nullable column per
// column of t, in declaration order, using the DBML column types verbatim.
// Keys and constraints are added with the statement's builder methods.
func CreateTableFromDBML(t *dbml.Table) *CreateTableStatement {
	stmt := types.NewCreateTable()
	if t == nil {
		return stmt
	}
	stmt.Named(t.Name)
	for _, col := range t.Columns {
		stmt.Column(col.Name, col.Type)
	}
	return stmt
}
