package render

import (
	"fmt"

	"github.com/zoobzio/relq/internal/types"
)

// IdentityDialect is implemented by dialects that can declare an
// auto-incrementing column.
type IdentityDialect interface {
	// IdentityKeyword is written after the column's PRIMARY KEY, if any.
	IdentityKeyword() string
}

// CreateTable compiles a CREATE TABLE.
func (c *Compiler) CreateTable(stmt *types.CreateTableStatement) (string, types.Values, error) {
	w := NewWriter(0)
	if stmt == nil {
		w.Fail(fmt.Errorf("%w: nil CREATE TABLE", ErrEmptyStatement))
	} else {
		c.writeCreateTable(w, stmt)
	}
	return finishDDL(w)
}

// DropTable compiles a DROP TABLE.
func (c *Compiler) DropTable(stmt *types.DropTableStatement) (string, types.Values, error) {
	w := NewWriter(0)
	if stmt == nil {
		w.Fail(fmt.Errorf("%w: nil DROP TABLE", ErrEmptyStatement))
	} else {
		c.writeDropTable(w, stmt)
	}
	return finishDDL(w)
}

// CreateIndex compiles a CREATE INDEX.
func (c *Compiler) CreateIndex(stmt *types.CreateIndexStatement) (string, types.Values, error) {
	w := NewWriter(0)
	if stmt == nil {
		w.Fail(fmt.Errorf("%w: nil CREATE INDEX", ErrEmptyStatement))
	} else {
		c.writeCreateIndex(w, stmt)
	}
	return finishDDL(w)
}

// DropIndex compiles a DROP INDEX.
func (c *Compiler) DropIndex(stmt *types.DropIndexStatement) (string, types.Values, error) {
	w := NewWriter(0)
	if stmt == nil {
		w.Fail(fmt.Errorf("%w: nil DROP INDEX", ErrEmptyStatement))
	} else {
		c.writeDropIndex(w, stmt)
	}
	return finishDDL(w)
}

// Truncate compiles a TRUNCATE TABLE.
func (c *Compiler) Truncate(stmt *types.TruncateStatement) (string, types.Values, error) {
	w := NewWriter(0)
	if stmt == nil {
		w.Fail(fmt.Errorf("%w: nil TRUNCATE", ErrEmptyStatement))
	} else {
		c.writeTruncate(w, stmt)
	}
	return finishDDL(w)
}

// finishDDL rejects bound values; schema statements are not parameterizable.
func finishDDL(w *Writer) (string, types.Values, error) {
	sql, values, err := w.Finish()
	if err == nil && len(values) > 0 {
		return "", nil, fmt.Errorf("%w: schema statements cannot bind values, use a constant", ErrInvalidExpr)
	}
	return sql, values, err
}

func (c *Compiler) writeCreateTable(w *Writer, s *types.CreateTableStatement) {
	if s.Table == nil {
		w.Fail(fmt.Errorf("%w: CREATE TABLE", ErrNoTable))
		return
	}
	if len(s.Columns) == 0 {
		w.Fail(fmt.Errorf("%w: CREATE TABLE has no columns", ErrEmptyList))
		return
	}
	w.Push("CREATE TABLE ")
	if s.IfNotExists {
		if !c.caps.TableIfNotExists {
			w.Fail(c.Unsupported(FeatureTableIfNotExists))
			return
		}
		w.Push("IF NOT EXISTS ")
	}
	c.writeTarget(w, s.Table)
	w.Push(" (")
	PushList(w, s.Columns, ", ", c.writeColumnDef)
	if len(s.PrimaryKey) > 0 {
		for _, col := range s.Columns {
			if col.PrimaryKey {
				w.Fail(fmt.Errorf("%w: primary key declared on column %q and on the table", ErrInvalidExpr, col.Name))
				return
			}
		}
		w.Push(", PRIMARY KEY (")
		c.Idents(w, s.PrimaryKey)
		w.Push(")")
	}
	w.Push(")")
}

func (c *Compiler) writeColumnDef(w *Writer, col types.ColumnDef) {
	c.Ident(w, col.Name)
	if !castTypePattern.MatchString(col.Type) {
		w.Fail(fmt.Errorf("%w: invalid column type %q", ErrInvalidExpr, col.Type))
		return
	}
	w.Push(" " + col.Type)
	if col.PrimaryKey {
		w.Push(" PRIMARY KEY")
	}
	if col.AutoIncrement {
		id, ok := c.d.(IdentityDialect)
		if !ok {
			w.Fail(c.Unsupported(FeatureAutoIncrement))
			return
		}
		w.Push(" " + id.IdentityKeyword())
	}
	if col.NotNull {
		w.Push(" NOT NULL")
	}
	if col.Unique {
		w.Push(" UNIQUE")
	}
	if col.Default != nil {
		w.Push(" DEFAULT ")
		c.WriteExpr(w, col.Default)
	}
}

func (c *Compiler) writeDropTable(w *Writer, s *types.DropTableStatement) {
	if len(s.Tables) == 0 {
		w.Fail(fmt.Errorf("%w: DROP TABLE", ErrNoTable))
		return
	}
	w.Push("DROP TABLE ")
	if s.IfExists {
		w.Push("IF EXISTS ")
	}
	PushList(w, s.Tables, ", ", c.writeTarget)
	c.writeCascade(w, s.Cascade)
}

func (c *Compiler) writeCreateIndex(w *Writer, s *types.CreateIndexStatement) {
	if s.Table == nil {
		w.Fail(fmt.Errorf("%w: CREATE INDEX", ErrNoTable))
		return
	}
	if len(s.Columns) == 0 {
		w.Fail(fmt.Errorf("%w: CREATE INDEX has no columns", ErrEmptyList))
		return
	}
	w.Push("CREATE ")
	if s.Unique {
		w.Push("UNIQUE ")
	}
	w.Push("INDEX ")
	if s.IfNotExists {
		if !c.caps.IndexIfNotExists {
			w.Fail(c.Unsupported(FeatureIndexIfNotExists))
			return
		}
		w.Push("IF NOT EXISTS ")
	}
	c.Ident(w, s.Name)
	w.Push(" ON ")
	c.writeTarget(w, s.Table)
	w.Push(" (")
	PushList(w, s.Columns, ", ", func(w *Writer, col types.IndexColumn) {
		c.Ident(w, col.Name)
		if col.Desc {
			w.Push(" DESC")
		}
	})
	w.Push(")")
}

// writeDropIndex writes `DROP INDEX name ON table` where index names are
// scoped to a table, and `DROP INDEX [schema.]name` elsewhere.
func (c *Compiler) writeDropIndex(w *Writer, s *types.DropIndexStatement) {
	if c.caps.IndexNamesPerTable && s.Table == nil {
		w.Fail(fmt.Errorf("%w: DROP INDEX", ErrNoTable))
		return
	}
	w.Push("DROP INDEX ")
	if s.IfExists {
		if !c.caps.DropIndexIfExists {
			w.Fail(c.Unsupported(FeatureDropIndexIfExists))
			return
		}
		w.Push("IF EXISTS ")
	}
	if c.caps.IndexNamesPerTable {
		c.Ident(w, s.Name)
		w.Push(" ON ")
		c.writeTarget(w, s.Table)
		return
	}
	if st, ok := s.Table.(types.SchemaTable); ok {
		c.Ident(w, st.Schema)
		w.Push(".")
	}
	c.Ident(w, s.Name)
}

func (c *Compiler) writeTruncate(w *Writer, s *types.TruncateStatement) {
	if s.Table == nil {
		w.Fail(fmt.Errorf("%w: TRUNCATE", ErrNoTable))
		return
	}
	if !c.caps.Truncate {
		w.Fail(c.Unsupported(FeatureTruncate))
		return
	}
	w.Push("TRUNCATE TABLE ")
	c.writeTarget(w, s.Table)
	c.writeCascade(w, s.Cascade)
}

func (c *Compiler) writeCascade(w *Writer, cascade bool) {
	if !cascade {
		return
	}
	if !c.caps.DropCascade {
		w.Fail(c.Unsupported(FeatureCascade))
		return
	}
	w.Push(" CASCADE")
}

// writeTarget writes a table named by a schema statement. Aliases and
// derived tables are rejected.
func (c *Compiler) writeTarget(w *Writer, ref types.TableRef) {
	switch ref.(type) {
	case nil:
		w.Fail(ErrNoTable)
	case types.Table, types.SchemaTable, types.DatabaseSchemaTable:
		c.WriteTable(w, ref)
	default:
		w.Fail(fmt.Errorf("%w: schema statements take a plain table, got %T", ErrInvalidExpr, ref))
	}
}
