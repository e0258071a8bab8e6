// Package mssql provides the SQL Server dialect for relq.
package mssql

import (
	"strconv"

	"github.com/zoobzio/relq/internal/render"
	"github.com/zoobzio/relq/internal/types"
)

const dialect = "mssql"

// Renderer implements the SQL Server dialect: bracket quoted identifiers and
// `@pN` placeholders.
type Renderer struct {
	c *render.Compiler
}

// New creates a new SQL Server renderer.
func New() *Renderer {
	r := &Renderer{}
	r.c = render.NewCompiler(r)
	return r
}

// Name returns the dialect name.
func (r *Renderer) Name() string { return dialect }

// EscapeIdentifier wraps name in brackets, doubling embedded `]`.
func (r *Renderer) EscapeIdentifier(name string) string {
	return render.EscapeQuoted(name, '[', ']')
}

// FormatPlaceholder returns `@pindex`.
func (r *Renderer) FormatPlaceholder(index int) string {
	return "@p" + strconv.Itoa(index)
}

// Capabilities returns the SQL Server feature set.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		FullOuterJoin:      true,
		Intersect:          true,
		QuantifiedSubquery: true,
		OffsetWithoutLimit: true,
		RowLocking:         render.RowLockingNone,
		Truncate:           true,
		DropIndexIfExists:  true,
		IndexNamesPerTable: true,
	}
}

var hints = map[string]string{
	render.FeatureReturning:              "use an OUTPUT clause instead",
	render.FeatureJoinUsing:              "use ON with an equality condition instead",
	render.FeatureDistinctOn:             "use ROW_NUMBER() OVER (PARTITION BY ...) instead",
	render.FeatureDistinctRow:            "use DISTINCT instead",
	render.FeatureGroupsFrame:            "use ROWS or RANGE instead",
	render.FeatureILike:                  "use LIKE with a case-insensitive collation instead",
	render.FeatureNullsOrdering:          "order by a CASE WHEN ... IS NULL expression first",
	render.FeatureUpsert:                 "use MERGE instead",
	render.FeatureRowLocking:             "use table hints such as WITH (UPDLOCK) instead",
	render.FeatureArrayValues:            "bind one placeholder per element with IN",
	render.FeaturePaginationWithoutOrder: "add an ORDER BY clause; OFFSET/FETCH requires it",
	render.FeatureTableIfNotExists:       "check OBJECT_ID first",
	render.FeatureIndexIfNotExists:       "check sys.indexes first",
	render.FeatureCascade:                "drop dependent tables first",
}

// Hint suggests an alternative for an unsupported feature.
func (r *Renderer) Hint(feature string) string { return hints[feature] }

// BuildSelect compiles a SELECT.
func (r *Renderer) BuildSelect(stmt *types.SelectStatement) (string, types.Values, error) {
	return r.c.Select(stmt)
}

// BuildInsert compiles an INSERT.
func (r *Renderer) BuildInsert(stmt *types.InsertStatement) (string, types.Values, error) {
	return r.c.Insert(stmt)
}

// BuildUpdate compiles an UPDATE.
func (r *Renderer) BuildUpdate(stmt *types.UpdateStatement) (string, types.Values, error) {
	return r.c.Update(stmt)
}

// BuildDelete compiles a DELETE.
func (r *Renderer) BuildDelete(stmt *types.DeleteStatement) (string, types.Values, error) {
	return r.c.Delete(stmt)
}

// BuildCreateTable compiles a CREATE TABLE.
func (r *Renderer) BuildCreateTable(stmt *types.CreateTableStatement) (string, types.Values, error) {
	return r.c.CreateTable(stmt)
}

// BuildDropTable compiles a DROP TABLE.
func (r *Renderer) BuildDropTable(stmt *types.DropTableStatement) (string, types.Values, error) {
	return r.c.DropTable(stmt)
}

// BuildCreateIndex compiles a CREATE INDEX.
func (r *Renderer) BuildCreateIndex(stmt *types.CreateIndexStatement) (string, types.Values, error) {
	return r.c.CreateIndex(stmt)
}

// BuildDropIndex compiles a DROP INDEX.
func (r *Renderer) BuildDropIndex(stmt *types.DropIndexStatement) (string, types.Values, error) {
	return r.c.DropIndex(stmt)
}

// BuildTruncate compiles a TRUNCATE TABLE.
func (r *Renderer) BuildTruncate(stmt *types.TruncateStatement) (string, types.Values, error) {
	return r.c.Truncate(stmt)
}

// IdentityKeyword returns `IDENTITY(1,1)`.
func (r *Renderer) IdentityKeyword() string { return "IDENTITY(1,1)" }

// WritePagination renders OFFSET ... ROWS FETCH NEXT ... ROWS ONLY. A limit
// without an offset starts at row 0.
func (r *Renderer) WritePagination(c *render.Compiler, w *render.Writer, stmt *types.SelectStatement) {
	w.Push(" OFFSET ")
	if stmt.Offset != nil {
		c.WriteValue(w, *stmt.Offset)
	} else {
		w.Push("0")
	}
	w.Push(" ROWS")
	if stmt.Limit != nil {
		w.Push(" FETCH NEXT ")
		c.WriteValue(w, *stmt.Limit)
		w.Push(" ROWS ONLY")
	}
}
