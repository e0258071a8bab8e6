// Package sqlite provides the SQLite dialect for relq.
package sqlite

import (
	"github.com/zoobzio/relq/internal/render"
	"github.com/zoobzio/relq/internal/types"
)

const dialect = "sqlite"

// Renderer implements the SQLite dialect: double quoted identifiers and `?`
// placeholders.
type Renderer struct {
	c *render.Compiler
}

// New creates a new SQLite renderer.
func New() *Renderer {
	r := &Renderer{}
	r.c = render.NewCompiler(r)
	return r
}

// Name returns the dialect name.
func (r *Renderer) Name() string { return dialect }

// EscapeIdentifier wraps name in double quotes, doubling embedded quotes.
func (r *Renderer) EscapeIdentifier(name string) string {
	return render.EscapeQuoted(name, '"', '"')
}

// FormatPlaceholder returns `?`.
func (r *Renderer) FormatPlaceholder(int) string { return "?" }

// Capabilities returns the SQLite feature set. RETURNING needs SQLite 3.35
// and FULL OUTER JOIN 3.39.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Returning:              true,
		FullOuterJoin:          true,
		JoinUsing:              true,
		Intersect:              true,
		NullsOrdering:          true,
		Upsert:                 true,
		PaginationWithoutOrder: true,
		RecursiveKeyword:       true,
		RowLocking:             render.RowLockingNone,
		TableIfNotExists:       true,
		IndexIfNotExists:       true,
		DropIndexIfExists:      true,
	}
}

var hints = map[string]string{
	render.FeatureDistinctOn:         "use GROUP BY instead",
	render.FeatureDistinctRow:        "use DISTINCT instead",
	render.FeatureGroupsFrame:        "use ROWS or RANGE instead",
	render.FeatureILike:              "LIKE is already case-insensitive for ASCII",
	render.FeatureQuantifiedSubquery: "use IN or EXISTS instead",
	render.FeatureRowLocking:         "SQLite locks the whole database; use BEGIN IMMEDIATE",
	render.FeatureArrayValues:        "bind one placeholder per element with IN",
	render.FeatureOffsetWithoutLimit: "use LIMIT -1 with OFFSET",
	render.FeatureTruncate:           "use DELETE FROM instead",
	render.FeatureCascade:            "drop dependent tables first",
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

// IdentityKeyword returns `AUTOINCREMENT`. SQLite accepts it only on an
// INTEGER PRIMARY KEY.
func (r *Renderer) IdentityKeyword() string { return "AUTOINCREMENT" }
