// Package mysql provides the MySQL dialect for relq.
package mysql

import (
	"fmt"

	"github.com/zoobzio/relq/internal/render"
	"github.com/zoobzio/relq/internal/types"
)

const dialect = "mysql"

// Renderer implements the MySQL dialect: backtick quoted identifiers and
// `?` placeholders.
type Renderer struct {
	c *render.Compiler
}

// New creates a new MySQL renderer.
func New() *Renderer {
	r := &Renderer{}
	r.c = render.NewCompiler(r)
	return r
}

// Name returns the dialect name.
func (r *Renderer) Name() string { return dialect }

// EscapeIdentifier wraps name in backticks, doubling embedded backticks.
func (r *Renderer) EscapeIdentifier(name string) string {
	return render.EscapeQuoted(name, '`', '`')
}

// FormatPlaceholder returns `?`; MySQL placeholders are not numbered.
func (r *Renderer) FormatPlaceholder(int) string { return "?" }

// Capabilities returns the MySQL feature set.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		DistinctRow:            true,
		JoinUsing:              true,
		IndexHints:             true,
		QuantifiedSubquery:     true,
		Upsert:                 true,
		PaginationWithoutOrder: true,
		RecursiveKeyword:       true,
		RowLocking:             render.RowLockingBasic,
		Truncate:               true,
		TableIfNotExists:       true,
		IndexNamesPerTable:     true,
	}
}

var hints = map[string]string{
	render.FeatureFullOuterJoin:      "use LEFT JOIN and RIGHT JOIN with UNION instead",
	render.FeatureIntersect:          "use an INNER JOIN or an IN subquery instead",
	render.FeatureExcept:             "use LEFT JOIN with IS NULL instead",
	render.FeatureReturning:          "use LAST_INSERT_ID() instead",
	render.FeatureDistinctOn:         "use DISTINCT instead",
	render.FeatureGroupsFrame:        "use ROWS or RANGE instead",
	render.FeatureILike:              "use LIKE with a case-insensitive collation instead",
	render.FeatureNullsOrdering:      "order by an IS NULL expression first",
	render.FeatureArrayValues:        "bind one placeholder per element with IN",
	render.FeatureOffsetWithoutLimit: "add a LIMIT clause",
	render.FeatureIndexIfNotExists:   "check information_schema.statistics first",
	render.FeatureDropIndexIfExists:  "check information_schema.statistics first",
	render.FeatureCascade:            "drop dependent tables first",
	types.ForNoKeyUpdate.String():    "use FOR UPDATE instead",
	types.ForKeyShare.String():       "use FOR SHARE instead",
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

// IdentityKeyword returns `AUTO_INCREMENT`.
func (r *Renderer) IdentityKeyword() string { return "AUTO_INCREMENT" }

// WriteUpsert renders ON DUPLICATE KEY UPDATE. Conflict targets are implied
// by the table's unique keys, so Targets is ignored. DO NOTHING becomes a
// no-op assignment of the first inserted column.
func (r *Renderer) WriteUpsert(c *render.Compiler, w *render.Writer, stmt *types.InsertStatement) {
	oc := stmt.OnConflict
	w.Push(" ON DUPLICATE KEY UPDATE ")
	if oc.DoNothing {
		if len(stmt.Columns) == 0 {
			w.Fail(fmt.Errorf("%w: ignoring duplicates needs an explicit column list", render.ErrInvalidExpr))
			return
		}
		c.Ident(w, stmt.Columns[0])
		w.Push(" = ")
		c.Ident(w, stmt.Columns[0])
		return
	}
	if len(oc.Update) == 0 && len(oc.Set) == 0 {
		w.Fail(fmt.Errorf("%w: ON DUPLICATE KEY UPDATE has no assignments", render.ErrEmptyStatement))
		return
	}
	render.PushList(w, oc.Update, ", ", func(w *render.Writer, col string) {
		c.Ident(w, col)
		w.Push(" = VALUES(")
		c.Ident(w, col)
		w.Push(")")
	})
	if len(oc.Update) > 0 && len(oc.Set) > 0 {
		w.Push(", ")
	}
	render.PushList(w, oc.Set, ", ", c.WriteAssignment)
}
