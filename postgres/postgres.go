// Package postgres provides the PostgreSQL dialect for relq.
package postgres

import (
	"strconv"

	"github.com/lib/pq"

	"github.com/zoobzio/relq/internal/render"
	"github.com/zoobzio/relq/internal/types"
)

const dialect = "postgres"

// Renderer implements the PostgreSQL dialect: double quoted identifiers and
// positional `$N` placeholders.
type Renderer struct {
	c *render.Compiler
}

// New creates a new PostgreSQL renderer.
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

// FormatPlaceholder returns `$index`.
func (r *Renderer) FormatPlaceholder(index int) string {
	return "$" + strconv.Itoa(index)
}

// Capabilities returns the PostgreSQL feature set.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Returning:              true,
		FullOuterJoin:          true,
		JoinUsing:              true,
		DistinctOn:             true,
		Intersect:              true,
		CaseInsensitiveLike:    true,
		NullsOrdering:          true,
		GroupsFrame:            true,
		QuantifiedSubquery:     true,
		Upsert:                 true,
		ArrayValues:            true,
		OffsetWithoutLimit:     true,
		PaginationWithoutOrder: true,
		RecursiveKeyword:       true,
		RowLocking:             render.RowLockingFull,
		Truncate:               true,
		TableIfNotExists:       true,
		IndexIfNotExists:       true,
		DropIndexIfExists:      true,
		DropCascade:            true,
	}
}

var hints = map[string]string{
	render.FeatureDistinctRow: "use DISTINCT instead",
	render.FeatureIndexHints:  "PostgreSQL has no index hints; adjust statistics or indexes instead",
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

// IdentityKeyword returns `GENERATED BY DEFAULT AS IDENTITY`.
func (r *Renderer) IdentityKeyword() string { return "GENERATED BY DEFAULT AS IDENTITY" }

// Args converts values to driver arguments. Array values are wrapped with
// the matching lib/pq array type so they bind as PostgreSQL arrays.
func (r *Renderer) Args(values types.Values) []any {
	args := values.Args()
	for i, v := range values {
		if v.Kind() == types.KindArray {
			args[i] = arrayArg(v.Items())
		}
	}
	return args
}

func arrayArg(items []types.Value) any {
	kind := types.KindInvalid
	for _, item := range items {
		if kind != types.KindInvalid && item.Kind() != kind {
			kind = types.KindInvalid
			break
		}
		kind = item.Kind()
	}
	raw := make([]any, len(items))
	for i, item := range items {
		raw[i] = item.Interface()
	}
	switch kind {
	case types.KindInt:
		out := make(pq.Int64Array, len(raw))
		for i, x := range raw {
			out[i] = x.(int64)
		}
		return out
	case types.KindFloat:
		out := make(pq.Float64Array, len(raw))
		for i, x := range raw {
			out[i] = x.(float64)
		}
		return out
	case types.KindString:
		out := make(pq.StringArray, len(raw))
		for i, x := range raw {
			out[i] = x.(string)
		}
		return out
	case types.KindBool:
		out := make(pq.BoolArray, len(raw))
		for i, x := range raw {
			out[i] = x.(bool)
		}
		return out
	case types.KindBytes:
		out := make(pq.ByteaArray, len(raw))
		for i, x := range raw {
			out[i] = x.([]byte)
		}
		return out
	default:
		return pq.GenericArray{A: raw}
	}
}
