package render

import (
	"errors"
	"testing"

	"github.com/zoobzio/relq/internal/types"
)

type testDialect struct {
	caps Capabilities
}

func (d testDialect) Name() string                        { return "test" }
func (d testDialect) EscapeIdentifier(name string) string { return quote(name) }
func (d testDialect) FormatPlaceholder(i int) string      { return dollar(i) }
func (d testDialect) Capabilities() Capabilities          { return d.caps }

func (d testDialect) Hint(feature string) string {
	if feature == FeatureReturning {
		return "select the row afterwards"
	}
	return ""
}

var fullCaps = Capabilities{
	Returning:              true,
	FullOuterJoin:          true,
	JoinUsing:              true,
	DistinctOn:             true,
	DistinctRow:            true,
	Intersect:              true,
	IndexHints:             true,
	CaseInsensitiveLike:    true,
	NullsOrdering:          true,
	GroupsFrame:            true,
	QuantifiedSubquery:     true,
	Upsert:                 true,
	ArrayValues:            true,
	OffsetWithoutLimit:     true,
	PaginationWithoutOrder: true,
	RecursiveKeyword:       true,
	RowLocking:             RowLockingFull,
	Truncate:               true,
	TableIfNotExists:       true,
	IndexIfNotExists:       true,
	DropIndexIfExists:      true,
	DropCascade:            true,
}

func col(name string) types.ColumnExpr {
	return types.ColumnExpr{Ref: types.Column{Name: name}}
}

func val(v any) types.ValueExpr {
	return types.ValueExpr{Value: types.NewValue(v)}
}

func eq(name string, v any) types.BinaryExpr {
	return types.BinaryExpr{Left: col(name), Op: types.OpEqual, Right: val(v)}
}

func selectFrom(table string) *types.SelectStatement {
	return types.NewSelect().FromTable(table)
}

func TestCompiler_Select(t *testing.T) {
	c := NewCompiler(testDialect{caps: fullCaps})

	tests := []struct {
		name     string
		stmt     *types.SelectStatement
		expected string
		values   int
	}{
		{
			name:     "star",
			stmt:     selectFrom("t"),
			expected: `SELECT * FROM "t"`,
		},
		{
			name:     "no from",
			stmt:     types.NewSelect().Expr(val(1)),
			expected: `SELECT $1`,
			values:   1,
		},
		{
			name:     "alias and qualified columns",
			stmt:     types.NewSelect().ExprAs(types.ColumnExpr{Ref: types.TableColumn{Table: "u", Column: "id"}}, "uid").FromTable(types.TableAlias{Table: "users", Alias: "u"}),
			expected: `SELECT "u"."id" AS "uid" FROM "users" AS "u"`,
		},
		{
			name:     "schema qualified",
			stmt:     types.NewSelect().Column(types.TableAsterisk{Table: "t"}).FromTable(types.DatabaseSchemaTable{Database: "db", Schema: "s", Table: "t"}),
			expected: `SELECT "t".* FROM "db"."s"."t"`,
		},
		{
			name:     "group by having",
			stmt:     selectFrom("t").Column("k").GroupByCol("k").AndHaving(types.BinaryExpr{Left: types.FuncExpr{Name: "COUNT", Args: []types.SimpleExpr{types.ColumnExpr{Ref: types.Asterisk{}}}}, Op: types.OpGreater, Right: val(1)}),
			expected: `SELECT "k" FROM "t" GROUP BY "k" HAVING COUNT(*) > $1`,
			values:   1,
		},
		{
			name:     "order nulls",
			stmt:     selectFrom("t").OrderByNulls("a", types.Desc, types.NullsLast).OrderBy("b", types.Asc),
			expected: `SELECT * FROM "t" ORDER BY "a" DESC NULLS LAST, "b" ASC`,
		},
		{
			name:     "join using",
			stmt:     selectFrom("a").JoinUsing(types.LeftJoin, "b", "id", "kind"),
			expected: `SELECT * FROM "a" LEFT JOIN "b" USING ("id", "kind")`,
		},
		{
			name:     "cross join",
			stmt:     selectFrom("a").CrossJoin("b"),
			expected: `SELECT * FROM "a" CROSS JOIN "b"`,
		},
		{
			name: "derived table",
			stmt: types.NewSelect().FromSubQuery(selectFrom("t").AndWhere(eq("a", 1)), "sub").
				AndWhere(eq("b", 2)),
			expected: `SELECT * FROM (SELECT * FROM "t" WHERE "a" = $1) AS "sub" WHERE "b" = $2`,
			values:   2,
		},
		{
			name:     "select all",
			stmt:     func() *types.SelectStatement { s := selectFrom("t"); s.Distinct = types.DistinctAll; return s }(),
			expected: `SELECT ALL * FROM "t"`,
		},
		{
			name:     "lock of tables",
			stmt:     selectFrom("t").SetLock(types.ForShare, types.LockNowait, "t"),
			expected: `SELECT * FROM "t" FOR SHARE OF "t" NOWAIT`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, values, err := c.Select(tt.stmt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != tt.expected {
				t.Errorf("sql mismatch:\nExpected: %s\nActual:   %s", tt.expected, sql)
			}
			if values.Len() != tt.values {
				t.Errorf("values = %d, want %d", values.Len(), tt.values)
			}
		})
	}
}

func TestCompiler_Expressions(t *testing.T) {
	c := NewCompiler(testDialect{caps: fullCaps})

	tests := []struct {
		name     string
		expr     types.SimpleExpr
		expected string
	}{
		{
			name:     "nested arithmetic",
			expr:     types.BinaryExpr{Left: types.BinaryExpr{Left: col("a"), Op: types.OpMul, Right: col("b")}, Op: types.OpAdd, Right: col("c")},
			expected: `("a" * "b") + "c"`,
		},
		{
			name:     "between",
			expr:     types.BinaryExpr{Left: col("a"), Op: types.OpBetween, Right: types.TupleExpr{Items: []types.SimpleExpr{val(1), val(9)}}},
			expected: `"a" BETWEEN $1 AND $2`,
		},
		{
			name:     "in tuple",
			expr:     types.BinaryExpr{Left: col("a"), Op: types.OpIn, Right: types.TupleExpr{Items: []types.SimpleExpr{val(1), val(2)}}},
			expected: `"a" IN ($1, $2)`,
		},
		{
			name:     "in array expands",
			expr:     types.BinaryExpr{Left: col("a"), Op: types.OpNotIn, Right: val([]string{"x", "y", "z"})},
			expected: `"a" NOT IN ($1, $2, $3)`,
		},
		{
			name:     "in scalar",
			expr:     types.BinaryExpr{Left: col("a"), Op: types.OpIn, Right: val(1)},
			expected: `"a" IN ($1)`,
		},
		{
			name:     "unary not",
			expr:     types.UnaryExpr{Op: types.OpNot, Expr: eq("a", 1)},
			expected: `NOT ("a" = $1)`,
		},
		{
			name:     "negate",
			expr:     types.UnaryExpr{Op: types.OpNegate, Expr: col("a")},
			expected: `-"a"`,
		},
		{
			name:     "function distinct",
			expr:     types.FuncExpr{Name: "COUNT", Distinct: true, Args: []types.SimpleExpr{col("a")}},
			expected: `COUNT(DISTINCT "a")`,
		},
		{
			name:     "qualified function",
			expr:     types.FuncExpr{Name: "pg_catalog.lower", Args: []types.SimpleExpr{col("a")}},
			expected: `pg_catalog.lower("a")`,
		},
		{
			name: "case",
			expr: types.CaseExpr{}.
				When(eq("a", 1), val("one")).
				When(types.Condition{Type: types.ConditionAny, Items: []types.ConditionExpression{eq("a", 2), eq("a", 3)}}, val("few")).
				Otherwise(val("many")),
			expected: `CASE WHEN "a" = $1 THEN $2 WHEN "a" = $3 OR "a" = $4 THEN $5 ELSE $6 END`,
		},
		{
			name:     "cast",
			expr:     types.CastExpr{Expr: col("a"), Type: "NUMERIC(10, 2)"},
			expected: `CAST("a" AS NUMERIC(10, 2))`,
		},
		{
			name:     "custom",
			expr:     types.CustomExpr{Template: "coalesce(?, ?) + 1", Args: []types.SimpleExpr{col("a"), val(0)}},
			expected: `coalesce("a", $1) + 1`,
		},
		{
			name:     "constant",
			expr:     types.ConstantExpr{SQL: "CURRENT_TIMESTAMP"},
			expected: `CURRENT_TIMESTAMP`,
		},
		{
			name:     "exists",
			expr:     types.SubQueryExpr{Op: types.SubQueryExists, Query: selectFrom("t").AndWhere(eq("a", 1))},
			expected: `EXISTS (SELECT * FROM "t" WHERE "a" = $1)`,
		},
		{
			name:     "quantified",
			expr:     types.BinaryExpr{Left: col("a"), Op: types.OpGreater, Right: types.SubQueryExpr{Op: types.SubQueryAll, Query: selectFrom("t").Column("b")}},
			expected: `"a" > ALL (SELECT "b" FROM "t")`,
		},
		{
			name: "window",
			expr: types.WindowExpr{
				Func: types.FuncExpr{Name: "SUM", Args: []types.SimpleExpr{col("x")}},
				Window: types.WindowSpec{
					PartitionBy: []types.SimpleExpr{col("g")},
					OrderBy:     []types.OrderExpr{{Expr: col("d")}},
					Frame: &types.FrameClause{
						Type:  types.FrameRows,
						Start: types.FrameBound{Kind: types.Preceding, Offset: 2},
						End:   &types.FrameBound{Kind: types.Following, Offset: 1},
					},
				},
			},
			expected: `SUM("x") OVER (PARTITION BY "g" ORDER BY "d" ASC ROWS BETWEEN 2 PRECEDING AND 1 FOLLOWING)`,
		},
		{
			name: "window order only",
			expr: types.WindowExpr{
				Func:   types.FuncExpr{Name: "ROW_NUMBER"},
				Window: types.WindowSpec{OrderBy: []types.OrderExpr{{Expr: col("d"), Order: types.Desc}}},
			},
			expected: `ROW_NUMBER() OVER (ORDER BY "d" DESC)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _, err := c.Select(types.NewSelect().Expr(tt.expr))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := "SELECT " + tt.expected; sql != want {
				t.Errorf("sql mismatch:\nExpected: %s\nActual:   %s", want, sql)
			}
		})
	}
}

func TestCompiler_Conditions(t *testing.T) {
	c := NewCompiler(testDialect{caps: fullCaps})
	any2 := types.Condition{Type: types.ConditionAny, Items: []types.ConditionExpression{eq("b", 2), eq("c", 3)}}

	tests := []struct {
		name     string
		where    types.Condition
		expected string
	}{
		{
			name:     "empty",
			where:    types.Condition{},
			expected: `SELECT * FROM "t"`,
		},
		{
			name:     "nested empties",
			where:    types.Condition{Items: []types.ConditionExpression{types.Condition{}, types.Condition{Type: types.ConditionAny, Negate: true}}},
			expected: `SELECT * FROM "t"`,
		},
		{
			name:     "top level and",
			where:    types.Condition{Items: []types.ConditionExpression{eq("a", 1), eq("b", 2)}},
			expected: `SELECT * FROM "t" WHERE "a" = $1 AND "b" = $2`,
		},
		{
			name:     "top level or",
			where:    any2,
			expected: `SELECT * FROM "t" WHERE "b" = $1 OR "c" = $2`,
		},
		{
			name:     "nested or",
			where:    types.Condition{Items: []types.ConditionExpression{eq("a", 1), any2}},
			expected: `SELECT * FROM "t" WHERE "a" = $1 AND ("b" = $2 OR "c" = $3)`,
		},
		{
			name:     "single child unwrapped",
			where:    types.Condition{Items: []types.ConditionExpression{types.Condition{Items: []types.ConditionExpression{any2}}}},
			expected: `SELECT * FROM "t" WHERE "b" = $1 OR "c" = $2`,
		},
		{
			name:     "negated leaf",
			where:    types.Condition{Negate: true, Items: []types.ConditionExpression{eq("a", 1)}},
			expected: `SELECT * FROM "t" WHERE NOT ("a" = $1)`,
		},
		{
			name:     "negated group",
			where:    types.Condition{Negate: true, Items: []types.ConditionExpression{eq("a", 1), eq("b", 2)}},
			expected: `SELECT * FROM "t" WHERE NOT ("a" = $1 AND "b" = $2)`,
		},
		{
			name:     "negated single group",
			where:    types.Condition{Negate: true, Items: []types.ConditionExpression{any2}},
			expected: `SELECT * FROM "t" WHERE NOT ("b" = $1 OR "c" = $2)`,
		},
		{
			name: "logical binary inside list",
			where: types.Condition{Items: []types.ConditionExpression{
				types.BinaryExpr{Left: eq("a", 1), Op: types.OpOr, Right: eq("b", 2)},
				eq("c", 3),
			}},
			expected: `SELECT * FROM "t" WHERE (("a" = $1) OR ("b" = $2)) AND "c" = $3`,
		},
		{
			name: "logical binary alone in nested group",
			where: types.Condition{Items: []types.ConditionExpression{
				types.Condition{Type: types.ConditionAny, Items: []types.ConditionExpression{
					types.BinaryExpr{Left: eq("a", 1), Op: types.OpOr, Right: eq("b", 2)},
				}},
				eq("c", 3),
			}},
			expected: `SELECT * FROM "t" WHERE (("a" = $1) OR ("b" = $2)) AND "c" = $3`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _, err := c.Select(selectFrom("t").CondWhere(tt.where))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != tt.expected {
				t.Errorf("sql mismatch:\nExpected: %s\nActual:   %s", tt.expected, sql)
			}
		})
	}
}

func TestCompiler_Gating(t *testing.T) {
	arr := types.ValueExpr{Value: types.Array(types.Int(1))}
	groups := &types.FrameClause{Type: types.FrameGroups, Start: types.FrameBound{Kind: types.CurrentRow}}

	tests := []struct {
		feature string
		build   func(c *Compiler) error
	}{
		{FeatureReturning, func(c *Compiler) error {
			_, _, err := c.Delete(types.NewDelete().FromTable("t").SetReturning("id"))
			return err
		}},
		{FeatureFullOuterJoin, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("a").FullOuterJoin("b", eq("x", 1)))
			return err
		}},
		{FeatureJoinUsing, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("a").JoinUsing(types.InnerJoin, "b", "id"))
			return err
		}},
		{FeatureDistinctOn, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("t").SetDistinctOn("a"))
			return err
		}},
		{FeatureDistinctRow, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("t").SetDistinctRow())
			return err
		}},
		{FeatureIntersect, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("a").AddUnion(types.Intersect, selectFrom("b")))
			return err
		}},
		{FeatureExcept, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("a").AddUnion(types.Except, selectFrom("b")))
			return err
		}},
		{FeatureIndexHints, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("t").AddIndexHint(types.UseIndex, "i", types.HintScopeAll))
			return err
		}},
		{FeatureILike, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("t").AndWhere(types.BinaryExpr{Left: col("a"), Op: types.OpILike, Right: val("x%")}))
			return err
		}},
		{FeatureNullsOrdering, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("t").OrderByNulls("a", types.Asc, types.NullsFirst))
			return err
		}},
		{FeatureGroupsFrame, func(c *Compiler) error {
			_, _, err := c.Select(types.NewSelect().Expr(types.WindowExpr{Func: types.FuncExpr{Name: "RANK"}, Window: types.WindowSpec{Frame: groups}}))
			return err
		}},
		{FeatureQuantifiedSubquery, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("t").AndWhere(types.BinaryExpr{Left: col("a"), Op: types.OpEqual, Right: types.SubQueryExpr{Op: types.SubQueryAny, Query: selectFrom("u")}}))
			return err
		}},
		{FeatureUpsert, func(c *Compiler) error {
			_, _, err := c.Insert(types.NewInsert().Into("t").SetColumns("a").AddRow(1).SetOnConflict(types.OnConflict{DoNothing: true}))
			return err
		}},
		{FeatureRowLocking, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("t").SetLock(types.ForUpdate, types.LockWait))
			return err
		}},
		{FeatureArrayValues, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("t").AndWhere(types.BinaryExpr{Left: col("a"), Op: types.OpEqual, Right: arr}))
			return err
		}},
		{FeatureOffsetWithoutLimit, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("t").OrderBy("a", types.Asc).SetOffset(5))
			return err
		}},
		{FeaturePaginationWithoutOrder, func(c *Compiler) error {
			_, _, err := c.Select(selectFrom("t").SetLimit(5))
			return err
		}},
		{FeatureTruncate, func(c *Compiler) error {
			_, _, err := c.Truncate(types.NewTruncate("t"))
			return err
		}},
		{FeatureTableIfNotExists, func(c *Compiler) error {
			_, _, err := c.CreateTable(types.NewCreateTable().Named("t").Column("a", "INT").SetIfNotExists())
			return err
		}},
		{FeatureIndexIfNotExists, func(c *Compiler) error {
			_, _, err := c.CreateIndex(types.NewCreateIndex("i").On("t", "a").SetIfNotExists())
			return err
		}},
		{FeatureDropIndexIfExists, func(c *Compiler) error {
			_, _, err := c.DropIndex(types.NewDropIndex("i").SetIfExists())
			return err
		}},
		{FeatureCascade, func(c *Compiler) error {
			_, _, err := c.DropTable(types.NewDropTable("t").SetCascade())
			return err
		}},
	}

	none := NewCompiler(testDialect{})
	full := NewCompiler(testDialect{caps: fullCaps})
	for _, tt := range tests {
		t.Run(tt.feature, func(t *testing.T) {
			err := tt.build(none)
			var uf UnsupportedFeatureError
			if !errors.As(err, &uf) {
				t.Fatalf("expected UnsupportedFeatureError, got %v", err)
			}
			if uf.Feature != tt.feature || uf.Dialect != "test" {
				t.Errorf("got %s/%s, want test/%s", uf.Dialect, uf.Feature, tt.feature)
			}
			if err := tt.build(full); err != nil {
				t.Errorf("supported feature failed: %v", err)
			}
		})
	}
}

func TestCompiler_GatingIsDeterministic(t *testing.T) {
	c := NewCompiler(testDialect{})
	stmt := selectFrom("a").FullOuterJoin("b", eq("x", 1))
	_, _, first := c.Select(stmt)
	for i := 0; i < 5; i++ {
		_, _, err := c.Select(stmt)
		if err == nil || err.Error() != first.Error() {
			t.Fatalf("run %d: %v, want %v", i, err, first)
		}
	}
}

func TestCompiler_Hint(t *testing.T) {
	c := NewCompiler(testDialect{})
	_, _, err := c.Insert(types.NewInsert().Into("t").SetColumns("a").AddRow(1).SetReturning())
	var uf UnsupportedFeatureError
	if !errors.As(err, &uf) {
		t.Fatalf("expected UnsupportedFeatureError, got %v", err)
	}
	if uf.Hint != "select the row afterwards" {
		t.Errorf("Hint = %q", uf.Hint)
	}
	if err.Error() != "test: RETURNING is not supported: select the row afterwards" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestCompiler_RowLockingBasic(t *testing.T) {
	caps := fullCaps
	caps.RowLocking = RowLockingBasic
	c := NewCompiler(testDialect{caps: caps})

	if _, _, err := c.Select(selectFrom("t").SetLock(types.ForUpdate, types.LockSkipLocked)); err != nil {
		t.Errorf("FOR UPDATE failed: %v", err)
	}
	_, _, err := c.Select(selectFrom("t").SetLock(types.ForKeyShare, types.LockWait))
	var uf UnsupportedFeatureError
	if !errors.As(err, &uf) || uf.Feature != "FOR KEY SHARE" {
		t.Errorf("err = %v, want FOR KEY SHARE refusal", err)
	}
}

func TestCompiler_Malformed(t *testing.T) {
	c := NewCompiler(testDialect{caps: fullCaps})

	tests := []struct {
		name  string
		want  error
		build func() error
	}{
		{"insert without table", ErrNoTable, func() error {
			_, _, err := c.Insert(types.NewInsert().SetColumns("a").AddRow(1))
			return err
		}},
		{"update without table", ErrNoTable, func() error {
			_, _, err := c.Update(types.NewUpdate().Set("a", 1))
			return err
		}},
		{"delete without table", ErrNoTable, func() error {
			_, _, err := c.Delete(types.NewDelete())
			return err
		}},
		{"unknown table ref", ErrNoTable, func() error {
			_, _, err := c.Delete(types.NewDelete().FromTable(42))
			return err
		}},
		{"row too short", ErrRowLength, func() error {
			_, _, err := c.Insert(types.NewInsert().Into("t").SetColumns("a", "b").AddRow(1))
			return err
		}},
		{"ragged rows", ErrRowLength, func() error {
			_, _, err := c.Insert(types.NewInsert().Into("t").AddRow(1, 2).AddRow(3))
			return err
		}},
		{"insert without rows", ErrEmptyStatement, func() error {
			_, _, err := c.Insert(types.NewInsert().Into("t").SetColumns("a"))
			return err
		}},
		{"update without values", ErrEmptyStatement, func() error {
			_, _, err := c.Update(types.NewUpdate().SetTable("t"))
			return err
		}},
		{"nil select", ErrEmptyStatement, func() error {
			_, _, err := c.Select(nil)
			return err
		}},
		{"nil cte body", ErrEmptyStatement, func() error {
			_, _, err := c.Select(selectFrom("x").With("x", nil))
			return err
		}},
		{"empty in", ErrEmptyList, func() error {
			_, _, err := c.Select(selectFrom("t").AndWhere(types.BinaryExpr{Left: col("a"), Op: types.OpIn, Right: types.TupleExpr{}}))
			return err
		}},
		{"empty in array", ErrEmptyList, func() error {
			_, _, err := c.Select(selectFrom("t").AndWhere(types.BinaryExpr{Left: col("a"), Op: types.OpIn, Right: val([]int{})}))
			return err
		}},
		{"bad function name", ErrInvalidExpr, func() error {
			_, _, err := c.Select(types.NewSelect().Expr(types.FuncExpr{Name: "x(); DROP TABLE t; --"}))
			return err
		}},
		{"bad cast type", ErrInvalidExpr, func() error {
			_, _, err := c.Select(types.NewSelect().Expr(types.CastExpr{Expr: col("a"), Type: "int); DROP TABLE t; --"}))
			return err
		}},
		{"bad operator", ErrInvalidExpr, func() error {
			_, _, err := c.Select(selectFrom("t").AndWhere(types.BinaryExpr{Left: col("a"), Op: "; DROP", Right: val(1)}))
			return err
		}},
		{"template slots", ErrInvalidExpr, func() error {
			_, _, err := c.Select(types.NewSelect().Expr(types.CustomExpr{Template: "? + ?", Args: []types.SimpleExpr{val(1)}}))
			return err
		}},
		{"unbindable value", ErrInvalidExpr, func() error {
			_, _, err := c.Select(selectFrom("t").AndWhere(eq("a", map[string]int{})))
			return err
		}},
		{"nil expression", ErrInvalidExpr, func() error {
			_, _, err := c.Select(types.NewSelect().Expr(nil))
			return err
		}},
		{"between arity", ErrInvalidExpr, func() error {
			_, _, err := c.Select(selectFrom("t").AndWhere(types.BinaryExpr{Left: col("a"), Op: types.OpBetween, Right: val(1)}))
			return err
		}},
		{"rows and select", ErrInvalidExpr, func() error {
			_, _, err := c.Insert(types.NewInsert().Into("t").AddRow(1).FromSelect(selectFrom("u")))
			return err
		}},
		{"do update without target", ErrInvalidExpr, func() error {
			_, _, err := c.Insert(types.NewInsert().Into("t").SetColumns("a").AddRow(1).SetOnConflict(types.OnConflict{Update: []string{"a"}}))
			return err
		}},
		{"empty identifier", ErrInvalidExpr, func() error {
			_, _, err := c.Select(types.NewSelect().Column(""))
			return err
		}},
		{"cross join with condition", ErrInvalidExpr, func() error {
			_, _, err := c.Select(selectFrom("a").Join(types.CrossJoin, "b", eq("x", 1)))
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCompiler_Insert(t *testing.T) {
	c := NewCompiler(testDialect{caps: fullCaps})

	tests := []struct {
		name     string
		stmt     *types.InsertStatement
		expected string
		values   int
	}{
		{
			name:     "rows",
			stmt:     types.NewInsert().Into("t").SetColumns("a", "b").AddRow(1, 2).AddRow(3, 4),
			expected: `INSERT INTO "t" ("a", "b") VALUES ($1, $2), ($3, $4)`,
			values:   4,
		},
		{
			name:     "from select",
			stmt:     types.NewInsert().Into("archive").SetColumns("id").FromSelect(selectFrom("t").Column("id").AndWhere(eq("old", true))),
			expected: `INSERT INTO "archive" ("id") SELECT "id" FROM "t" WHERE "old" = $1`,
			values:   1,
		},
		{
			name: "upsert mixed",
			stmt: types.NewInsert().Into("t").SetColumns("id", "n").AddRow(1, 2).SetOnConflict(types.OnConflict{
				Targets: []string{"id"},
				Update:  []string{"n"},
				Set:     []types.UpdateValue{{Column: "hits", Value: types.BinaryExpr{Left: col("hits"), Op: types.OpAdd, Right: val(1)}}},
			}),
			expected: `INSERT INTO "t" ("id", "n") VALUES ($1, $2) ON CONFLICT ("id") DO UPDATE SET "n" = EXCLUDED."n", "hits" = "hits" + $3`,
			values:   3,
		},
		{
			name:     "do nothing",
			stmt:     types.NewInsert().Into("t").SetColumns("id").AddRow(1).SetOnConflict(types.OnConflict{DoNothing: true}),
			expected: `INSERT INTO "t" ("id") VALUES ($1) ON CONFLICT DO NOTHING`,
			values:   1,
		},
		{
			name:     "returning",
			stmt:     types.NewInsert().Into("t").SetColumns("a").AddRow(1).SetReturning("id", types.TableColumn{Table: "t", Column: "a"}),
			expected: `INSERT INTO "t" ("a") VALUES ($1) RETURNING "id", "t"."a"`,
			values:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, values, err := c.Insert(tt.stmt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != tt.expected {
				t.Errorf("sql mismatch:\nExpected: %s\nActual:   %s", tt.expected, sql)
			}
			if values.Len() != tt.values {
				t.Errorf("values = %d, want %d", values.Len(), tt.values)
			}
		})
	}
}

func TestCompiler_UnionParentheses(t *testing.T) {
	c := NewCompiler(testDialect{caps: fullCaps})
	arm := selectFrom("b").AddUnion(types.Union, selectFrom("c").AndWhere(eq("x", 2)))
	stmt := selectFrom("a").AndWhere(eq("x", 1)).AddUnion(types.UnionAll, arm).AddUnion(types.Except, selectFrom("d"))

	sql, values, err := c.Select(stmt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `SELECT * FROM "a" WHERE "x" = $1 UNION ALL (SELECT * FROM "b" UNION SELECT * FROM "c" WHERE "x" = $2) EXCEPT SELECT * FROM "d"`
	if sql != expected {
		t.Errorf("sql mismatch:\nExpected: %s\nActual:   %s", expected, sql)
	}
	if values.Len() != 2 || values[1].Interface() != int64(2) {
		t.Errorf("values = %v", values)
	}
}

func TestCompiler_RecursiveKeyword(t *testing.T) {
	caps := fullCaps
	body := selectFrom("n")
	stmt := selectFrom("tree").WithRecursive("tree", body)

	sql, _, err := NewCompiler(testDialect{caps: caps}).Select(stmt)
	if err != nil || sql != `WITH RECURSIVE "tree" AS (SELECT * FROM "n") SELECT * FROM "tree"` {
		t.Errorf("with keyword: %q %v", sql, err)
	}

	caps.RecursiveKeyword = false
	sql, _, err = NewCompiler(testDialect{caps: caps}).Select(stmt)
	if err != nil || sql != `WITH "tree" AS (SELECT * FROM "n") SELECT * FROM "tree"` {
		t.Errorf("without keyword: %q %v", sql, err)
	}
}
