package relq

import "github.com/zoobzio/relq/internal/types"

// Col references a column by name.
func Col(name string) ColumnExpr {
	return ColumnExpr{Ref: Column{Name: name}}
}

// TCol references a table qualified column.
func TCol(table, column string) ColumnExpr {
	return ColumnExpr{Ref: TableColumn{Table: table, Column: column}}
}

// Star is `*`.
func Star() ColumnExpr {
	return ColumnExpr{Ref: Asterisk{}}
}

// TStar is `table.*`.
func TStar(table string) ColumnExpr {
	return ColumnExpr{Ref: TableAsterisk{Table: table}}
}

// Tbl references a table by name.
func Tbl(name string) Table {
	return Table{Name: name}
}

// TblAs references a table under an alias.
func TblAs(name, alias string) TableAlias {
	return TableAlias{Table: name, Alias: alias}
}

// Val binds a Go value.
func Val(v any) ValueExpr {
	return ValueExpr{Value: types.NewValue(v)}
}

// NewValue converts a Go value into a Value.
func NewValue(v any) Value {
	return types.NewValue(v)
}

// Null is the SQL NULL value.
func Null() Value {
	return types.Null()
}

// JSON binds a JSON document.
func JSON(doc []byte) Value {
	return types.JSON(doc)
}

// Array binds an array value. Only postgres accepts arrays outside IN lists.
func Array(items ...any) Value {
	vals := make([]Value, len(items))
	for i, item := range items {
		vals[i] = types.NewValue(item)
	}
	return types.Array(vals...)
}

// Expr lifts a Go value into an expression: expressions pass through, column
// refs become column expressions, selects become scalar subqueries and
// everything else is bound.
func Expr(v any) SimpleExpr {
	return types.ToExpr(v)
}

// Func calls a SQL function.
func Func(name string, args ...any) FuncExpr {
	return FuncExpr{Name: name, Args: types.ToExprs(args)}
}

// Count is COUNT(arg). A nil arg counts rows.
func Count(arg any) FuncExpr {
	if arg == nil {
		return FuncExpr{Name: "COUNT", Args: []SimpleExpr{Star()}}
	}
	return Func("COUNT", arg)
}

// CountDistinct is COUNT(DISTINCT arg).
func CountDistinct(arg any) FuncExpr {
	f := Func("COUNT", arg)
	f.Distinct = true
	return f
}

// Sum is SUM(arg).
func Sum(arg any) FuncExpr { return Func("SUM", arg) }

// Avg is AVG(arg).
func Avg(arg any) FuncExpr { return Func("AVG", arg) }

// Min is MIN(arg).
func Min(arg any) FuncExpr { return Func("MIN", arg) }

// Max is MAX(arg).
func Max(arg any) FuncExpr { return Func("MAX", arg) }

// Coalesce is COALESCE(args...).
func Coalesce(args ...any) FuncExpr { return Func("COALESCE", args...) }

// Cust embeds raw SQL. Never build it from user input.
func Cust(sql string) ConstantExpr {
	return ConstantExpr{SQL: sql}
}

// CustWith fills the `?` slots of template with args, in order. Values in
// args are bound, not interpolated.
func CustWith(template string, args ...any) CustomExpr {
	return CustomExpr{Template: template, Args: types.ToExprs(args)}
}

// Cast is CAST(expr AS typ).
func Cast(expr any, typ string) CastExpr {
	return CastExpr{Expr: types.ToExpr(expr), Type: typ}
}

// Case starts a searched CASE expression with its first arm.
func Case(cond ConditionExpression, result any) CaseExpr {
	return CaseExpr{}.When(cond, types.ToExpr(result))
}

// Tuple is a parenthesized expression list.
func Tuple(items ...any) TupleExpr {
	return TupleExpr{Items: types.ToExprs(items)}
}

// SubQuery embeds q as a scalar subquery.
func SubQuery(q *SelectStatement) SubQueryExpr {
	return SubQueryExpr{Query: q}
}

// Exists is EXISTS (q).
func Exists(q *SelectStatement) SubQueryExpr {
	return SubQueryExpr{Op: types.SubQueryExists, Query: q}
}

// NotExists is NOT EXISTS (q).
func NotExists(q *SelectStatement) SubQueryExpr {
	return SubQueryExpr{Op: types.SubQueryNotExists, Query: q}
}

// AnyOf is ANY (q), for use on the right of a comparison.
func AnyOf(q *SelectStatement) SubQueryExpr {
	return SubQueryExpr{Op: types.SubQueryAny, Query: q}
}

// AllOf is ALL (q).
func AllOf(q *SelectStatement) SubQueryExpr {
	return SubQueryExpr{Op: types.SubQueryAll, Query: q}
}

// SomeOf is SOME (q).
func SomeOf(q *SelectStatement) SubQueryExpr {
	return SubQueryExpr{Op: types.SubQuerySome, Query: q}
}

// Over applies a window to fn.
func Over(fn SimpleExpr, spec WindowSpec) WindowExpr {
	return WindowExpr{Func: fn, Window: spec}
}

// Ord builds an ORDER BY item.
func Ord(expr any, o Order) OrderExpr {
	return OrderExpr{Expr: types.ToExpr(expr), Order: o}
}

// Add is `a + b`.
func Add(a, b any) BinaryExpr { return binary(a, types.OpAdd, b) }

// Sub is `a - b`.
func Sub(a, b any) BinaryExpr { return binary(a, types.OpSub, b) }

// Mul is `a * b`.
func Mul(a, b any) BinaryExpr { return binary(a, types.OpMul, b) }

// Div is `a / b`.
func Div(a, b any) BinaryExpr { return binary(a, types.OpDiv, b) }

// Mod is `a % b`.
func Mod(a, b any) BinaryExpr { return binary(a, types.OpMod, b) }

// Neg is `-a`.
func Neg(a any) UnaryExpr {
	return UnaryExpr{Op: types.OpNegate, Expr: types.ToExpr(a)}
}

func binary(a any, op BinOper, b any) BinaryExpr {
	return BinaryExpr{Left: types.ToExpr(a), Op: op, Right: types.ToExpr(b)}
}
