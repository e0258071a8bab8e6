package relq

import "github.com/zoobzio/relq/internal/types"

// All combines items with AND. Empty children are dropped when rendering.
func All(items ...ConditionExpression) Condition {
	return Condition{Type: types.ConditionAll, Items: items}
}

// Any combines items with OR.
func Any(items ...ConditionExpression) Condition {
	return Condition{Type: types.ConditionAny, Items: items}
}

// Not negates item.
func Not(item ConditionExpression) Condition {
	if c, ok := item.(Condition); ok {
		return c.Not()
	}
	return Condition{Negate: true, Items: []ConditionExpression{item}}
}

// Eq is `a = b`.
func Eq(a, b any) BinaryExpr { return binary(a, types.OpEqual, b) }

// Ne is `a <> b`.
func Ne(a, b any) BinaryExpr { return binary(a, types.OpNotEqual, b) }

// Lt is `a < b`.
func Lt(a, b any) BinaryExpr { return binary(a, types.OpLess, b) }

// Lte is `a <= b`.
func Lte(a, b any) BinaryExpr { return binary(a, types.OpLessEqual, b) }

// Gt is `a > b`.
func Gt(a, b any) BinaryExpr { return binary(a, types.OpGreater, b) }

// Gte is `a >= b`.
func Gte(a, b any) BinaryExpr { return binary(a, types.OpGreaterEqual, b) }

// Like is `a LIKE pattern`.
func Like(a, pattern any) BinaryExpr { return binary(a, types.OpLike, pattern) }

// NotLike is `a NOT LIKE pattern`.
func NotLike(a, pattern any) BinaryExpr { return binary(a, types.OpNotLike, pattern) }

// ILike is `a ILIKE pattern`. Only postgres supports it.
func ILike(a, pattern any) BinaryExpr { return binary(a, types.OpILike, pattern) }

// NotILike is `a NOT ILIKE pattern`.
func NotILike(a, pattern any) BinaryExpr { return binary(a, types.OpNotILike, pattern) }

// In is `a IN (...)`. A single slice argument expands to one placeholder per
// element; a single *SelectStatement becomes a subquery.
func In(a any, vals ...any) BinaryExpr {
	return BinaryExpr{Left: types.ToExpr(a), Op: types.OpIn, Right: inList(vals)}
}

// NotIn is `a NOT IN (...)`.
func NotIn(a any, vals ...any) BinaryExpr {
	return BinaryExpr{Left: types.ToExpr(a), Op: types.OpNotIn, Right: inList(vals)}
}

// Between is `a BETWEEN lo AND hi`.
func Between(a, lo, hi any) BinaryExpr {
	return BinaryExpr{Left: types.ToExpr(a), Op: types.OpBetween, Right: Tuple(lo, hi)}
}

// NotBetween is `a NOT BETWEEN lo AND hi`.
func NotBetween(a, lo, hi any) BinaryExpr {
	return BinaryExpr{Left: types.ToExpr(a), Op: types.OpNotBetween, Right: Tuple(lo, hi)}
}

// IsNull is `a IS NULL`.
func IsNull(a any) BinaryExpr {
	return BinaryExpr{Left: types.ToExpr(a), Op: types.OpIs, Right: ConstantExpr{SQL: "NULL"}}
}

// IsNotNull is `a IS NOT NULL`.
func IsNotNull(a any) BinaryExpr {
	return BinaryExpr{Left: types.ToExpr(a), Op: types.OpIsNot, Right: ConstantExpr{SQL: "NULL"}}
}

func inList(vals []any) SimpleExpr {
	if len(vals) == 1 {
		return types.ToExpr(vals[0])
	}
	return Tuple(vals...)
}
