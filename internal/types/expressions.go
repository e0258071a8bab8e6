package types

// SimpleExpr is a scalar SQL expression. Every SimpleExpr can also stand
// alone as a condition.
type SimpleExpr interface {
	ConditionExpression
	isSimpleExpr()
}

// ColumnExpr references a column.
type ColumnExpr struct {
	Ref ColumnRef
}

// ValueExpr binds a value through a placeholder.
type ValueExpr struct {
	Value Value
}

// BinaryExpr is `left op right`.
type BinaryExpr struct {
	Left  SimpleExpr
	Right SimpleExpr
	Op    BinOper
}

// UnaryExpr is `op expr`.
type UnaryExpr struct {
	Expr SimpleExpr
	Op   UnOper
}

// FuncExpr is a function call. Name is emitted verbatim and must be a plain
// (optionally dotted) SQL identifier.
type FuncExpr struct {
	Name     string
	Args     []SimpleExpr
	Distinct bool
}

// ConstantExpr is pre-rendered SQL emitted without escaping. Never build one
// from user input.
type ConstantExpr struct {
	SQL string
}

// SubQueryExpr embeds a SELECT, optionally prefixed by EXISTS, ANY, ALL or SOME.
type SubQueryExpr struct {
	Query *SelectStatement
	Op    SubQueryOper
}

// TupleExpr is a parenthesized expression list.
type TupleExpr struct {
	Items []SimpleExpr
}

// WhenClause is one WHEN ... THEN ... arm of a CASE expression.
type WhenClause struct {
	Cond   ConditionExpression
	Result SimpleExpr
}

// CaseExpr is a searched CASE expression.
type CaseExpr struct {
	Else  SimpleExpr
	Whens []WhenClause
}

// CastExpr is `CAST(expr AS type)`.
type CastExpr struct {
	Expr SimpleExpr
	Type string
}

// CustomExpr is a SQL template whose `?` slots are filled, in order, by Args.
// Values inside Args are bound, never interpolated.
type CustomExpr struct {
	Template string
	Args     []SimpleExpr
}

// WindowExpr is `func OVER (window)`.
type WindowExpr struct {
	Func   SimpleExpr
	Window WindowSpec
}

// FrameType selects the unit of a window frame.
type FrameType string

const (
	FrameRows   FrameType = "ROWS"
	FrameRange  FrameType = "RANGE"
	FrameGroups FrameType = "GROUPS"
)

// FrameBoundKind selects a window frame boundary.
type FrameBoundKind uint8

const (
	UnboundedPreceding FrameBoundKind = iota
	Preceding
	CurrentRow
	Following
	UnboundedFollowing
)

// FrameBound is one end of a window frame. Offset is used by Preceding and
// Following.
type FrameBound struct {
	Kind   FrameBoundKind
	Offset uint64
}

// FrameClause is `type BETWEEN start AND end`, or `type start` when End is nil.
type FrameClause struct {
	End   *FrameBound
	Type  FrameType
	Start FrameBound
}

// WindowSpec is the body of an OVER clause.
type WindowSpec struct {
	Frame       *FrameClause
	PartitionBy []SimpleExpr
	OrderBy     []OrderExpr
}

func (ColumnExpr) isSimpleExpr()   {}
func (ValueExpr) isSimpleExpr()    {}
func (BinaryExpr) isSimpleExpr()   {}
func (UnaryExpr) isSimpleExpr()    {}
func (FuncExpr) isSimpleExpr()     {}
func (ConstantExpr) isSimpleExpr() {}
func (SubQueryExpr) isSimpleExpr() {}
func (TupleExpr) isSimpleExpr()    {}
func (CaseExpr) isSimpleExpr()     {}
func (CastExpr) isSimpleExpr()     {}
func (CustomExpr) isSimpleExpr()   {}
func (WindowExpr) isSimpleExpr()   {}

func (ColumnExpr) isConditionExpression()   {}
func (ValueExpr) isConditionExpression()    {}
func (BinaryExpr) isConditionExpression()   {}
func (UnaryExpr) isConditionExpression()    {}
func (FuncExpr) isConditionExpression()     {}
func (ConstantExpr) isConditionExpression() {}
func (SubQueryExpr) isConditionExpression() {}
func (TupleExpr) isConditionExpression()    {}
func (CaseExpr) isConditionExpression()     {}
func (CastExpr) isConditionExpression()     {}
func (CustomExpr) isConditionExpression()   {}
func (WindowExpr) isConditionExpression()   {}

// ToExpr lifts a Go value into an expression. Expressions pass through,
// column refs become ColumnExpr, select statements become scalar subqueries
// and everything else is bound as a value.
func ToExpr(v any) SimpleExpr {
	switch x := v.(type) {
	case SimpleExpr:
		return x
	case ColumnRef:
		return ColumnExpr{Ref: x}
	case *SelectStatement:
		return SubQueryExpr{Query: x}
	default:
		return ValueExpr{Value: NewValue(v)}
	}
}

// ToExprs applies ToExpr to each element.
func ToExprs(vs []any) []SimpleExpr {
	out := make([]SimpleExpr, len(vs))
	for i, v := range vs {
		out[i] = ToExpr(v)
	}
	return out
}

// When returns a copy of e with another WHEN arm.
func (e CaseExpr) When(cond ConditionExpression, result SimpleExpr) CaseExpr {
	e.Whens = append(append([]WhenClause(nil), e.Whens...), WhenClause{Cond: cond, Result: result})
	return e
}

// Otherwise returns a copy of e with an ELSE result.
func (e CaseExpr) Otherwise(result SimpleExpr) CaseExpr {
	e.Else = result
	return e
}
