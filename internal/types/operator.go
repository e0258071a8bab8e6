package types

// BinOper is a binary SQL operator.
type BinOper string

const (
	// Comparison operators.
	OpEqual        BinOper = "="
	OpNotEqual     BinOper = "<>"
	OpLess         BinOper = "<"
	OpLessEqual    BinOper = "<="
	OpGreater      BinOper = ">"
	OpGreaterEqual BinOper = ">="

	// Logical operators.
	OpAnd BinOper = "AND"
	OpOr  BinOper = "OR"

	// Pattern and membership operators.
	OpLike       BinOper = "LIKE"
	OpNotLike    BinOper = "NOT LIKE"
	OpILike      BinOper = "ILIKE"
	OpNotILike   BinOper = "NOT ILIKE"
	OpIn         BinOper = "IN"
	OpNotIn      BinOper = "NOT IN"
	OpBetween    BinOper = "BETWEEN"
	OpNotBetween BinOper = "NOT BETWEEN"
	OpIs         BinOper = "IS"
	OpIsNot      BinOper = "IS NOT"

	// Arithmetic operators.
	OpAdd BinOper = "+"
	OpSub BinOper = "-"
	OpMul BinOper = "*"
	OpDiv BinOper = "/"
	OpMod BinOper = "%"
)

// UnOper is a prefix operator.
type UnOper string

const (
	OpNot    UnOper = "NOT"
	OpNegate UnOper = "-"
)

// SubQueryOper prefixes a subquery expression.
type SubQueryOper string

const (
	SubQueryNone      SubQueryOper = ""
	SubQueryExists    SubQueryOper = "EXISTS"
	SubQueryNotExists SubQueryOper = "NOT EXISTS"
	SubQueryAny       SubQueryOper = "ANY"
	SubQueryAll       SubQueryOper = "ALL"
	SubQuerySome      SubQueryOper = "SOME"
)

// IsQuantified reports whether the operator is ANY, ALL or SOME.
func (op SubQueryOper) IsQuantified() bool {
	return op == SubQueryAny || op == SubQueryAll || op == SubQuerySome
}
