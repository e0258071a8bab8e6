// Package relq compiles a dialect-neutral SQL syntax tree into SQL text plus
// an ordered list of bind values.
//
// Statements are built from plain structs or fluent calls, then handed to a
// dialect. The dialect owns identifier quoting, placeholder syntax and the
// feature set; compiling a construct the dialect cannot express returns an
// UnsupportedFeatureError instead of rewriting it.
//
// # Basic Usage
//
//	import "github.com/zoobzio/relq/mysql"
//
//	stmt := relq.Select().
//		Columns("id", "name").
//		FromTable("users").
//		AndWhere(relq.Eq(relq.Col("active"), true))
//
//	sql, values, err := stmt.Build(mysql.New())
//	// sql: SELECT `id`, `name` FROM `users` WHERE `active` = ?
//	// values: [true]
//
// # Value Ordering
//
// The i-th value always belongs to the i-th placeholder in the text, reading
// left to right, including placeholders contributed by CTEs, subqueries and
// set operation arms. Positional dialects (postgres, mssql) number
// placeholders across nested statements.
//
// # Dialects
//
// Available dialects: postgres, mysql, sqlite, mssql. Each is stateless and
// safe for concurrent use.
package relq

import "github.com/zoobzio/relq/internal/types"

// Value is a single bindable SQL value.
type Value = types.Value

// Values is the ordered list of bind values produced by a compilation.
type Values = types.Values

// Kind identifies the variant held by a Value.
type Kind = types.Kind

// Re-export value kinds for public API.
const (
	KindInvalid = types.KindInvalid
	KindNull    = types.KindNull
	KindBool    = types.KindBool
	KindInt     = types.KindInt
	KindUint    = types.KindUint
	KindFloat   = types.KindFloat
	KindString  = types.KindString
	KindBytes   = types.KindBytes
	KindTime    = types.KindTime
	KindJSON    = types.KindJSON
	KindArray   = types.KindArray
)

// Statement is any compilable statement.
type Statement = types.Statement

// QueryBuilder compiles statements for one SQL dialect.
type QueryBuilder = types.QueryBuilder

// SelectStatement is a SELECT query.
type SelectStatement = types.SelectStatement

// InsertStatement is an INSERT.
type InsertStatement = types.InsertStatement

// UpdateStatement is an UPDATE.
type UpdateStatement = types.UpdateStatement

// DeleteStatement is a DELETE.
type DeleteStatement = types.DeleteStatement

// Schema statements.
type (
	CreateTableStatement = types.CreateTableStatement
	DropTableStatement   = types.DropTableStatement
	CreateIndexStatement = types.CreateIndexStatement
	DropIndexStatement   = types.DropIndexStatement
	TruncateStatement    = types.TruncateStatement
	ColumnDef            = types.ColumnDef
	IndexColumn          = types.IndexColumn
)

// SimpleExpr is a scalar SQL expression.
type SimpleExpr = types.SimpleExpr

// ConditionExpression is a node of a condition tree.
type ConditionExpression = types.ConditionExpression

// Condition is a conjunction or disjunction of conditions.
type Condition = types.Condition

// ColumnRef references a column.
type ColumnRef = types.ColumnRef

// TableRef references a table or derived table.
type TableRef = types.TableRef

// Column and table references.
type (
	Column              = types.Column
	TableColumn         = types.TableColumn
	SchemaTableColumn   = types.SchemaTableColumn
	Asterisk            = types.Asterisk
	TableAsterisk       = types.TableAsterisk
	Table               = types.Table
	SchemaTable         = types.SchemaTable
	DatabaseSchemaTable = types.DatabaseSchemaTable
	TableAlias          = types.TableAlias
	SchemaTableAlias    = types.SchemaTableAlias
	SubQueryTable       = types.SubQueryTable
)

// Expression nodes.
type (
	ColumnExpr   = types.ColumnExpr
	ValueExpr    = types.ValueExpr
	BinaryExpr   = types.BinaryExpr
	UnaryExpr    = types.UnaryExpr
	FuncExpr     = types.FuncExpr
	ConstantExpr = types.ConstantExpr
	SubQueryExpr = types.SubQueryExpr
	TupleExpr    = types.TupleExpr
	CaseExpr     = types.CaseExpr
	WhenClause   = types.WhenClause
	CastExpr     = types.CastExpr
	CustomExpr   = types.CustomExpr
	WindowExpr   = types.WindowExpr
	WindowSpec   = types.WindowSpec
	FrameClause  = types.FrameClause
	FrameBound   = types.FrameBound
)

// Statement parts.
type (
	SelectExpr      = types.SelectExpr
	JoinExpr        = types.JoinExpr
	OrderExpr       = types.OrderExpr
	IndexHint       = types.IndexHint
	LockClause      = types.LockClause
	UnionArm        = types.UnionArm
	CommonTableExpr = types.CommonTableExpr
	OnConflict      = types.OnConflict
	UpdateValue     = types.UpdateValue
)

// BinOper is a binary SQL operator.
type BinOper = types.BinOper

// Re-export operator constants for public API.
const (
	OpEqual        = types.OpEqual
	OpNotEqual     = types.OpNotEqual
	OpLess         = types.OpLess
	OpLessEqual    = types.OpLessEqual
	OpGreater      = types.OpGreater
	OpGreaterEqual = types.OpGreaterEqual
	OpAnd          = types.OpAnd
	OpOr           = types.OpOr
	OpLike         = types.OpLike
	OpNotLike      = types.OpNotLike
	OpILike        = types.OpILike
	OpNotILike     = types.OpNotILike
	OpIn           = types.OpIn
	OpNotIn        = types.OpNotIn
	OpBetween      = types.OpBetween
	OpNotBetween   = types.OpNotBetween
	OpIs           = types.OpIs
	OpIsNot        = types.OpIsNot
	OpAdd          = types.OpAdd
	OpSub          = types.OpSub
	OpMul          = types.OpMul
	OpDiv          = types.OpDiv
	OpMod          = types.OpMod
)

// DistinctKind selects the DISTINCT mode of a SELECT.
type DistinctKind = types.DistinctKind

// Re-export distinct modes for public API.
const (
	DistinctNone = types.DistinctNone
	DistinctAll  = types.DistinctAll
	Distinct     = types.Distinct
	DistinctRow  = types.DistinctRow
	DistinctOn   = types.DistinctOn
)

// JoinType selects the join keyword.
type JoinType = types.JoinType

// Re-export join types for public API.
const (
	Join          = types.Join
	InnerJoin     = types.InnerJoin
	LeftJoin      = types.LeftJoin
	RightJoin     = types.RightJoin
	FullOuterJoin = types.FullOuterJoin
	CrossJoin     = types.CrossJoin
)

// Order is a sort direction.
type Order = types.Order

// Re-export sort directions for public API.
const (
	Asc  = types.Asc
	Desc = types.Desc
)

// NullOrdering places NULLs in an ORDER BY.
type NullOrdering = types.NullOrdering

// Re-export null orderings for public API.
const (
	NullsDefault = types.NullsDefault
	NullsFirst   = types.NullsFirst
	NullsLast    = types.NullsLast
)

// UnionType selects a set operation.
type UnionType = types.UnionType

// Re-export set operations for public API.
const (
	Union     = types.Union
	UnionAll  = types.UnionAll
	Intersect = types.Intersect
	Except    = types.Except
)

// LockType selects the row locking strength.
type LockType = types.LockType

// LockBehavior controls waiting on locked rows.
type LockBehavior = types.LockBehavior

// Re-export locking constants for public API.
const (
	ForUpdate      = types.ForUpdate
	ForNoKeyUpdate = types.ForNoKeyUpdate
	ForShare       = types.ForShare
	ForKeyShare    = types.ForKeyShare
	LockWait       = types.LockWait
	LockNowait     = types.LockNowait
	LockSkipLocked = types.LockSkipLocked
)

// IndexHintType selects USE, FORCE or IGNORE INDEX.
type IndexHintType = types.IndexHintType

// IndexHintScope narrows an index hint.
type IndexHintScope = types.IndexHintScope

// Re-export index hint constants for public API.
const (
	UseIndex         = types.UseIndex
	ForceIndex       = types.ForceIndex
	IgnoreIndex      = types.IgnoreIndex
	HintScopeAll     = types.HintScopeAll
	HintScopeJoin    = types.HintScopeJoin
	HintScopeOrderBy = types.HintScopeOrderBy
	HintScopeGroupBy = types.HintScopeGroupBy
)

// FrameType selects the unit of a window frame.
type FrameType = types.FrameType

// Re-export window frame constants for public API.
const (
	FrameRows          = types.FrameRows
	FrameRange         = types.FrameRange
	FrameGroups        = types.FrameGroups
	UnboundedPreceding = types.UnboundedPreceding
	Preceding          = types.Preceding
	CurrentRow         = types.CurrentRow
	Following          = types.Following
	UnboundedFollowing = types.UnboundedFollowing
)
