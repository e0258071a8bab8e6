package types

// DistinctKind selects the DISTINCT mode of a SELECT.
type DistinctKind uint8

const (
	DistinctNone DistinctKind = iota
	DistinctAll
	Distinct
	DistinctRow
	DistinctOn
)

// JoinType selects the join keyword.
type JoinType uint8

const (
	Join JoinType = iota
	InnerJoin
	LeftJoin
	RightJoin
	FullOuterJoin
	CrossJoin
)

var joinKeywords = [...]string{
	Join:          "JOIN",
	InnerJoin:     "INNER JOIN",
	LeftJoin:      "LEFT JOIN",
	RightJoin:     "RIGHT JOIN",
	FullOuterJoin: "FULL OUTER JOIN",
	CrossJoin:     "CROSS JOIN",
}

func (t JoinType) String() string {
	if int(t) < len(joinKeywords) {
		return joinKeywords[t]
	}
	return "JOIN"
}

// JoinExpr is one entry of the join list. On and Using are mutually
// exclusive; CROSS JOIN takes neither.
type JoinExpr struct {
	Table TableRef
	Using []string
	On    Condition
	Type  JoinType
}

// Order is a sort direction.
type Order uint8

const (
	Asc Order = iota
	Desc
)

// NullOrdering places NULLs in an ORDER BY.
type NullOrdering uint8

const (
	NullsDefault NullOrdering = iota
	NullsFirst
	NullsLast
)

// OrderExpr is one ORDER BY item.
type OrderExpr struct {
	Expr  SimpleExpr
	Order Order
	Nulls NullOrdering
}

// IndexHintType selects USE, FORCE or IGNORE INDEX.
type IndexHintType string

const (
	UseIndex    IndexHintType = "USE"
	ForceIndex  IndexHintType = "FORCE"
	IgnoreIndex IndexHintType = "IGNORE"
)

// IndexHintScope narrows an index hint to one phase of the query.
type IndexHintScope string

const (
	HintScopeAll     IndexHintScope = ""
	HintScopeJoin    IndexHintScope = "JOIN"
	HintScopeOrderBy IndexHintScope = "ORDER BY"
	HintScopeGroupBy IndexHintScope = "GROUP BY"
)

// IndexHint is a MySQL index hint attached to the FROM clause.
type IndexHint struct {
	Type  IndexHintType
	Scope IndexHintScope
	Index string
}

// LockType selects the row locking strength.
type LockType uint8

const (
	LockNone LockType = iota
	ForUpdate
	ForNoKeyUpdate
	ForShare
	ForKeyShare
)

var lockKeywords = [...]string{
	ForUpdate:      "FOR UPDATE",
	ForNoKeyUpdate: "FOR NO KEY UPDATE",
	ForShare:       "FOR SHARE",
	ForKeyShare:    "FOR KEY SHARE",
}

func (t LockType) String() string {
	if t > LockNone && int(t) < len(lockKeywords) {
		return lockKeywords[t]
	}
	return ""
}

// LockBehavior controls waiting on locked rows.
type LockBehavior uint8

const (
	LockWait LockBehavior = iota
	LockNowait
	LockSkipLocked
)

// LockClause is a row locking clause.
type LockClause struct {
	Of       []string
	Type     LockType
	Behavior LockBehavior
}

// UnionType selects a set operation.
type UnionType uint8

const (
	Union UnionType = iota
	UnionAll
	Intersect
	Except
)

var unionKeywords = [...]string{
	Union:     "UNION",
	UnionAll:  "UNION ALL",
	Intersect: "INTERSECT",
	Except:    "EXCEPT",
}

func (t UnionType) String() string {
	if int(t) < len(unionKeywords) {
		return unionKeywords[t]
	}
	return "UNION"
}

// UnionArm is one set operation applied to the preceding query.
type UnionArm struct {
	Query *SelectStatement
	Type  UnionType
}

// CommonTableExpr is one WITH entry.
type CommonTableExpr struct {
	Query     *SelectStatement
	Name      string
	Columns   []string
	Recursive bool
}

// SelectExpr is one projection item.
type SelectExpr struct {
	Expr  SimpleExpr
	Alias string
}

// SelectStatement is a SELECT query. The zero value selects `*` from nothing;
// use the fluent methods or set fields directly.
type SelectStatement struct {
	Limit      *Value
	Offset     *Value
	Lock       *LockClause
	Where      Condition
	Having     Condition
	CTEs       []CommonTableExpr
	DistinctOn []SimpleExpr
	Selects    []SelectExpr
	From       []TableRef
	IndexHints []IndexHint
	Joins      []JoinExpr
	GroupBy    []SimpleExpr
	Orders     []OrderExpr
	Unions     []UnionArm
	Distinct   DistinctKind
}

// NewSelect returns an empty SELECT.
func NewSelect() *SelectStatement {
	return &SelectStatement{}
}

// Build compiles the statement with qb.
func (s *SelectStatement) Build(qb QueryBuilder) (string, Values, error) {
	return qb.BuildSelect(s)
}

// HasUnions reports whether the statement carries set operations.
func (s *SelectStatement) HasUnions() bool {
	return len(s.Unions) > 0
}

// Column appends a column to the projection.
func (s *SelectStatement) Column(col any) *SelectStatement {
	s.Selects = append(s.Selects, SelectExpr{Expr: columnExpr(col)})
	return s
}

// Columns appends several columns to the projection.
func (s *SelectStatement) Columns(cols ...any) *SelectStatement {
	for _, c := range cols {
		s.Column(c)
	}
	return s
}

// Expr appends an expression to the projection.
func (s *SelectStatement) Expr(e SimpleExpr) *SelectStatement {
	s.Selects = append(s.Selects, SelectExpr{Expr: e})
	return s
}

// ExprAs appends an aliased expression to the projection.
func (s *SelectStatement) ExprAs(e SimpleExpr, alias string) *SelectStatement {
	s.Selects = append(s.Selects, SelectExpr{Expr: e, Alias: alias})
	return s
}

// SetDistinct sets SELECT DISTINCT.
func (s *SelectStatement) SetDistinct() *SelectStatement {
	s.Distinct = Distinct
	return s
}

// SetDistinctRow sets SELECT DISTINCTROW.
func (s *SelectStatement) SetDistinctRow() *SelectStatement {
	s.Distinct = DistinctRow
	return s
}

// SetDistinctOn sets SELECT DISTINCT ON (cols).
func (s *SelectStatement) SetDistinctOn(cols ...any) *SelectStatement {
	s.Distinct = DistinctOn
	s.DistinctOn = s.DistinctOn[:0]
	for _, c := range cols {
		s.DistinctOn = append(s.DistinctOn, columnExpr(c))
	}
	return s
}

// FromTable appends a table to the FROM list.
func (s *SelectStatement) FromTable(t any) *SelectStatement {
	s.From = append(s.From, tableRef(t))
	return s
}

// FromSubQuery appends `(query) AS alias` to the FROM list.
func (s *SelectStatement) FromSubQuery(q *SelectStatement, alias string) *SelectStatement {
	s.From = append(s.From, SubQueryTable{Query: q, Alias: alias})
	return s
}

// Join appends a join with an ON condition.
func (s *SelectStatement) Join(typ JoinType, t any, on ConditionExpression) *SelectStatement {
	s.Joins = append(s.Joins, JoinExpr{Type: typ, Table: tableRef(t), On: wrapCondition(on)})
	return s
}

// InnerJoin appends an INNER JOIN.
func (s *SelectStatement) InnerJoin(t any, on ConditionExpression) *SelectStatement {
	return s.Join(InnerJoin, t, on)
}

// LeftJoin appends a LEFT JOIN.
func (s *SelectStatement) LeftJoin(t any, on ConditionExpression) *SelectStatement {
	return s.Join(LeftJoin, t, on)
}

// RightJoin appends a RIGHT JOIN.
func (s *SelectStatement) RightJoin(t any, on ConditionExpression) *SelectStatement {
	return s.Join(RightJoin, t, on)
}

// FullOuterJoin appends a FULL OUTER JOIN.
func (s *SelectStatement) FullOuterJoin(t any, on ConditionExpression) *SelectStatement {
	return s.Join(FullOuterJoin, t, on)
}

// CrossJoin appends a CROSS JOIN.
func (s *SelectStatement) CrossJoin(t any) *SelectStatement {
	s.Joins = append(s.Joins, JoinExpr{Type: CrossJoin, Table: tableRef(t)})
	return s
}

// JoinUsing appends a join with a USING column list.
func (s *SelectStatement) JoinUsing(typ JoinType, t any, cols ...string) *SelectStatement {
	s.Joins = append(s.Joins, JoinExpr{Type: typ, Table: tableRef(t), Using: cols})
	return s
}

// AndWhere adds a condition to WHERE, combined with AND.
func (s *SelectStatement) AndWhere(c ConditionExpression) *SelectStatement {
	s.Where = andInto(s.Where, c)
	return s
}

// CondWhere replaces WHERE.
func (s *SelectStatement) CondWhere(c Condition) *SelectStatement {
	s.Where = c
	return s
}

// GroupByCol appends grouping columns.
func (s *SelectStatement) GroupByCol(cols ...any) *SelectStatement {
	for _, c := range cols {
		s.GroupBy = append(s.GroupBy, columnExpr(c))
	}
	return s
}

// AndHaving adds a condition to HAVING, combined with AND.
func (s *SelectStatement) AndHaving(c ConditionExpression) *SelectStatement {
	s.Having = andInto(s.Having, c)
	return s
}

// OrderBy appends an ORDER BY item.
func (s *SelectStatement) OrderBy(col any, o Order) *SelectStatement {
	s.Orders = append(s.Orders, OrderExpr{Expr: columnExpr(col), Order: o})
	return s
}

// OrderByNulls appends an ORDER BY item with explicit NULL placement.
func (s *SelectStatement) OrderByNulls(col any, o Order, n NullOrdering) *SelectStatement {
	s.Orders = append(s.Orders, OrderExpr{Expr: columnExpr(col), Order: o, Nulls: n})
	return s
}

// SetLimit sets LIMIT. The count is bound, not inlined.
func (s *SelectStatement) SetLimit(n uint64) *SelectStatement {
	v := Uint(n)
	s.Limit = &v
	return s
}

// SetOffset sets OFFSET. The count is bound, not inlined.
func (s *SelectStatement) SetOffset(n uint64) *SelectStatement {
	v := Uint(n)
	s.Offset = &v
	return s
}

// SetLock sets a row locking clause.
func (s *SelectStatement) SetLock(typ LockType, behavior LockBehavior, of ...string) *SelectStatement {
	s.Lock = &LockClause{Type: typ, Behavior: behavior, Of: of}
	return s
}

// With prepends a common table expression.
func (s *SelectStatement) With(name string, q *SelectStatement, cols ...string) *SelectStatement {
	s.CTEs = append(s.CTEs, CommonTableExpr{Name: name, Query: q, Columns: cols})
	return s
}

// WithRecursive prepends a recursive common table expression.
func (s *SelectStatement) WithRecursive(name string, q *SelectStatement, cols ...string) *SelectStatement {
	s.CTEs = append(s.CTEs, CommonTableExpr{Name: name, Query: q, Columns: cols, Recursive: true})
	return s
}

// AddUnion appends a set operation arm.
func (s *SelectStatement) AddUnion(typ UnionType, q *SelectStatement) *SelectStatement {
	s.Unions = append(s.Unions, UnionArm{Type: typ, Query: q})
	return s
}

// AddIndexHint appends a MySQL index hint.
func (s *SelectStatement) AddIndexHint(typ IndexHintType, index string, scope IndexHintScope) *SelectStatement {
	s.IndexHints = append(s.IndexHints, IndexHint{Type: typ, Index: index, Scope: scope})
	return s
}

func columnExpr(col any) SimpleExpr {
	switch c := col.(type) {
	case string:
		return ColumnExpr{Ref: Column{Name: c}}
	default:
		return ToExpr(col)
	}
}

func tableRef(t any) TableRef {
	switch x := t.(type) {
	case TableRef:
		return x
	case string:
		return Table{Name: x}
	default:
		return nil
	}
}

func wrapCondition(c ConditionExpression) Condition {
	switch x := c.(type) {
	case nil:
		return Condition{}
	case Condition:
		return x
	case *Condition:
		if x == nil {
			return Condition{}
		}
		return *x
	default:
		return Condition{Items: []ConditionExpression{c}}
	}
}

// andInto appends c to an AND condition, wrapping an existing OR condition.
func andInto(base Condition, c ConditionExpression) Condition {
	if c == nil {
		return base
	}
	if base.Type == ConditionAll && !base.Negate {
		return base.Add(c)
	}
	return Condition{Items: []ConditionExpression{base, c}}
}
