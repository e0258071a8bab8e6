package types

// OnConflict is an upsert clause. DoNothing ignores conflicting rows;
// otherwise Update names columns taken from the proposed row and Set lists
// explicit assignments.
type OnConflict struct {
	Targets   []string
	Update    []string
	Set       []UpdateValue
	DoNothing bool
}

// UpdateValue is one `column = expr` assignment.
type UpdateValue struct {
	Value  SimpleExpr
	Column string
}

// InsertStatement is an INSERT. Rows and Select are mutually exclusive.
type InsertStatement struct {
	Table      TableRef
	Select     *SelectStatement
	OnConflict *OnConflict
	Columns    []string
	Rows       [][]SimpleExpr
	Returning  []ColumnRef
}

// NewInsert returns an empty INSERT.
func NewInsert() *InsertStatement {
	return &InsertStatement{}
}

// Build compiles the statement with qb.
func (s *InsertStatement) Build(qb QueryBuilder) (string, Values, error) {
	return qb.BuildInsert(s)
}

// Into sets the target table.
func (s *InsertStatement) Into(t any) *InsertStatement {
	s.Table = tableRef(t)
	return s
}

// SetColumns sets the column list.
func (s *InsertStatement) SetColumns(cols ...string) *InsertStatement {
	s.Columns = cols
	return s
}

// AddRow appends a row of values. Row width is checked when compiling.
func (s *InsertStatement) AddRow(vals ...any) *InsertStatement {
	s.Rows = append(s.Rows, ToExprs(vals))
	return s
}

// FromSelect inserts the rows produced by q.
func (s *InsertStatement) FromSelect(q *SelectStatement) *InsertStatement {
	s.Select = q
	return s
}

// SetOnConflict sets the upsert clause.
func (s *InsertStatement) SetOnConflict(oc OnConflict) *InsertStatement {
	s.OnConflict = &oc
	return s
}

// SetReturning sets RETURNING columns; no columns means RETURNING *.
func (s *InsertStatement) SetReturning(cols ...any) *InsertStatement {
	s.Returning = returningRefs(cols)
	return s
}

// UpdateStatement is an UPDATE.
type UpdateStatement struct {
	Table     TableRef
	Where     Condition
	Values    []UpdateValue
	Returning []ColumnRef
}

// NewUpdate returns an empty UPDATE.
func NewUpdate() *UpdateStatement {
	return &UpdateStatement{}
}

// Build compiles the statement with qb.
func (s *UpdateStatement) Build(qb QueryBuilder) (string, Values, error) {
	return qb.BuildUpdate(s)
}

// SetTable sets the target table.
func (s *UpdateStatement) SetTable(t any) *UpdateStatement {
	s.Table = tableRef(t)
	return s
}

// Set appends an assignment. Assignments render in call order.
func (s *UpdateStatement) Set(col string, val any) *UpdateStatement {
	s.Values = append(s.Values, UpdateValue{Column: col, Value: ToExpr(val)})
	return s
}

// AndWhere adds a condition to WHERE, combined with AND.
func (s *UpdateStatement) AndWhere(c ConditionExpression) *UpdateStatement {
	s.Where = andInto(s.Where, c)
	return s
}

// SetReturning sets RETURNING columns; no columns means RETURNING *.
func (s *UpdateStatement) SetReturning(cols ...any) *UpdateStatement {
	s.Returning = returningRefs(cols)
	return s
}

// DeleteStatement is a DELETE.
type DeleteStatement struct {
	Table     TableRef
	Where     Condition
	Returning []ColumnRef
}

// NewDelete returns an empty DELETE.
func NewDelete() *DeleteStatement {
	return &DeleteStatement{}
}

// Build compiles the statement with qb.
func (s *DeleteStatement) Build(qb QueryBuilder) (string, Values, error) {
	return qb.BuildDelete(s)
}

// FromTable sets the target table.
func (s *DeleteStatement) FromTable(t any) *DeleteStatement {
	s.Table = tableRef(t)
	return s
}

// AndWhere adds a condition to WHERE, combined with AND.
func (s *DeleteStatement) AndWhere(c ConditionExpression) *DeleteStatement {
	s.Where = andInto(s.Where, c)
	return s
}

// SetReturning sets RETURNING columns; no columns means RETURNING *.
func (s *DeleteStatement) SetReturning(cols ...any) *DeleteStatement {
	s.Returning = returningRefs(cols)
	return s
}

func returningRefs(cols []any) []ColumnRef {
	if len(cols) == 0 {
		return []ColumnRef{Asterisk{}}
	}
	refs := make([]ColumnRef, 0, len(cols))
	for _, c := range cols {
		switch x := c.(type) {
		case string:
			refs = append(refs, Column{Name: x})
		case ColumnRef:
			refs = append(refs, x)
		}
	}
	return refs
}
