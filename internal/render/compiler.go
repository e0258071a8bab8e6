package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zoobzio/relq/internal/types"
)

var (
	funcNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
	castTypePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_ ]*(\([0-9]+(, ?[0-9]+)?\))?(\[\])?$`)
)

var binOpers = map[types.BinOper]bool{
	types.OpEqual: true, types.OpNotEqual: true,
	types.OpLess: true, types.OpLessEqual: true,
	types.OpGreater: true, types.OpGreaterEqual: true,
	types.OpAnd: true, types.OpOr: true,
	types.OpLike: true, types.OpNotLike: true,
	types.OpILike: true, types.OpNotILike: true,
	types.OpIn: true, types.OpNotIn: true,
	types.OpBetween: true, types.OpNotBetween: true,
	types.OpIs: true, types.OpIsNot: true,
	types.OpAdd: true, types.OpSub: true, types.OpMul: true, types.OpDiv: true, types.OpMod: true,
}

// Compiler walks statements and writes them for one dialect. It holds no
// mutable state and may be shared across goroutines.
type Compiler struct {
	d    Dialect
	caps Capabilities
}

// NewCompiler creates a compiler for d.
func NewCompiler(d Dialect) *Compiler {
	return &Compiler{d: d, caps: d.Capabilities()}
}

// Unsupported builds the refusal error for feature.
func (c *Compiler) Unsupported(feature string) error {
	if hint := c.d.Hint(feature); hint != "" {
		return NewUnsupportedFeatureError(c.d.Name(), feature, hint)
	}
	return NewUnsupportedFeatureError(c.d.Name(), feature)
}

// Select compiles a SELECT.
func (c *Compiler) Select(stmt *types.SelectStatement) (string, types.Values, error) {
	return c.compileSelect(stmt, 0)
}

// Insert compiles an INSERT.
func (c *Compiler) Insert(stmt *types.InsertStatement) (string, types.Values, error) {
	w := NewWriter(0)
	if stmt == nil {
		w.Fail(fmt.Errorf("%w: nil INSERT", ErrEmptyStatement))
	} else {
		c.writeInsert(w, stmt)
	}
	return w.Finish()
}

// Update compiles an UPDATE.
func (c *Compiler) Update(stmt *types.UpdateStatement) (string, types.Values, error) {
	w := NewWriter(0)
	if stmt == nil {
		w.Fail(fmt.Errorf("%w: nil UPDATE", ErrEmptyStatement))
	} else {
		c.writeUpdate(w, stmt)
	}
	return w.Finish()
}

// Delete compiles a DELETE.
func (c *Compiler) Delete(stmt *types.DeleteStatement) (string, types.Values, error) {
	w := NewWriter(0)
	if stmt == nil {
		w.Fail(fmt.Errorf("%w: nil DELETE", ErrEmptyStatement))
	} else {
		c.writeDelete(w, stmt)
	}
	return w.Finish()
}

func (c *Compiler) compileSelect(stmt *types.SelectStatement, offset int) (string, types.Values, error) {
	w := NewWriter(offset)
	c.writeSelect(w, stmt)
	return w.Finish()
}

// SubQuery compiles q into its own writer, numbered after w's placeholders,
// and splices the result into w.
func (c *Compiler) SubQuery(w *Writer, q *types.SelectStatement) {
	if w.Err() != nil {
		return
	}
	w.Splice(c.compileSelect(q, w.Position()))
}

// Ident writes a quoted identifier.
func (c *Compiler) Ident(w *Writer, name string) {
	w.PushIdentifier(name, c.d.EscapeIdentifier)
}

// Idents writes a comma separated identifier list.
func (c *Compiler) Idents(w *Writer, names []string) {
	PushList(w, names, ", ", c.Ident)
}

// WriteValue binds v.
func (c *Compiler) WriteValue(w *Writer, v types.Value) {
	if v.Kind() == types.KindArray && !c.caps.ArrayValues {
		w.Fail(c.Unsupported(FeatureArrayValues))
		return
	}
	w.PushValue(v, c.d.FormatPlaceholder)
}

func (c *Compiler) writeSelect(w *Writer, s *types.SelectStatement) {
	if s == nil {
		w.Fail(fmt.Errorf("%w: nil SELECT", ErrEmptyStatement))
		return
	}
	c.writeCTEs(w, s.CTEs)
	w.Push("SELECT")
	c.writeDistinct(w, s)
	w.Push(" ")
	if len(s.Selects) == 0 {
		w.Push("*")
	} else {
		PushList(w, s.Selects, ", ", c.writeSelectExpr)
	}
	if len(s.From) > 0 {
		w.Push(" FROM ")
		PushList(w, s.From, ", ", c.WriteTable)
	} else if len(s.Joins) > 0 {
		w.Fail(fmt.Errorf("%w: SELECT with joins", ErrNoTable))
		return
	}
	c.writeIndexHints(w, s)
	for _, j := range s.Joins {
		c.writeJoin(w, j)
	}
	c.writeFilter(w, "WHERE", s.Where)
	if len(s.GroupBy) > 0 {
		w.Push(" GROUP BY ")
		PushList(w, s.GroupBy, ", ", c.WriteExpr)
	}
	c.writeFilter(w, "HAVING", s.Having)
	if len(s.Orders) > 0 {
		w.Push(" ORDER BY ")
		PushList(w, s.Orders, ", ", c.WriteOrder)
	}
	c.writePagination(w, s)
	c.writeLock(w, s.Lock)
	for _, arm := range s.Unions {
		c.writeUnion(w, arm)
	}
}

func (c *Compiler) writeCTEs(w *Writer, ctes []types.CommonTableExpr) {
	if len(ctes) == 0 {
		return
	}
	w.Push("WITH ")
	if c.caps.RecursiveKeyword {
		for _, cte := range ctes {
			if cte.Recursive {
				w.Push("RECURSIVE ")
				break
			}
		}
	}
	PushList(w, ctes, ", ", func(w *Writer, cte types.CommonTableExpr) {
		c.Ident(w, cte.Name)
		if len(cte.Columns) > 0 {
			w.Push(" (")
			c.Idents(w, cte.Columns)
			w.Push(")")
		}
		w.Push(" AS (")
		c.SubQuery(w, cte.Query)
		w.Push(")")
	})
	w.Push(" ")
}

func (c *Compiler) writeDistinct(w *Writer, s *types.SelectStatement) {
	switch s.Distinct {
	case types.DistinctNone:
	case types.DistinctAll:
		w.Push(" ALL")
	case types.Distinct:
		w.Push(" DISTINCT")
	case types.DistinctRow:
		if !c.caps.DistinctRow {
			w.Fail(c.Unsupported(FeatureDistinctRow))
			return
		}
		w.Push(" DISTINCTROW")
	case types.DistinctOn:
		if !c.caps.DistinctOn {
			w.Fail(c.Unsupported(FeatureDistinctOn))
			return
		}
		if len(s.DistinctOn) == 0 {
			w.Fail(fmt.Errorf("%w: DISTINCT ON needs at least one expression", ErrEmptyList))
			return
		}
		w.Push(" DISTINCT ON (")
		PushList(w, s.DistinctOn, ", ", c.WriteExpr)
		w.Push(")")
	default:
		w.Fail(fmt.Errorf("%w: unknown distinct mode %d", ErrInvalidExpr, s.Distinct))
	}
}

func (c *Compiler) writeSelectExpr(w *Writer, se types.SelectExpr) {
	c.WriteExpr(w, se.Expr)
	if se.Alias != "" {
		w.Push(" AS ")
		c.Ident(w, se.Alias)
	}
}

func (c *Compiler) writeIndexHints(w *Writer, s *types.SelectStatement) {
	if len(s.IndexHints) == 0 {
		return
	}
	if !c.caps.IndexHints {
		w.Fail(c.Unsupported(FeatureIndexHints))
		return
	}
	if len(s.From) == 0 {
		w.Fail(fmt.Errorf("%w: index hint without FROM", ErrNoTable))
		return
	}
	for _, h := range s.IndexHints {
		switch h.Type {
		case types.UseIndex, types.ForceIndex, types.IgnoreIndex:
		default:
			w.Fail(fmt.Errorf("%w: unknown index hint %q", ErrInvalidExpr, h.Type))
			return
		}
		w.Push(" " + string(h.Type) + " INDEX")
		switch h.Scope {
		case types.HintScopeAll:
		case types.HintScopeJoin, types.HintScopeOrderBy, types.HintScopeGroupBy:
			w.Push(" FOR " + string(h.Scope))
		default:
			w.Fail(fmt.Errorf("%w: unknown index hint scope %q", ErrInvalidExpr, h.Scope))
			return
		}
		w.Push(" (")
		c.Ident(w, h.Index)
		w.Push(")")
	}
}

func (c *Compiler) writeJoin(w *Writer, j types.JoinExpr) {
	switch j.Type {
	case types.Join, types.InnerJoin, types.LeftJoin, types.RightJoin, types.CrossJoin:
	case types.FullOuterJoin:
		if !c.caps.FullOuterJoin {
			w.Fail(c.Unsupported(FeatureFullOuterJoin))
			return
		}
	default:
		w.Fail(fmt.Errorf("%w: unknown join type %d", ErrInvalidExpr, j.Type))
		return
	}
	w.Push(" " + j.Type.String() + " ")
	c.WriteTable(w, j.Table)
	switch {
	case j.Type == types.CrossJoin:
		if !j.On.IsEmpty() || len(j.Using) > 0 {
			w.Fail(fmt.Errorf("%w: CROSS JOIN takes no join condition", ErrInvalidExpr))
		}
	case len(j.Using) > 0:
		if !c.caps.JoinUsing {
			w.Fail(c.Unsupported(FeatureJoinUsing))
			return
		}
		if !j.On.IsEmpty() {
			w.Fail(fmt.Errorf("%w: join has both ON and USING", ErrInvalidExpr))
			return
		}
		w.Push(" USING (")
		c.Idents(w, j.Using)
		w.Push(")")
	case !j.On.IsEmpty():
		w.Push(" ON ")
		c.WriteCondition(w, j.On, true)
	}
}

// writeFilter writes `kw cond` unless cond is empty.
func (c *Compiler) writeFilter(w *Writer, kw string, cond types.Condition) {
	if cond.IsEmpty() {
		return
	}
	w.Push(" " + kw + " ")
	c.WriteCondition(w, cond, true)
}

// WriteOrder writes one ORDER BY item.
func (c *Compiler) WriteOrder(w *Writer, o types.OrderExpr) {
	c.WriteExpr(w, o.Expr)
	switch o.Order {
	case types.Asc:
		w.Push(" ASC")
	case types.Desc:
		w.Push(" DESC")
	default:
		w.Fail(fmt.Errorf("%w: unknown sort order %d", ErrInvalidExpr, o.Order))
		return
	}
	switch o.Nulls {
	case types.NullsDefault:
		return
	case types.NullsFirst, types.NullsLast:
		if !c.caps.NullsOrdering {
			w.Fail(c.Unsupported(FeatureNullsOrdering))
			return
		}
	default:
		w.Fail(fmt.Errorf("%w: unknown null ordering %d", ErrInvalidExpr, o.Nulls))
		return
	}
	if o.Nulls == types.NullsFirst {
		w.Push(" NULLS FIRST")
	} else {
		w.Push(" NULLS LAST")
	}
}

func (c *Compiler) writePagination(w *Writer, s *types.SelectStatement) {
	if s.Limit == nil && s.Offset == nil {
		return
	}
	if s.Limit == nil && !c.caps.OffsetWithoutLimit {
		w.Fail(c.Unsupported(FeatureOffsetWithoutLimit))
		return
	}
	if len(s.Orders) == 0 && !c.caps.PaginationWithoutOrder {
		w.Fail(c.Unsupported(FeaturePaginationWithoutOrder))
		return
	}
	if pw, ok := c.d.(PaginationWriter); ok {
		pw.WritePagination(c, w, s)
		return
	}
	if s.Limit != nil {
		w.Push(" LIMIT ")
		c.WriteValue(w, *s.Limit)
	}
	if s.Offset != nil {
		w.Push(" OFFSET ")
		c.WriteValue(w, *s.Offset)
	}
}

func (c *Compiler) writeLock(w *Writer, l *types.LockClause) {
	if l == nil || l.Type == types.LockNone {
		return
	}
	kw := l.Type.String()
	if kw == "" {
		w.Fail(fmt.Errorf("%w: unknown lock type %d", ErrInvalidExpr, l.Type))
		return
	}
	switch c.caps.RowLocking {
	case RowLockingNone:
		w.Fail(c.Unsupported(FeatureRowLocking))
		return
	case RowLockingBasic:
		if l.Type != types.ForUpdate && l.Type != types.ForShare {
			w.Fail(c.Unsupported(kw))
			return
		}
	}
	w.Push(" " + kw)
	if len(l.Of) > 0 {
		w.Push(" OF ")
		c.Idents(w, l.Of)
	}
	switch l.Behavior {
	case types.LockWait:
	case types.LockNowait:
		w.Push(" NOWAIT")
	case types.LockSkipLocked:
		w.Push(" SKIP LOCKED")
	default:
		w.Fail(fmt.Errorf("%w: unknown lock behavior %d", ErrInvalidExpr, l.Behavior))
	}
}

func (c *Compiler) writeUnion(w *Writer, arm types.UnionArm) {
	if arm.Query == nil {
		w.Fail(fmt.Errorf("%w: nil %s arm", ErrEmptyStatement, arm.Type))
		return
	}
	switch arm.Type {
	case types.Union, types.UnionAll:
	case types.Intersect:
		if !c.caps.Intersect {
			w.Fail(c.Unsupported(FeatureIntersect))
			return
		}
	case types.Except:
		if !c.caps.Intersect {
			w.Fail(c.Unsupported(FeatureExcept))
			return
		}
	default:
		w.Fail(fmt.Errorf("%w: unknown set operation %d", ErrInvalidExpr, arm.Type))
		return
	}
	w.Push(" " + arm.Type.String() + " ")
	if arm.Query.HasUnions() {
		w.Push("(")
		c.SubQuery(w, arm.Query)
		w.Push(")")
		return
	}
	c.SubQuery(w, arm.Query)
}

func (c *Compiler) writeInsert(w *Writer, s *types.InsertStatement) {
	if s.Table == nil {
		w.Fail(fmt.Errorf("%w: INSERT", ErrNoTable))
		return
	}
	w.Push("INSERT INTO ")
	c.WriteTable(w, s.Table)
	if len(s.Columns) > 0 {
		w.Push(" (")
		c.Idents(w, s.Columns)
		w.Push(")")
	}
	switch {
	case s.Select != nil && len(s.Rows) > 0:
		w.Fail(fmt.Errorf("%w: INSERT has both VALUES rows and a source SELECT", ErrInvalidExpr))
		return
	case s.Select != nil:
		w.Push(" ")
		c.SubQuery(w, s.Select)
	case len(s.Rows) > 0:
		c.writeRows(w, s)
	default:
		w.Fail(fmt.Errorf("%w: INSERT has no rows", ErrEmptyStatement))
		return
	}
	if s.OnConflict != nil {
		if !c.caps.Upsert {
			w.Fail(c.Unsupported(FeatureUpsert))
			return
		}
		if uw, ok := c.d.(UpsertWriter); ok {
			uw.WriteUpsert(c, w, s)
		} else {
			c.writeOnConflict(w, s.OnConflict)
		}
	}
	c.writeReturning(w, s.Returning)
}

func (c *Compiler) writeRows(w *Writer, s *types.InsertStatement) {
	width := len(s.Columns)
	if width == 0 {
		width = len(s.Rows[0])
	}
	if width == 0 {
		w.Fail(fmt.Errorf("%w: INSERT row has no values", ErrEmptyList))
		return
	}
	for i, row := range s.Rows {
		if len(row) != width {
			w.Fail(fmt.Errorf("%w: row %d has %d values, want %d", ErrRowLength, i, len(row), width))
			return
		}
	}
	w.Push(" VALUES ")
	PushList(w, s.Rows, ", ", func(w *Writer, row []types.SimpleExpr) {
		w.Push("(")
		PushList(w, row, ", ", c.WriteExpr)
		w.Push(")")
	})
}

func (c *Compiler) writeOnConflict(w *Writer, oc *types.OnConflict) {
	w.Push(" ON CONFLICT")
	if len(oc.Targets) > 0 {
		w.Push(" (")
		c.Idents(w, oc.Targets)
		w.Push(")")
	}
	if oc.DoNothing {
		w.Push(" DO NOTHING")
		return
	}
	if len(oc.Targets) == 0 {
		w.Fail(fmt.Errorf("%w: ON CONFLICT DO UPDATE requires conflict target columns", ErrInvalidExpr))
		return
	}
	if len(oc.Update) == 0 && len(oc.Set) == 0 {
		w.Fail(fmt.Errorf("%w: ON CONFLICT DO UPDATE has no assignments", ErrEmptyStatement))
		return
	}
	w.Push(" DO UPDATE SET ")
	PushList(w, oc.Update, ", ", func(w *Writer, col string) {
		c.Ident(w, col)
		w.Push(" = EXCLUDED.")
		c.Ident(w, col)
	})
	if len(oc.Update) > 0 && len(oc.Set) > 0 {
		w.Push(", ")
	}
	PushList(w, oc.Set, ", ", c.WriteAssignment)
}

// WriteAssignment writes `column = expr`.
func (c *Compiler) WriteAssignment(w *Writer, uv types.UpdateValue) {
	c.Ident(w, uv.Column)
	w.Push(" = ")
	c.WriteExpr(w, uv.Value)
}

func (c *Compiler) writeReturning(w *Writer, cols []types.ColumnRef) {
	if len(cols) == 0 {
		return
	}
	if !c.caps.Returning {
		w.Fail(c.Unsupported(FeatureReturning))
		return
	}
	w.Push(" RETURNING ")
	PushList(w, cols, ", ", c.WriteColumn)
}

func (c *Compiler) writeUpdate(w *Writer, s *types.UpdateStatement) {
	if s.Table == nil {
		w.Fail(fmt.Errorf("%w: UPDATE", ErrNoTable))
		return
	}
	if len(s.Values) == 0 {
		w.Fail(fmt.Errorf("%w: UPDATE has no SET values", ErrEmptyStatement))
		return
	}
	w.Push("UPDATE ")
	c.WriteTable(w, s.Table)
	w.Push(" SET ")
	PushList(w, s.Values, ", ", c.WriteAssignment)
	c.writeFilter(w, "WHERE", s.Where)
	c.writeReturning(w, s.Returning)
}

func (c *Compiler) writeDelete(w *Writer, s *types.DeleteStatement) {
	if s.Table == nil {
		w.Fail(fmt.Errorf("%w: DELETE", ErrNoTable))
		return
	}
	w.Push("DELETE FROM ")
	c.WriteTable(w, s.Table)
	c.writeFilter(w, "WHERE", s.Where)
	c.writeReturning(w, s.Returning)
}

// WriteTable writes a table reference.
func (c *Compiler) WriteTable(w *Writer, ref types.TableRef) {
	switch t := ref.(type) {
	case nil:
		w.Fail(ErrNoTable)
	case types.Table:
		c.Ident(w, t.Name)
	case types.SchemaTable:
		c.Ident(w, t.Schema)
		w.Push(".")
		c.Ident(w, t.Table)
	case types.DatabaseSchemaTable:
		c.Ident(w, t.Database)
		w.Push(".")
		c.Ident(w, t.Schema)
		w.Push(".")
		c.Ident(w, t.Table)
	case types.TableAlias:
		c.Ident(w, t.Table)
		w.Push(" AS ")
		c.Ident(w, t.Alias)
	case types.SchemaTableAlias:
		c.Ident(w, t.Schema)
		w.Push(".")
		c.Ident(w, t.Table)
		w.Push(" AS ")
		c.Ident(w, t.Alias)
	case types.SubQueryTable:
		w.Push("(")
		c.SubQuery(w, t.Query)
		w.Push(")")
		if t.Alias != "" {
			w.Push(" AS ")
			c.Ident(w, t.Alias)
		}
	default:
		w.Fail(fmt.Errorf("%w: unknown table reference %T", ErrInvalidExpr, ref))
	}
}

// WriteColumn writes a column reference.
func (c *Compiler) WriteColumn(w *Writer, ref types.ColumnRef) {
	switch col := ref.(type) {
	case types.Column:
		c.Ident(w, col.Name)
	case types.TableColumn:
		c.Ident(w, col.Table)
		w.Push(".")
		c.Ident(w, col.Column)
	case types.SchemaTableColumn:
		c.Ident(w, col.Schema)
		w.Push(".")
		c.Ident(w, col.Table)
		w.Push(".")
		c.Ident(w, col.Column)
	case types.Asterisk:
		w.Push("*")
	case types.TableAsterisk:
		c.Ident(w, col.Table)
		w.Push(".*")
	default:
		w.Fail(fmt.Errorf("%w: unknown column reference %T", ErrInvalidExpr, ref))
	}
}

// WriteCondition writes a condition tree. At the top level the children of
// a non-negated condition are joined without surrounding parentheses.
func (c *Compiler) WriteCondition(w *Writer, cond types.Condition, top bool) {
	items := cond.Effective()
	if len(items) == 0 {
		return
	}
	if len(items) == 1 {
		if inner, ok := asCondition(items[0]); ok && !inner.Negate {
			inner.Negate = cond.Negate
			c.WriteCondition(w, inner, top)
			return
		}
	}
	wrap := cond.Negate || (len(items) > 1 && !top)
	if cond.Negate {
		w.Push("NOT ")
	}
	if wrap {
		w.Push("(")
	}
	nested := len(items) > 1 || !top
	PushList(w, items, cond.Type.Separator(), func(w *Writer, item types.ConditionExpression) {
		if inner, ok := asCondition(item); ok {
			c.WriteCondition(w, inner, false)
			return
		}
		e, ok := item.(types.SimpleExpr)
		if !ok {
			w.Fail(fmt.Errorf("%w: unknown condition node %T", ErrInvalidExpr, item))
			return
		}
		if nested && isLogical(e) {
			w.Push("(")
			c.WriteExpr(w, e)
			w.Push(")")
			return
		}
		c.WriteExpr(w, e)
	})
	if wrap {
		w.Push(")")
	}
}

func (c *Compiler) writeConditionExpr(w *Writer, ce types.ConditionExpression) {
	if inner, ok := asCondition(ce); ok {
		c.WriteCondition(w, inner, true)
		return
	}
	e, ok := ce.(types.SimpleExpr)
	if !ok {
		w.Fail(fmt.Errorf("%w: unknown condition node %T", ErrInvalidExpr, ce))
		return
	}
	c.WriteExpr(w, e)
}

func asCondition(ce types.ConditionExpression) (types.Condition, bool) {
	switch x := ce.(type) {
	case types.Condition:
		return x, true
	case *types.Condition:
		if x == nil {
			return types.Condition{}, true
		}
		return *x, true
	}
	return types.Condition{}, false
}

func isLogical(e types.SimpleExpr) bool {
	b, ok := e.(types.BinaryExpr)
	return ok && (b.Op == types.OpAnd || b.Op == types.OpOr)
}

// WriteExpr writes a scalar expression.
func (c *Compiler) WriteExpr(w *Writer, e types.SimpleExpr) {
	if w.Err() != nil {
		return
	}
	switch x := e.(type) {
	case nil:
		w.Fail(fmt.Errorf("%w: nil expression", ErrInvalidExpr))
	case types.ColumnExpr:
		c.WriteColumn(w, x.Ref)
	case types.ValueExpr:
		c.WriteValue(w, x.Value)
	case types.BinaryExpr:
		c.writeBinary(w, x)
	case types.UnaryExpr:
		c.writeUnary(w, x)
	case types.FuncExpr:
		c.writeFunc(w, x)
	case types.ConstantExpr:
		w.Push(x.SQL)
	case types.SubQueryExpr:
		c.writeSubQueryExpr(w, x)
	case types.TupleExpr:
		c.writeTuple(w, x.Items)
	case types.CaseExpr:
		c.writeCase(w, x)
	case types.CastExpr:
		c.writeCast(w, x)
	case types.CustomExpr:
		c.writeCustom(w, x)
	case types.WindowExpr:
		c.writeWindow(w, x)
	default:
		w.Fail(fmt.Errorf("%w: unknown expression %T", ErrInvalidExpr, e))
	}
}

// writeOperand parenthesizes nested binary expressions.
func (c *Compiler) writeOperand(w *Writer, e types.SimpleExpr) {
	if _, ok := e.(types.BinaryExpr); ok {
		w.Push("(")
		c.WriteExpr(w, e)
		w.Push(")")
		return
	}
	c.WriteExpr(w, e)
}

func (c *Compiler) writeBinary(w *Writer, e types.BinaryExpr) {
	if !binOpers[e.Op] {
		w.Fail(fmt.Errorf("%w: unknown operator %q", ErrInvalidExpr, e.Op))
		return
	}
	if e.Left == nil || e.Right == nil {
		w.Fail(fmt.Errorf("%w: %s needs two operands", ErrInvalidExpr, e.Op))
		return
	}
	switch e.Op {
	case types.OpILike, types.OpNotILike:
		if !c.caps.CaseInsensitiveLike {
			w.Fail(c.Unsupported(FeatureILike))
			return
		}
	case types.OpIn, types.OpNotIn:
		c.writeOperand(w, e.Left)
		w.Push(" " + string(e.Op) + " ")
		c.writeInList(w, e.Right)
		return
	case types.OpBetween, types.OpNotBetween:
		bounds, ok := e.Right.(types.TupleExpr)
		if !ok || len(bounds.Items) != 2 {
			w.Fail(fmt.Errorf("%w: %s needs a lower and an upper bound", ErrInvalidExpr, e.Op))
			return
		}
		c.writeOperand(w, e.Left)
		w.Push(" " + string(e.Op) + " ")
		c.writeOperand(w, bounds.Items[0])
		w.Push(" AND ")
		c.writeOperand(w, bounds.Items[1])
		return
	}
	c.writeOperand(w, e.Left)
	w.Push(" " + string(e.Op) + " ")
	c.writeOperand(w, e.Right)
}

// writeInList writes the right side of IN. Array values expand to one
// placeholder per element.
func (c *Compiler) writeInList(w *Writer, e types.SimpleExpr) {
	switch x := e.(type) {
	case types.TupleExpr:
		c.writeTuple(w, x.Items)
	case types.SubQueryExpr:
		if x.Op != types.SubQueryNone {
			w.Fail(fmt.Errorf("%w: IN takes a plain subquery", ErrInvalidExpr))
			return
		}
		w.Push("(")
		c.SubQuery(w, x.Query)
		w.Push(")")
	case types.ValueExpr:
		if x.Value.Kind() != types.KindArray {
			w.Push("(")
			c.WriteValue(w, x.Value)
			w.Push(")")
			return
		}
		items := x.Value.Items()
		if len(items) == 0 {
			w.Fail(fmt.Errorf("%w: IN list", ErrEmptyList))
			return
		}
		w.Push("(")
		PushList(w, items, ", ", c.WriteValue)
		w.Push(")")
	default:
		w.Push("(")
		c.WriteExpr(w, e)
		w.Push(")")
	}
}

func (c *Compiler) writeTuple(w *Writer, items []types.SimpleExpr) {
	if len(items) == 0 {
		w.Fail(fmt.Errorf("%w: tuple", ErrEmptyList))
		return
	}
	w.Push("(")
	PushList(w, items, ", ", c.WriteExpr)
	w.Push(")")
}

func (c *Compiler) writeUnary(w *Writer, e types.UnaryExpr) {
	if e.Expr == nil {
		w.Fail(fmt.Errorf("%w: %s needs an operand", ErrInvalidExpr, e.Op))
		return
	}
	switch e.Op {
	case types.OpNot:
		w.Push("NOT ")
	case types.OpNegate:
		w.Push("-")
	default:
		w.Fail(fmt.Errorf("%w: unknown unary operator %q", ErrInvalidExpr, e.Op))
		return
	}
	c.writeOperand(w, e.Expr)
}

func (c *Compiler) writeFunc(w *Writer, e types.FuncExpr) {
	if !funcNamePattern.MatchString(e.Name) {
		w.Fail(fmt.Errorf("%w: invalid function name %q", ErrInvalidExpr, e.Name))
		return
	}
	w.Push(e.Name + "(")
	if e.Distinct {
		w.Push("DISTINCT ")
	}
	PushList(w, e.Args, ", ", c.WriteExpr)
	w.Push(")")
}

func (c *Compiler) writeSubQueryExpr(w *Writer, e types.SubQueryExpr) {
	switch e.Op {
	case types.SubQueryNone:
	case types.SubQueryExists, types.SubQueryNotExists:
		w.Push(string(e.Op) + " ")
	case types.SubQueryAny, types.SubQueryAll, types.SubQuerySome:
		if !c.caps.QuantifiedSubquery {
			w.Fail(c.Unsupported(FeatureQuantifiedSubquery))
			return
		}
		w.Push(string(e.Op) + " ")
	default:
		w.Fail(fmt.Errorf("%w: unknown subquery operator %q", ErrInvalidExpr, e.Op))
		return
	}
	w.Push("(")
	c.SubQuery(w, e.Query)
	w.Push(")")
}

func (c *Compiler) writeCase(w *Writer, e types.CaseExpr) {
	if len(e.Whens) == 0 {
		w.Fail(fmt.Errorf("%w: CASE without WHEN", ErrEmptyList))
		return
	}
	w.Push("CASE")
	for _, when := range e.Whens {
		if when.Cond == nil || when.Result == nil {
			w.Fail(fmt.Errorf("%w: incomplete WHEN clause", ErrInvalidExpr))
			return
		}
		w.Push(" WHEN ")
		c.writeConditionExpr(w, when.Cond)
		w.Push(" THEN ")
		c.WriteExpr(w, when.Result)
	}
	if e.Else != nil {
		w.Push(" ELSE ")
		c.WriteExpr(w, e.Else)
	}
	w.Push(" END")
}

func (c *Compiler) writeCast(w *Writer, e types.CastExpr) {
	if !castTypePattern.MatchString(e.Type) {
		w.Fail(fmt.Errorf("%w: invalid cast type %q", ErrInvalidExpr, e.Type))
		return
	}
	w.Push("CAST(")
	c.WriteExpr(w, e.Expr)
	w.Push(" AS " + e.Type + ")")
}

func (c *Compiler) writeCustom(w *Writer, e types.CustomExpr) {
	parts := strings.Split(e.Template, "?")
	if len(parts)-1 != len(e.Args) {
		w.Fail(fmt.Errorf("%w: template has %d slots, got %d arguments", ErrInvalidExpr, len(parts)-1, len(e.Args)))
		return
	}
	for i, part := range parts {
		w.Push(part)
		if i < len(e.Args) {
			c.WriteExpr(w, e.Args[i])
		}
	}
}

func (c *Compiler) writeWindow(w *Writer, e types.WindowExpr) {
	c.WriteExpr(w, e.Func)
	w.Push(" OVER (")
	spec := e.Window
	if len(spec.PartitionBy) > 0 {
		w.Push("PARTITION BY ")
		PushList(w, spec.PartitionBy, ", ", c.WriteExpr)
	}
	if len(spec.OrderBy) > 0 {
		w.PushKeyword("ORDER BY ")
		PushList(w, spec.OrderBy, ", ", c.WriteOrder)
	}
	if f := spec.Frame; f != nil {
		switch f.Type {
		case types.FrameRows, types.FrameRange:
		case types.FrameGroups:
			if !c.caps.GroupsFrame {
				w.Fail(c.Unsupported(FeatureGroupsFrame))
				return
			}
		default:
			w.Fail(fmt.Errorf("%w: unknown frame type %q", ErrInvalidExpr, f.Type))
			return
		}
		w.PushKeyword(string(f.Type))
		if f.End != nil {
			w.Push(" BETWEEN ")
			c.writeFrameBound(w, f.Start)
			w.Push(" AND ")
			c.writeFrameBound(w, *f.End)
		} else {
			w.Push(" ")
			c.writeFrameBound(w, f.Start)
		}
	}
	w.Push(")")
}

func (c *Compiler) writeFrameBound(w *Writer, b types.FrameBound) {
	switch b.Kind {
	case types.UnboundedPreceding:
		w.Push("UNBOUNDED PRECEDING")
	case types.Preceding:
		w.Push(strconv.FormatUint(b.Offset, 10) + " PRECEDING")
	case types.CurrentRow:
		w.Push("CURRENT ROW")
	case types.Following:
		w.Push(strconv.FormatUint(b.Offset, 10) + " FOLLOWING")
	case types.UnboundedFollowing:
		w.Push("UNBOUNDED FOLLOWING")
	default:
		w.Fail(fmt.Errorf("%w: unknown frame bound %d", ErrInvalidExpr, b.Kind))
	}
}
