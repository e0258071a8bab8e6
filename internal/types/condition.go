package types

// ConditionExpression is a node of a condition tree: either a nested
// Condition or a leaf SimpleExpr.
type ConditionExpression interface {
	isConditionExpression()
}

// ConditionType selects how the children of a Condition are combined.
type ConditionType uint8

const (
	ConditionAll ConditionType = iota // AND
	ConditionAny                      // OR
)

// Separator returns the SQL text placed between children.
func (t ConditionType) Separator() string {
	if t == ConditionAny {
		return " OR "
	}
	return " AND "
}

// Condition is a conjunction or disjunction of child conditions, optionally
// negated. A Condition with no effective children renders nothing.
type Condition struct {
	Items  []ConditionExpression
	Type   ConditionType
	Negate bool
}

func (Condition) isConditionExpression() {}

// Add appends children and returns the condition for chaining.
func (c Condition) Add(items ...ConditionExpression) Condition {
	c.Items = append(append([]ConditionExpression(nil), c.Items...), items...)
	return c
}

// Not flips the negation flag.
func (c Condition) Not() Condition {
	c.Negate = !c.Negate
	return c
}

// IsEmpty reports whether the condition renders nothing: it has no children,
// or every child is itself an empty condition.
func (c Condition) IsEmpty() bool {
	return len(c.Effective()) == 0
}

// Effective returns the children that contribute SQL text.
func (c Condition) Effective() []ConditionExpression {
	out := make([]ConditionExpression, 0, len(c.Items))
	for _, item := range c.Items {
		switch x := item.(type) {
		case nil:
			continue
		case Condition:
			if x.IsEmpty() {
				continue
			}
		case *Condition:
			if x == nil || x.IsEmpty() {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
