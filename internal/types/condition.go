package types

// ConditionGroup combines conditions with AND or OR. Any expression can be a
// member; nested groups form the condition tree.
type ConditionGroup struct {
	Conditions []Expr
	Logic      LogicOperator
	Negated    bool
}

// All returns an AND group.
func All(conds ...Expr) ConditionGroup {
	return ConditionGroup{Logic: LogicAnd, Conditions: conds}
}

// Any returns an OR group.
func Any(conds ...Expr) ConditionGroup {
	return ConditionGroup{Logic: LogicOr, Conditions: conds}
}

// Add appends a member and returns the group.
func (g ConditionGroup) Add(e Expr) ConditionGroup {
	g.Conditions = append(g.Conditions[:len(g.Conditions):len(g.Conditions)], e)
	return g
}

// Effective returns the members that render to something: nested groups
// that are empty after the same reduction are dropped.
func (g ConditionGroup) Effective() []Expr {
	out := make([]Expr, 0, len(g.Conditions))
	for _, c := range g.Conditions {
		if c == nil {
			continue
		}
		if sub, ok := c.(ConditionGroup); ok && sub.IsEmpty() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// IsEmpty reports whether the group renders to nothing.
func (g ConditionGroup) IsEmpty() bool {
	return len(g.Effective()) == 0
}
