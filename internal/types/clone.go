package types

import "slices"

// CloneExpr returns a deep copy of e. Values and identifiers are immutable
// and shared.
func CloneExpr(e Expr) Expr {
	switch n := e.(type) {
	case ValuesExpr:
		return ValuesExpr{Values: slices.Clone(n.Values)}
	case BinaryExpr:
		return BinaryExpr{Op: n.Op, Left: CloneExpr(n.Left), Right: CloneExpr(n.Right)}
	case UnaryExpr:
		return UnaryExpr{Op: n.Op, Operand: CloneExpr(n.Operand)}
	case BetweenExpr:
		return BetweenExpr{Expr: CloneExpr(n.Expr), Low: CloneExpr(n.Low), High: CloneExpr(n.High), Negated: n.Negated}
	case FuncExpr:
		return FuncExpr{Func: n.Func, Args: cloneExprs(n.Args), Distinct: n.Distinct}
	case SubQueryExpr:
		return SubQueryExpr{Query: n.Query.Clone()}
	case TupleExpr:
		return TupleExpr{Items: cloneExprs(n.Items)}
	case CaseExpr:
		whens := make([]WhenClause, len(n.Whens))
		for i, w := range n.Whens {
			whens[i] = WhenClause{Cond: CloneExpr(w.Cond), Result: CloneExpr(w.Result)}
		}
		return CaseExpr{Whens: whens, Else: CloneExpr(n.Else)}
	case CastExpr:
		return CastExpr{Expr: CloneExpr(n.Expr), Type: n.Type}
	case CustomExpr:
		return CustomExpr{SQL: n.SQL, Values: slices.Clone(n.Values)}
	case ConditionGroup:
		return n.Clone()
	}
	return e
}

func cloneExprs(es []Expr) []Expr {
	if es == nil {
		return nil
	}
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = CloneExpr(e)
	}
	return out
}

// Clone returns a deep copy of g.
func (g ConditionGroup) Clone() ConditionGroup {
	return ConditionGroup{Logic: g.Logic, Negated: g.Negated, Conditions: cloneExprs(g.Conditions)}
}

func cloneSelectExprs(cols []SelectExpr) []SelectExpr {
	if cols == nil {
		return nil
	}
	out := make([]SelectExpr, len(cols))
	for i, c := range cols {
		out[i] = SelectExpr{Expr: CloneExpr(c.Expr), Alias: c.Alias}
	}
	return out
}

func cloneOrder(order []OrderExpr) []OrderExpr {
	if order == nil {
		return nil
	}
	out := make([]OrderExpr, len(order))
	for i, o := range order {
		out[i] = OrderExpr{Expr: CloneExpr(o.Expr), Order: o.Order, Nulls: o.Nulls}
	}
	return out
}

func cloneAssignments(as []Assignment) []Assignment {
	if as == nil {
		return nil
	}
	out := make([]Assignment, len(as))
	for i, a := range as {
		out[i] = Assignment{Column: a.Column, Value: CloneExpr(a.Value)}
	}
	return out
}

func cloneUint(p *uint64) *uint64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy of t.
func (t TableRef) Clone() TableRef {
	t.SubQuery = t.SubQuery.Clone()
	return t
}

// Clone returns a deep copy of s. A nil receiver yields nil.
func (s *SelectStatement) Clone() *SelectStatement {
	if s == nil {
		return nil
	}
	c := &SelectStatement{
		Distinct: s.Distinct,
		Columns:  cloneSelectExprs(s.Columns),
		GroupBy:  cloneExprs(s.GroupBy),
		OrderBy:  cloneOrder(s.OrderBy),
		Where:    s.Where.Clone(),
		Having:   s.Having.Clone(),
		Limit:    cloneUint(s.Limit),
		Offset:   cloneUint(s.Offset),
	}
	if s.From != nil {
		from := s.From.Clone()
		c.From = &from
	}
	for _, j := range s.Joins {
		c.Joins = append(c.Joins, Join{Kind: j.Kind, Table: j.Table.Clone(), On: j.On.Clone()})
	}
	if s.Lock != nil {
		c.Lock = &Lock{Type: s.Lock.Type, Behavior: s.Lock.Behavior, Of: slices.Clone(s.Lock.Of)}
	}
	for _, u := range s.Unions {
		c.Unions = append(c.Unions, Union{All: u.All, Query: u.Query.Clone()})
	}
	return c
}

// Clone returns a deep copy of s.
func (s *InsertStatement) Clone() *InsertStatement {
	c := &InsertStatement{
		Table:     s.Table.Clone(),
		Columns:   slices.Clone(s.Columns),
		Select:    s.Select.Clone(),
		Returning: cloneSelectExprs(s.Returning),
	}
	for _, row := range s.Rows {
		c.Rows = append(c.Rows, cloneExprs(row))
	}
	if s.OnConflict != nil {
		c.OnConflict = &OnConflict{
			Targets: slices.Clone(s.OnConflict.Targets),
			Action:  s.OnConflict.Action,
			Updates: cloneAssignments(s.OnConflict.Updates),
		}
	}
	return c
}

// Clone returns a deep copy of s.
func (s *UpdateStatement) Clone() *UpdateStatement {
	return &UpdateStatement{
		Table:     s.Table.Clone(),
		Values:    cloneAssignments(s.Values),
		Where:     s.Where.Clone(),
		OrderBy:   cloneOrder(s.OrderBy),
		Limit:     cloneUint(s.Limit),
		Returning: cloneSelectExprs(s.Returning),
	}
}

// Clone returns a deep copy of s.
func (s *DeleteStatement) Clone() *DeleteStatement {
	return &DeleteStatement{
		Table:     s.Table.Clone(),
		Where:     s.Where.Clone(),
		OrderBy:   cloneOrder(s.OrderBy),
		Limit:     cloneUint(s.Limit),
		Returning: cloneSelectExprs(s.Returning),
	}
}
