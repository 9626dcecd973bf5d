package sqltree

import "github.com/zoobzio/sqltree/internal/types"

// And conjoins e with others, extending e if it is already a conjunction.
func (e Expr) And(others ...Expr) Expr { return e.join(types.LogicAnd, others) }

// Or disjoins e with others, extending e if it is already a disjunction.
func (e Expr) Or(others ...Expr) Expr { return e.join(types.LogicOr, others) }

func (e Expr) join(logic types.LogicOperator, others []Expr) Expr {
	g, ok := e.node.(types.ConditionGroup)
	if !ok || g.Logic != logic || g.Negated {
		g = types.ConditionGroup{Logic: logic, Conditions: []types.Expr{toExpr(e)}}
	}
	for _, o := range others {
		g = g.Add(toExpr(o))
	}
	return Expr{node: g}
}

// Not negates e.
func (e Expr) Not() Expr { return Not(e) }

// All is the conjunction of conds. An empty conjunction renders as nothing
// when used as a WHERE or HAVING clause.
func All(conds ...Expr) Expr { return group(types.LogicAnd, conds) }

// Any is the disjunction of conds.
func Any(conds ...Expr) Expr { return group(types.LogicOr, conds) }

func group(logic types.LogicOperator, conds []Expr) Expr {
	g := types.ConditionGroup{Logic: logic, Conditions: make([]types.Expr, 0, len(conds))}
	for _, c := range conds {
		g.Conditions = append(g.Conditions, toExpr(c))
	}
	return Expr{node: g}
}

// Not negates e. Negating a condition group flips the group.
func Not(e Expr) Expr {
	if g, ok := e.node.(types.ConditionGroup); ok {
		g.Negated = !g.Negated
		return Expr{node: g}
	}
	return Expr{node: types.UnaryExpr{Op: types.OpNot, Operand: toExpr(e)}}
}

// toCondition turns an expression into a condition group, reusing it when
// it already is one.
func toCondition(e Expr) types.ConditionGroup {
	if g, ok := e.node.(types.ConditionGroup); ok {
		return g
	}
	return types.All(toExpr(e))
}

// conjoin ANDs cond onto g.
func conjoin(g types.ConditionGroup, cond Expr) types.ConditionGroup {
	if g.IsEmpty() {
		return toCondition(cond)
	}
	if g.Logic == types.LogicAnd && !g.Negated {
		return g.Add(toExpr(cond))
	}
	return types.All(g, toExpr(cond))
}

// disjoin ORs cond onto g. An empty g is replaced.
func disjoin(g types.ConditionGroup, cond Expr) types.ConditionGroup {
	if g.IsEmpty() {
		return toCondition(cond)
	}
	if g.Logic == types.LogicOr && !g.Negated {
		return g.Add(toExpr(cond))
	}
	return types.Any(g, toExpr(cond))
}
