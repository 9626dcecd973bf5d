package render

import (
	"strings"

	"github.com/zoobzio/sqltree/internal/types"
)

// Expr writes an expression.
func (w *Writer) Expr(e types.Expr) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()

	switch n := e.(type) {
	case nil:
		return Malformedf("missing expression")
	case types.ColumnExpr:
		return w.column(n)
	case types.ValueExpr:
		return w.Bind(n.Value)
	case types.ValuesExpr:
		return w.valueList(n.Values)
	case types.BinaryExpr:
		return w.binary(n)
	case types.UnaryExpr:
		return w.unary(n)
	case types.BetweenExpr:
		return w.between(n)
	case types.FuncExpr:
		return w.function(n)
	case types.SubQueryExpr:
		return w.subQuery(n.Query)
	case types.TupleExpr:
		return w.tuple(n.Items)
	case types.CaseExpr:
		return w.caseExpr(n)
	case types.CastExpr:
		return w.cast(n)
	case types.KeywordExpr:
		kw := n.Keyword.String()
		if kw == "" {
			return Malformedf("unknown keyword %d", n.Keyword)
		}
		w.sql.WriteString(kw)
		return nil
	case types.CustomExpr:
		return w.custom(n)
	case types.ExcludedExpr:
		if !w.upsert {
			return Malformedf("excluded column %v outside an upsert", n.Column)
		}
		q, err := w.quote(n.Column)
		if err != nil {
			return err
		}
		w.sql.WriteString(w.d.ExcludedColumn(q))
		return nil
	case types.ConditionGroup:
		if n.IsEmpty() {
			return Malformedf("empty condition in expression position")
		}
		return w.condition(n)
	case types.ErrorExpr:
		return n.Err
	}
	return Malformedf("unknown expression type %T", e)
}

func (w *Writer) column(c types.ColumnExpr) error {
	if c.Table != nil {
		if err := w.Ident(c.Table); err != nil {
			return err
		}
		w.sql.WriteByte('.')
	}
	if c.Name == nil {
		w.sql.WriteByte('*')
		return nil
	}
	return w.Ident(c.Name)
}

func (w *Writer) valueList(vs []types.Value) error {
	w.sql.WriteByte('(')
	for i, v := range vs {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		if err := w.Bind(v); err != nil {
			return err
		}
	}
	w.sql.WriteByte(')')
	return nil
}

func (w *Writer) tuple(items []types.Expr) error {
	if len(items) == 0 {
		return Malformedf("empty tuple")
	}
	w.sql.WriteByte('(')
	if err := w.exprList(items); err != nil {
		return err
	}
	w.sql.WriteByte(')')
	return nil
}

func (w *Writer) exprList(es []types.Expr) error {
	for i, e := range es {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		if err := w.Expr(e); err != nil {
			return err
		}
	}
	return nil
}

// operand writes child, parenthesized when it binds looser than parent or,
// on the right of a non-associative operator, equally loose.
func (w *Writer) operand(child types.Expr, parent types.BinOper, right bool) error {
	if w.needsParens(child, parent, right) {
		return w.paren(child)
	}
	return w.Expr(child)
}

func (w *Writer) needsParens(child types.Expr, parent types.BinOper, right bool) bool {
	cp, pp := types.Precedence(child), parent.Precedence()
	if cp != pp {
		return cp < pp
	}
	if pp == types.PrecComparison {
		// Engines disagree on how comparisons nest, so only a child the
		// dialect ranks strictly tighter goes bare.
		op, ok := comparison(child)
		return !ok || w.d.Precedence(op) <= w.d.Precedence(parent)
	}
	if !right {
		return false
	}
	switch n := child.(type) {
	case types.BinaryExpr:
		return n.Op != parent || !parent.Associative()
	case types.ConditionGroup:
		return n.Negated || n.Logic.Oper() != parent
	}
	return true
}

// comparison returns the operator of e when e is a comparison, looking
// through single-member groups.
func comparison(e types.Expr) (types.BinOper, bool) {
	switch n := e.(type) {
	case types.BinaryExpr:
		return n.Op, n.Op.Precedence() == types.PrecComparison
	case types.ConditionGroup:
		if members := n.Effective(); len(members) == 1 && !n.Negated {
			return comparison(members[0])
		}
	}
	return 0, false
}

func (w *Writer) paren(e types.Expr) error {
	w.sql.WriteByte('(')
	if err := w.Expr(e); err != nil {
		return err
	}
	w.sql.WriteByte(')')
	return nil
}

func (w *Writer) binary(b types.BinaryExpr) error {
	if b.Op.String() == "" {
		return Malformedf("unknown binary operator %d", b.Op)
	}
	switch b.Op {
	case types.OpIn, types.OpNotIn:
		return w.in(b)
	case types.OpIs, types.OpIsNot:
		return w.is(b)
	}
	if err := w.operand(b.Left, b.Op, false); err != nil {
		return err
	}
	w.sql.WriteByte(' ')
	w.sql.WriteString(b.Op.String())
	w.sql.WriteByte(' ')
	return w.operand(b.Right, b.Op, true)
}

// in writes [NOT] IN. An empty list can never match, so it collapses to a
// constant predicate.
func (w *Writer) in(b types.BinaryExpr) error {
	if list, ok := b.Right.(types.ValuesExpr); ok && len(list.Values) == 0 {
		if b.Op == types.OpIn {
			w.sql.WriteString("1 = 2")
		} else {
			w.sql.WriteString("1 = 1")
		}
		return nil
	}
	if err := w.operand(b.Left, b.Op, false); err != nil {
		return err
	}
	w.sql.WriteByte(' ')
	w.sql.WriteString(b.Op.String())
	w.sql.WriteByte(' ')
	switch b.Right.(type) {
	case types.ValuesExpr, types.TupleExpr, types.SubQueryExpr:
		return w.Expr(b.Right)
	}
	return w.paren(b.Right)
}

// is writes IS [NOT]. Its right side must be a literal, never a placeholder.
func (w *Writer) is(b types.BinaryExpr) error {
	if err := w.operand(b.Left, b.Op, false); err != nil {
		return err
	}
	w.sql.WriteByte(' ')
	w.sql.WriteString(b.Op.String())
	w.sql.WriteByte(' ')
	if v, ok := b.Right.(types.ValueExpr); ok {
		switch v.Value.Kind() {
		case types.KindNull:
			w.sql.WriteString("NULL")
			return nil
		case types.KindBool:
			return w.literal(v.Value)
		}
	}
	return w.operand(b.Right, b.Op, true)
}

func (w *Writer) unary(u types.UnaryExpr) error {
	switch u.Op {
	case types.OpNot:
		w.sql.WriteString("NOT ")
		if types.Precedence(u.Operand) < types.PrecUnary {
			return w.paren(u.Operand)
		}
		return w.Expr(u.Operand)
	case types.OpNeg:
		w.sql.WriteByte('-')
		switch u.Operand.(type) {
		case types.ColumnExpr, types.FuncExpr:
			return w.Expr(u.Operand)
		}
		return w.paren(u.Operand)
	case types.OpExists, types.OpNotExists:
		if _, ok := u.Operand.(types.SubQueryExpr); !ok {
			return Malformedf("%s requires a sub-query", u.Op)
		}
		w.sql.WriteString(u.Op.String())
		w.sql.WriteByte(' ')
		return w.Expr(u.Operand)
	}
	return Malformedf("unknown unary operator %d", u.Op)
}

func (w *Writer) between(b types.BetweenExpr) error {
	if err := w.bound(b.Expr); err != nil {
		return err
	}
	if b.Negated {
		w.sql.WriteString(" NOT")
	}
	w.sql.WriteString(" BETWEEN ")
	if err := w.bound(b.Low); err != nil {
		return err
	}
	w.sql.WriteString(" AND ")
	return w.bound(b.High)
}

// bound writes an operand of BETWEEN; anything looser than arithmetic is
// parenthesized so the inner AND stays unambiguous.
func (w *Writer) bound(e types.Expr) error {
	if types.Precedence(e) <= types.PrecComparison {
		return w.paren(e)
	}
	return w.Expr(e)
}

func (w *Writer) function(f types.FuncExpr) error {
	if f.Func == "" {
		return Malformedf("function without a name")
	}
	w.sql.WriteString(w.d.FunctionName(f.Func))
	w.sql.WriteByte('(')
	if f.Distinct {
		w.sql.WriteString("DISTINCT ")
	}
	if len(f.Args) == 0 && f.Func == types.FuncCount {
		w.sql.WriteByte('*')
	} else if err := w.exprList(f.Args); err != nil {
		return err
	}
	w.sql.WriteByte(')')
	return nil
}

func (w *Writer) subQuery(s *types.SelectStatement) error {
	if s == nil {
		return Malformedf("missing sub-query")
	}
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	w.sql.WriteByte('(')
	if err := w.selectStatement(s); err != nil {
		return err
	}
	w.sql.WriteByte(')')
	return nil
}

func (w *Writer) caseExpr(c types.CaseExpr) error {
	if len(c.Whens) == 0 {
		return Malformedf("CASE without WHEN")
	}
	w.sql.WriteString("CASE")
	for _, when := range c.Whens {
		w.sql.WriteString(" WHEN ")
		if err := w.Expr(when.Cond); err != nil {
			return err
		}
		w.sql.WriteString(" THEN ")
		if err := w.Expr(when.Result); err != nil {
			return err
		}
	}
	if c.Else != nil {
		w.sql.WriteString(" ELSE ")
		if err := w.Expr(c.Else); err != nil {
			return err
		}
	}
	w.sql.WriteString(" END")
	return nil
}

func (w *Writer) cast(c types.CastExpr) error {
	typ, err := w.d.CastType(c.Type)
	if err != nil {
		return err
	}
	w.sql.WriteString("CAST(")
	if err := w.Expr(c.Expr); err != nil {
		return err
	}
	w.sql.WriteString(" AS ")
	w.sql.WriteString(typ)
	w.sql.WriteByte(')')
	return nil
}

// custom expands '?' markers into bindings. '??' is a literal '?'.
func (w *Writer) custom(c types.CustomExpr) error {
	next := 0
	s := c.SQL
	for {
		i := strings.IndexByte(s, '?')
		if i < 0 {
			w.sql.WriteString(s)
			break
		}
		w.sql.WriteString(s[:i])
		if i+1 < len(s) && s[i+1] == '?' {
			w.sql.WriteByte('?')
			s = s[i+2:]
			continue
		}
		if next >= len(c.Values) {
			return Malformedf("custom expression has more markers than values")
		}
		if err := w.Bind(c.Values[next]); err != nil {
			return err
		}
		next++
		s = s[i+1:]
	}
	if next != len(c.Values) {
		return Malformedf("custom expression has %d values for %d markers", len(c.Values), next)
	}
	return nil
}

// condition writes the members of g joined by its logic. Same-logic children
// are flattened; children with other logic are parenthesized.
func (w *Writer) condition(g types.ConditionGroup) error {
	members := g.Effective()
	if len(members) == 0 {
		return Malformedf("empty condition")
	}
	if sub, ok := members[0].(types.ConditionGroup); ok && len(members) == 1 && !g.Negated {
		return w.condition(sub)
	}
	if g.Negated {
		w.sql.WriteString("NOT ")
		if len(members) == 1 {
			if types.Precedence(members[0]) < types.PrecUnary {
				return w.paren(members[0])
			}
			return w.Expr(members[0])
		}
		w.sql.WriteByte('(')
		if err := w.members(g.Logic, members); err != nil {
			return err
		}
		w.sql.WriteByte(')')
		return nil
	}
	return w.members(g.Logic, members)
}

func (w *Writer) members(logic types.LogicOperator, members []types.Expr) error {
	for i, m := range members {
		if i > 0 {
			w.sql.WriteByte(' ')
			w.sql.WriteString(logic.String())
			w.sql.WriteByte(' ')
		}
		if err := w.member(m, logic); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) member(m types.Expr, logic types.LogicOperator) error {
	sub, ok := m.(types.ConditionGroup)
	if !ok || sub.Negated {
		return w.operand(m, logic.Oper(), false)
	}
	inner := sub.Effective()
	switch {
	case len(inner) == 1:
		return w.member(inner[0], logic)
	case sub.Logic == logic:
		return w.members(logic, inner)
	}
	w.sql.WriteByte('(')
	if err := w.members(sub.Logic, inner); err != nil {
		return err
	}
	w.sql.WriteByte(')')
	return nil
}
