package sqltree

import (
	"github.com/zoobzio/sqltree/internal/render"
	"github.com/zoobzio/sqltree/internal/types"
)

// Expr is an expression under construction. Arguments typed any accept an
// Expr, a *SelectBuilder (as a sub-query), a Value, or a Go value convertible
// by ValueOf. Conversion failures surface when the statement is rendered.
type Expr struct {
	node types.Expr
}

// Wrap turns a raw node into an Expr.
func Wrap(n Node) Expr { return Expr{node: n} }

// Node returns the underlying tree node.
func (e Expr) Node() Node { return e.node }

func toExpr(x any) types.Expr {
	switch t := x.(type) {
	case Expr:
		if t.node == nil {
			return types.ErrorExpr{Err: render.Malformedf("empty expression")}
		}
		return t.node
	case *SelectBuilder:
		return subQuery(t)
	case types.Expr:
		return t
	}
	v, err := toValue(x)
	if err != nil {
		return types.ErrorExpr{Err: err}
	}
	return types.ValueExpr{Value: v}
}

func toExprs(xs []any) []types.Expr {
	out := make([]types.Expr, len(xs))
	for i, x := range xs {
		out[i] = toExpr(x)
	}
	return out
}

// toColumn treats strings and identifiers as column names. Types that are
// both Stringers and bindable values (time.Time, uuid.UUID) stay values.
func toColumn(x any) types.Expr {
	switch t := x.(type) {
	case string:
		return types.ColumnExpr{Name: types.Name(t)}
	case Expr, *SelectBuilder, types.Expr:
		return toExpr(x)
	}
	if v, err := types.ValueOf(x); err == nil {
		return types.ValueExpr{Value: v}
	}
	if id, ok := x.(types.Iden); ok {
		return types.ColumnExpr{Name: id}
	}
	return toExpr(x)
}

func errExpr(err error) Expr { return Expr{node: types.ErrorExpr{Err: err}} }

// Col references a column.
func Col(name any) Expr {
	id, err := toIden(name)
	if err != nil {
		return errExpr(err)
	}
	return Expr{node: types.ColumnExpr{Name: id}}
}

// TCol references a table-qualified column.
func TCol(table, name any) Expr {
	t, err := toIden(table)
	if err != nil {
		return errExpr(err)
	}
	id, err := toIden(name)
	if err != nil {
		return errExpr(err)
	}
	return Expr{node: types.ColumnExpr{Table: t, Name: id}}
}

// Star is the * projection.
func Star() Expr { return Expr{node: types.ColumnExpr{}} }

// TStar is table.*.
func TStar(table any) Expr {
	t, err := toIden(table)
	if err != nil {
		return errExpr(err)
	}
	return Expr{node: types.ColumnExpr{Table: t}}
}

// Val is a bound literal.
func Val(x any) Expr {
	v, err := toValue(x)
	if err != nil {
		return errExpr(err)
	}
	return Expr{node: types.ValueExpr{Value: v}}
}

// Tuple is a parenthesized expression list.
func Tuple(items ...any) Expr {
	return Expr{node: types.TupleExpr{Items: toExprs(items)}}
}

// Cust is raw SQL. Each '?' is replaced by the next value; '??' is a literal '?'.
func Cust(sql string, values ...any) Expr {
	vs := make([]types.Value, len(values))
	for i, x := range values {
		v, err := toValue(x)
		if err != nil {
			return errExpr(err)
		}
		vs[i] = v
	}
	return Expr{node: types.CustomExpr{SQL: sql, Values: vs}}
}

// Keyword expressions.
func CurrentTimestamp() Expr { return Expr{node: types.KeywordExpr{Keyword: types.KwCurrentTimestamp}} }
func CurrentDate() Expr      { return Expr{node: types.KeywordExpr{Keyword: types.KwCurrentDate}} }
func CurrentTime() Expr      { return Expr{node: types.KeywordExpr{Keyword: types.KwCurrentTime}} }
func Default() Expr          { return Expr{node: types.KeywordExpr{Keyword: types.KwDefault}} }

// NullLit is the NULL keyword, written literally rather than bound.
func NullLit() Expr { return Expr{node: types.KeywordExpr{Keyword: types.KwNull}} }

// Excluded references the value an INSERT tried to write to col. Only valid
// in OnConflict updates.
func Excluded(col any) Expr {
	id, err := toIden(col)
	if err != nil {
		return errExpr(err)
	}
	return Expr{node: types.ExcludedExpr{Column: id}}
}

// SubQuery wraps a SELECT for use as an expression.
func SubQuery(q *SelectBuilder) Expr { return Expr{node: subQuery(q)} }

func subQuery(q *SelectBuilder) types.Expr {
	if q == nil {
		return types.ErrorExpr{Err: render.Malformedf("missing sub-query")}
	}
	if q.err != nil {
		return types.ErrorExpr{Err: q.err}
	}
	return types.SubQueryExpr{Query: q.stmt.Clone()}
}

// Exists is EXISTS (q).
func Exists(q *SelectBuilder) Expr {
	return Expr{node: types.UnaryExpr{Op: types.OpExists, Operand: subQuery(q)}}
}

// NotExists is NOT EXISTS (q).
func NotExists(q *SelectBuilder) Expr {
	return Expr{node: types.UnaryExpr{Op: types.OpNotExists, Operand: subQuery(q)}}
}

func (e Expr) binary(op types.BinOper, x any) Expr {
	return Expr{node: types.BinaryExpr{Op: op, Left: toExpr(e), Right: toExpr(x)}}
}

func (e Expr) Eq(x any) Expr      { return e.binary(types.OpEq, x) }
func (e Expr) Ne(x any) Expr      { return e.binary(types.OpNe, x) }
func (e Expr) Lt(x any) Expr      { return e.binary(types.OpLt, x) }
func (e Expr) Lte(x any) Expr     { return e.binary(types.OpLe, x) }
func (e Expr) Gt(x any) Expr      { return e.binary(types.OpGt, x) }
func (e Expr) Gte(x any) Expr     { return e.binary(types.OpGe, x) }
func (e Expr) Like(x any) Expr    { return e.binary(types.OpLike, x) }
func (e Expr) NotLike(x any) Expr { return e.binary(types.OpNotLike, x) }
func (e Expr) Add(x any) Expr     { return e.binary(types.OpAdd, x) }
func (e Expr) Sub(x any) Expr     { return e.binary(types.OpSub, x) }
func (e Expr) Mul(x any) Expr     { return e.binary(types.OpMul, x) }
func (e Expr) Div(x any) Expr     { return e.binary(types.OpDiv, x) }
func (e Expr) Mod(x any) Expr     { return e.binary(types.OpMod, x) }

// Is compares with IS; x is normally nil or a bool.
func (e Expr) Is(x any) Expr    { return e.binary(types.OpIs, x) }
func (e Expr) IsNot(x any) Expr { return e.binary(types.OpIsNot, x) }

func (e Expr) IsNull() Expr    { return e.Is(nil) }
func (e Expr) IsNotNull() Expr { return e.IsNot(nil) }

// In tests membership in a list of values, a sub-query, or a tuple.
// A single Expr or *SelectBuilder argument is used as the right-hand side.
func (e Expr) In(xs ...any) Expr { return e.in(types.OpIn, xs) }

func (e Expr) NotIn(xs ...any) Expr { return e.in(types.OpNotIn, xs) }

func (e Expr) in(op types.BinOper, xs []any) Expr {
	return Expr{node: types.BinaryExpr{Op: op, Left: toExpr(e), Right: inList(xs)}}
}

func inList(xs []any) types.Expr {
	if len(xs) == 1 {
		switch xs[0].(type) {
		case Expr, *SelectBuilder:
			return toExpr(xs[0])
		}
	}
	values := make([]types.Value, 0, len(xs))
	for _, x := range xs {
		switch x.(type) {
		case Expr, *SelectBuilder:
			return types.TupleExpr{Items: toExprs(xs)}
		}
		v, err := toValue(x)
		if err != nil {
			return types.ErrorExpr{Err: err}
		}
		values = append(values, v)
	}
	return types.ValuesExpr{Values: values}
}

// Between is e BETWEEN lo AND hi.
func (e Expr) Between(lo, hi any) Expr {
	return Expr{node: types.BetweenExpr{Expr: toExpr(e), Low: toExpr(lo), High: toExpr(hi)}}
}

func (e Expr) NotBetween(lo, hi any) Expr {
	return Expr{node: types.BetweenExpr{Expr: toExpr(e), Low: toExpr(lo), High: toExpr(hi), Negated: true}}
}

// Neg is unary minus.
func (e Expr) Neg() Expr {
	return Expr{node: types.UnaryExpr{Op: types.OpNeg, Operand: toExpr(e)}}
}

// Func calls a function by name.
func Func(name string, args ...any) Expr {
	if name == "" {
		return errExpr(render.Malformedf("function without a name"))
	}
	return Expr{node: types.FuncExpr{Func: types.Function(name), Args: toExprs(args)}}
}

func call(f types.Function, args ...any) Expr {
	return Expr{node: types.FuncExpr{Func: f, Args: toExprs(args)}}
}

// Count is COUNT(*) without arguments, COUNT(x) with one.
func Count(args ...any) Expr {
	return call(types.FuncCount, columnArgs(args)...)
}

// CountDistinct is COUNT(DISTINCT x).
func CountDistinct(x any) Expr {
	return Expr{node: types.FuncExpr{Func: types.FuncCount, Args: []types.Expr{toColumn(x)}, Distinct: true}}
}

func Sum(x any) Expr        { return call(types.FuncSum, toColumn(x)) }
func Avg(x any) Expr        { return call(types.FuncAvg, toColumn(x)) }
func Min(x any) Expr        { return call(types.FuncMin, toColumn(x)) }
func Max(x any) Expr        { return call(types.FuncMax, toColumn(x)) }
func Lower(x any) Expr      { return call(types.FuncLower, toColumn(x)) }
func Upper(x any) Expr      { return call(types.FuncUpper, toColumn(x)) }
func CharLength(x any) Expr { return call(types.FuncCharLength, toColumn(x)) }
func Abs(x any) Expr        { return call(types.FuncAbs, toColumn(x)) }
func Random() Expr          { return call(types.FuncRandom) }

// Coalesce returns its first non-NULL argument. Strings are column names.
func Coalesce(args ...any) Expr { return call(types.FuncCoalesce, columnArgs(args)...) }

// IfNull is Coalesce with two arguments, spelled per dialect.
func IfNull(x, fallback any) Expr { return call(types.FuncIfNull, toColumn(x), toExpr(fallback)) }

func columnArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = toColumn(a)
	}
	return out
}

// CaseBuilder assembles CASE WHEN ... END.
type CaseBuilder struct {
	whens []types.WhenClause
}

// Case starts a CASE expression.
func Case() CaseBuilder { return CaseBuilder{} }

// When adds a WHEN cond THEN result branch.
func (c CaseBuilder) When(cond Expr, result any) CaseBuilder {
	whens := make([]types.WhenClause, len(c.whens), len(c.whens)+1)
	copy(whens, c.whens)
	c.whens = append(whens, types.WhenClause{Cond: toExpr(cond), Result: toExpr(result)})
	return c
}

// Else closes the expression with a fallback.
func (c CaseBuilder) Else(x any) Expr {
	return Expr{node: types.CaseExpr{Whens: c.whens, Else: toExpr(x)}}
}

// End closes the expression without a fallback.
func (c CaseBuilder) End() Expr {
	return Expr{node: types.CaseExpr{Whens: c.whens}}
}

// Cast is CAST(x AS t).
func Cast(x any, t ColumnType) Expr {
	return Expr{node: types.CastExpr{Expr: toExpr(x), Type: t}}
}

// Values is a parenthesized list of bound values, for use with In.
func Values(xs ...any) Expr {
	vs := make([]types.Value, len(xs))
	for i, x := range xs {
		v, err := toValue(x)
		if err != nil {
			return errExpr(err)
		}
		vs[i] = v
	}
	return Expr{node: types.ValuesExpr{Values: vs}}
}
