package sqltree

import (
	"github.com/zoobzio/sqltree/internal/render"
	"github.com/zoobzio/sqltree/internal/types"
)

// SelectBuilder provides a fluent API for constructing SELECT queries.
type SelectBuilder struct {
	stmt *types.SelectStatement
	err  error
}

// Select creates a new SELECT query builder. Strings and identifiers are
// column names; expressions are projected as is. Without arguments the
// query selects *.
func Select(cols ...any) *SelectBuilder {
	b := &SelectBuilder{stmt: &types.SelectStatement{}}
	if len(cols) == 0 {
		b.stmt.Columns = []types.SelectExpr{{Expr: types.ColumnExpr{}}}
		return b
	}
	b.stmt.Columns = selectExprs(cols)
	return b
}

// Column appends a projected column or expression.
func (b *SelectBuilder) Column(col any) *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Columns = append(b.dropStar(), types.SelectExpr{Expr: toColumn(col)})
	return b
}

// ExprAs appends an aliased projection.
func (b *SelectBuilder) ExprAs(e any, alias any) *SelectBuilder {
	if b.err != nil {
		return b
	}
	id, err := toIden(alias)
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.Columns = append(b.dropStar(), types.SelectExpr{Expr: toColumn(e), Alias: id})
	return b
}

// dropStar removes the implicit * that Select adds when called without
// columns, so explicit projections replace it.
func (b *SelectBuilder) dropStar() []types.SelectExpr {
	if len(b.stmt.Columns) == 1 {
		if c, ok := b.stmt.Columns[0].Expr.(types.ColumnExpr); ok && c.Name == nil && c.Table == nil && b.stmt.Columns[0].Alias == nil {
			return b.stmt.Columns[:0:0]
		}
	}
	return b.stmt.Columns
}

// Distinct sets the DISTINCT flag.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Distinct = true
	return b
}

// From sets the table to select from: a string, identifier or TableRef.
func (b *SelectBuilder) From(table any) *SelectBuilder {
	if b.err != nil {
		return b
	}
	t, err := toTable(table)
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.From = &t
	return b
}

// FromSubQuery selects from a derived table.
func (b *SelectBuilder) FromSubQuery(q *SelectBuilder, alias any) *SelectBuilder {
	if b.err != nil {
		return b
	}
	t, err := derived(q, alias)
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.From = &t
	return b
}

func derived(q *SelectBuilder, alias any) (types.TableRef, error) {
	if q == nil {
		return types.TableRef{}, render.Malformedf("missing sub-query")
	}
	if q.err != nil {
		return types.TableRef{}, q.err
	}
	id, err := toIden(alias)
	if err != nil {
		return types.TableRef{}, err
	}
	return types.TableRef{SubQuery: q.stmt.Clone(), Alias: id}, nil
}

// Join adds an INNER JOIN.
func (b *SelectBuilder) Join(table any, on Expr) *SelectBuilder {
	return b.addJoin(types.InnerJoin, table, &on)
}

// InnerJoin adds an INNER JOIN.
func (b *SelectBuilder) InnerJoin(table any, on Expr) *SelectBuilder {
	return b.addJoin(types.InnerJoin, table, &on)
}

// LeftJoin adds a LEFT JOIN.
func (b *SelectBuilder) LeftJoin(table any, on Expr) *SelectBuilder {
	return b.addJoin(types.LeftJoin, table, &on)
}

// RightJoin adds a RIGHT JOIN.
func (b *SelectBuilder) RightJoin(table any, on Expr) *SelectBuilder {
	return b.addJoin(types.RightJoin, table, &on)
}

// FullJoin adds a FULL OUTER JOIN.
func (b *SelectBuilder) FullJoin(table any, on Expr) *SelectBuilder {
	return b.addJoin(types.FullJoin, table, &on)
}

// CrossJoin adds a CROSS JOIN.
func (b *SelectBuilder) CrossJoin(table any) *SelectBuilder {
	return b.addJoin(types.CrossJoin, table, nil)
}

func (b *SelectBuilder) addJoin(kind types.JoinKind, table any, on *Expr) *SelectBuilder {
	if b.err != nil {
		return b
	}
	t, err := toTable(table)
	if err != nil {
		b.err = err
		return b
	}
	j := types.Join{Kind: kind, Table: t}
	if on != nil {
		j.On = toCondition(*on)
	}
	b.stmt.Joins = append(b.stmt.Joins, j)
	return b
}

// Where adds a condition, combined with existing ones by AND.
func (b *SelectBuilder) Where(cond Expr) *SelectBuilder {
	return b.AndWhere(cond)
}

// AndWhere conjoins cond with the existing WHERE clause.
func (b *SelectBuilder) AndWhere(cond Expr) *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Where = conjoin(b.stmt.Where, cond)
	return b
}

// OrWhere disjoins cond with the existing WHERE clause.
func (b *SelectBuilder) OrWhere(cond Expr) *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Where = disjoin(b.stmt.Where, cond)
	return b
}

// GroupBy adds grouping columns or expressions.
func (b *SelectBuilder) GroupBy(cols ...any) *SelectBuilder {
	if b.err != nil {
		return b
	}
	for _, c := range cols {
		b.stmt.GroupBy = append(b.stmt.GroupBy, toColumn(c))
	}
	return b
}

// Having adds a HAVING condition, combined with existing ones by AND.
func (b *SelectBuilder) Having(cond Expr) *SelectBuilder {
	return b.AndHaving(cond)
}

// AndHaving conjoins cond with the existing HAVING clause.
func (b *SelectBuilder) AndHaving(cond Expr) *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Having = conjoin(b.stmt.Having, cond)
	return b
}

// OrderBy adds a sort key.
func (b *SelectBuilder) OrderBy(col any, order Order) *SelectBuilder {
	return b.OrderByNulls(col, order, NullsDefault)
}

// OrderByNulls adds a sort key with explicit NULL placement.
func (b *SelectBuilder) OrderByNulls(col any, order Order, nulls NullsOrder) *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.OrderBy = append(b.stmt.OrderBy, orderExpr(col, order, nulls))
	return b
}

// Limit sets the row limit, replacing any previous one.
func (b *SelectBuilder) Limit(n uint64) *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Limit = ptr(n)
	return b
}

// Offset sets the row offset, replacing any previous one.
func (b *SelectBuilder) Offset(n uint64) *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Offset = ptr(n)
	return b
}

// ForUpdate locks the selected rows for update.
func (b *SelectBuilder) ForUpdate() *SelectBuilder {
	return b.Lock(LockUpdate, LockWait)
}

// ForShare locks the selected rows in share mode.
func (b *SelectBuilder) ForShare() *SelectBuilder {
	return b.Lock(LockShare, LockWait)
}

// Lock adds a row-locking clause, optionally restricted to some tables.
func (b *SelectBuilder) Lock(typ LockType, behavior LockBehavior, of ...any) *SelectBuilder {
	if b.err != nil {
		return b
	}
	tables, err := toIdens(of)
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.Lock = &types.Lock{Type: typ, Behavior: behavior, Of: tables}
	return b
}

// Union appends q with UNION, removing duplicate rows.
func (b *SelectBuilder) Union(q *SelectBuilder) *SelectBuilder {
	return b.addUnion(q, false)
}

// UnionAll appends q with UNION ALL.
func (b *SelectBuilder) UnionAll(q *SelectBuilder) *SelectBuilder {
	return b.addUnion(q, true)
}

func (b *SelectBuilder) addUnion(q *SelectBuilder, all bool) *SelectBuilder {
	if b.err != nil {
		return b
	}
	if q == nil {
		b.err = render.Malformedf("missing UNION query")
		return b
	}
	if q.err != nil {
		b.err = q.err
		return b
	}
	b.stmt.Unions = append(b.stmt.Unions, types.Union{Query: q.stmt.Clone(), All: all})
	return b
}

// Err returns the first error recorded while building.
func (b *SelectBuilder) Err() error { return b.err }

// Build returns the constructed statement or an error.
func (b *SelectBuilder) Build() (*SelectStatement, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.stmt, nil
}

// MustBuild returns the statement or panics on error.
func (b *SelectBuilder) MustBuild() *SelectStatement {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds the statement and renders it with r.
func (b *SelectBuilder) Render(r Renderer) (*QueryResult, error) {
	return renderStmt(r, b.stmt, b.err)
}

// MustRender builds and renders the statement or panics on error.
func (b *SelectBuilder) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}

// RenderInline renders the statement with values written as literals.
func (b *SelectBuilder) RenderInline(r Renderer) (string, error) {
	return renderStmtInline(r, b.stmt, b.err)
}

// Clone returns an independent copy of the builder.
func (b *SelectBuilder) Clone() *SelectBuilder {
	return &SelectBuilder{stmt: b.stmt.Clone(), err: b.err}
}
