package sqltree

import (
	"github.com/zoobzio/sqltree/internal/render"
	"github.com/zoobzio/sqltree/internal/types"
)

// UpdateBuilder provides a fluent API for constructing UPDATE statements.
type UpdateBuilder struct {
	stmt *types.UpdateStatement
	err  error
}

// Update creates a new UPDATE builder for table.
func Update(table any) *UpdateBuilder {
	b := &UpdateBuilder{stmt: &types.UpdateStatement{}}
	t, err := toTable(table)
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.Table = t
	return b
}

// Set assigns value to col.
func (b *UpdateBuilder) Set(col any, value any) *UpdateBuilder {
	if b.err != nil {
		return b
	}
	id, err := toIden(col)
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.Values = append(b.stmt.Values, types.Assignment{Column: id, Value: toExpr(value)})
	return b
}

// Where adds a condition, combined with existing ones by AND.
func (b *UpdateBuilder) Where(cond Expr) *UpdateBuilder {
	return b.AndWhere(cond)
}

// AndWhere conjoins cond with the existing WHERE clause.
func (b *UpdateBuilder) AndWhere(cond Expr) *UpdateBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Where = conjoin(b.stmt.Where, cond)
	return b
}

// OrWhere disjoins cond with the existing WHERE clause.
func (b *UpdateBuilder) OrWhere(cond Expr) *UpdateBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Where = disjoin(b.stmt.Where, cond)
	return b
}

// OrderBy adds a sort key. Only dialects with MutationLimit accept it.
func (b *UpdateBuilder) OrderBy(col any, order Order) *UpdateBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.OrderBy = append(b.stmt.OrderBy, orderExpr(col, order, NullsDefault))
	return b
}

// Limit caps the number of updated rows.
func (b *UpdateBuilder) Limit(n uint64) *UpdateBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Limit = ptr(n)
	return b
}

// Returning sets the columns returned by the statement.
func (b *UpdateBuilder) Returning(cols ...any) *UpdateBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Returning = selectExprs(cols)
	return b
}

// Err returns the first error recorded while building.
func (b *UpdateBuilder) Err() error { return b.err }

// Build returns the constructed statement or an error.
func (b *UpdateBuilder) Build() (*UpdateStatement, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stmt.Values) == 0 {
		return nil, render.Malformedf("UPDATE without assignments")
	}
	return b.stmt, nil
}

// MustBuild returns the statement or panics on error.
func (b *UpdateBuilder) MustBuild() *UpdateStatement {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds the statement and renders it with r.
func (b *UpdateBuilder) Render(r Renderer) (*QueryResult, error) {
	stmt, err := b.Build()
	return renderStmt(r, stmt, err)
}

// MustRender builds and renders the statement or panics on error.
func (b *UpdateBuilder) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}

// RenderInline renders the statement with values written as literals.
func (b *UpdateBuilder) RenderInline(r Renderer) (string, error) {
	stmt, err := b.Build()
	return renderStmtInline(r, stmt, err)
}

// Clone returns an independent copy of the builder.
func (b *UpdateBuilder) Clone() *UpdateBuilder {
	return &UpdateBuilder{stmt: b.stmt.Clone(), err: b.err}
}
