package sqltree

import "github.com/zoobzio/sqltree/internal/types"

// DeleteBuilder provides a fluent API for constructing DELETE statements.
type DeleteBuilder struct {
	stmt *types.DeleteStatement
	err  error
}

// Delete creates a new DELETE builder for table. Without a WHERE clause
// every row is deleted.
func Delete(table any) *DeleteBuilder {
	b := &DeleteBuilder{stmt: &types.DeleteStatement{}}
	t, err := toTable(table)
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.Table = t
	return b
}

// Where adds a condition, combined with existing ones by AND.
func (b *DeleteBuilder) Where(cond Expr) *DeleteBuilder {
	return b.AndWhere(cond)
}

// AndWhere conjoins cond with the existing WHERE clause.
func (b *DeleteBuilder) AndWhere(cond Expr) *DeleteBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Where = conjoin(b.stmt.Where, cond)
	return b
}

// OrWhere disjoins cond with the existing WHERE clause.
func (b *DeleteBuilder) OrWhere(cond Expr) *DeleteBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Where = disjoin(b.stmt.Where, cond)
	return b
}

// OrderBy adds a sort key. Only dialects with MutationLimit accept it.
func (b *DeleteBuilder) OrderBy(col any, order Order) *DeleteBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.OrderBy = append(b.stmt.OrderBy, orderExpr(col, order, NullsDefault))
	return b
}

// Limit caps the number of deleted rows.
func (b *DeleteBuilder) Limit(n uint64) *DeleteBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Limit = ptr(n)
	return b
}

// Returning sets the columns returned by the statement.
func (b *DeleteBuilder) Returning(cols ...any) *DeleteBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Returning = selectExprs(cols)
	return b
}

// Err returns the first error recorded while building.
func (b *DeleteBuilder) Err() error { return b.err }

// Build returns the constructed statement or an error.
func (b *DeleteBuilder) Build() (*DeleteStatement, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.stmt, nil
}

// MustBuild returns the statement or panics on error.
func (b *DeleteBuilder) MustBuild() *DeleteStatement {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds the statement and renders it with r.
func (b *DeleteBuilder) Render(r Renderer) (*QueryResult, error) {
	return renderStmt(r, b.stmt, b.err)
}

// MustRender builds and renders the statement or panics on error.
func (b *DeleteBuilder) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}

// RenderInline renders the statement with values written as literals.
func (b *DeleteBuilder) RenderInline(r Renderer) (string, error) {
	return renderStmtInline(r, b.stmt, b.err)
}

// Clone returns an independent copy of the builder.
func (b *DeleteBuilder) Clone() *DeleteBuilder {
	return &DeleteBuilder{stmt: b.stmt.Clone(), err: b.err}
}
