package sqltree

import (
	"github.com/zoobzio/sqltree/internal/render"
	"github.com/zoobzio/sqltree/internal/types"
)

// InsertBuilder provides a fluent API for constructing INSERT statements.
type InsertBuilder struct {
	stmt *types.InsertStatement
	err  error
}

// Insert creates a new INSERT builder.
func Insert() *InsertBuilder {
	return &InsertBuilder{stmt: &types.InsertStatement{}}
}

// Into sets the target table.
func (b *InsertBuilder) Into(table any) *InsertBuilder {
	if b.err != nil {
		return b
	}
	t, err := toTable(table)
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.Table = t
	return b
}

// Columns sets the column list. Rows added later must match its length.
func (b *InsertBuilder) Columns(cols ...any) *InsertBuilder {
	if b.err != nil {
		return b
	}
	ids, err := toIdens(cols)
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.Columns = ids
	return b
}

// Values adds one row.
func (b *InsertBuilder) Values(vals ...any) *InsertBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case len(b.stmt.Columns) == 0:
		b.err = render.Malformedf("values without a column list")
		return b
	case b.stmt.Select != nil:
		b.err = render.Malformedf("INSERT cannot have both VALUES and SELECT")
		return b
	case len(vals) != len(b.stmt.Columns):
		b.err = render.Malformedf("columns and values length mismatch: %d != %d", len(b.stmt.Columns), len(vals))
		return b
	}
	b.stmt.Rows = append(b.stmt.Rows, toExprs(vals))
	return b
}

// Select inserts the rows produced by q.
func (b *InsertBuilder) Select(q *SelectBuilder) *InsertBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case q == nil:
		b.err = render.Malformedf("missing INSERT query")
		return b
	case q.err != nil:
		b.err = q.err
		return b
	case len(b.stmt.Rows) > 0:
		b.err = render.Malformedf("INSERT cannot have both VALUES and SELECT")
		return b
	}
	b.stmt.Select = q.stmt.Clone()
	return b
}

// Returning sets the columns returned by the statement.
func (b *InsertBuilder) Returning(cols ...any) *InsertBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Returning = selectExprs(cols)
	return b
}

// OnConflict starts an upsert clause. Dialects that infer the conflict
// target from the table's unique keys ignore targets.
func (b *InsertBuilder) OnConflict(targets ...any) *ConflictBuilder {
	if b.err != nil {
		return &ConflictBuilder{builder: b, err: b.err}
	}
	ids, err := toIdens(targets)
	if err != nil {
		b.err = err
		return &ConflictBuilder{builder: b, err: err}
	}
	b.stmt.OnConflict = &types.OnConflict{Targets: ids}
	return &ConflictBuilder{builder: b}
}

// ConflictBuilder handles ON CONFLICT actions.
type ConflictBuilder struct {
	builder *InsertBuilder
	err     error
}

// DoNothing skips conflicting rows.
func (cb *ConflictBuilder) DoNothing() *InsertBuilder {
	if cb.err != nil {
		return cb.builder
	}
	cb.builder.stmt.OnConflict.Action = types.DoNothing
	return cb.builder
}

// DoUpdate updates the conflicting row.
func (cb *ConflictBuilder) DoUpdate() *ConflictUpdateBuilder {
	if cb.err != nil {
		return &ConflictUpdateBuilder{builder: cb.builder, err: cb.err}
	}
	cb.builder.stmt.OnConflict.Action = types.DoUpdate
	return &ConflictUpdateBuilder{builder: cb.builder}
}

// ConflictUpdateBuilder handles the DO UPDATE SET assignments.
type ConflictUpdateBuilder struct {
	builder *InsertBuilder
	err     error
}

// Set assigns value to col on conflict.
func (ub *ConflictUpdateBuilder) Set(col any, value any) *ConflictUpdateBuilder {
	if ub.err != nil {
		return ub
	}
	id, err := toIden(col)
	if err != nil {
		ub.err = err
		ub.builder.err = err
		return ub
	}
	oc := ub.builder.stmt.OnConflict
	oc.Updates = append(oc.Updates, types.Assignment{Column: id, Value: toExpr(value)})
	return ub
}

// SetExcluded assigns each column the value the INSERT tried to write.
func (ub *ConflictUpdateBuilder) SetExcluded(cols ...any) *ConflictUpdateBuilder {
	for _, c := range cols {
		ub.Set(c, Excluded(c))
	}
	return ub
}

// Build finalizes the update and returns the INSERT builder.
func (ub *ConflictUpdateBuilder) Build() *InsertBuilder {
	return ub.builder
}

// Err returns the first error recorded while building.
func (b *InsertBuilder) Err() error { return b.err }

// Build returns the constructed statement or an error.
func (b *InsertBuilder) Build() (*InsertStatement, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.stmt.Select == nil && len(b.stmt.Rows) == 0 {
		return nil, render.Malformedf("INSERT without values")
	}
	return b.stmt, nil
}

// MustBuild returns the statement or panics on error.
func (b *InsertBuilder) MustBuild() *InsertStatement {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds the statement and renders it with r.
func (b *InsertBuilder) Render(r Renderer) (*QueryResult, error) {
	stmt, err := b.Build()
	return renderStmt(r, stmt, err)
}

// MustRender builds and renders the statement or panics on error.
func (b *InsertBuilder) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}

// RenderInline renders the statement with values written as literals.
func (b *InsertBuilder) RenderInline(r Renderer) (string, error) {
	stmt, err := b.Build()
	return renderStmtInline(r, stmt, err)
}

// Clone returns an independent copy of the builder.
func (b *InsertBuilder) Clone() *InsertBuilder {
	return &InsertBuilder{stmt: b.stmt.Clone(), err: b.err}
}
