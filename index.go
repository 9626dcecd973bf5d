package sqltree

import "github.com/zoobzio/sqltree/internal/types"

// IndexMethod is the access method of an index.
type IndexMethod = types.IndexMethod

const (
	IndexBTree = types.IndexBTree
	IndexHash  = types.IndexHash
	IndexGIN   = types.IndexGIN
	IndexGiST  = types.IndexGiST
)

// CreateIndexBuilder provides a fluent API for CREATE INDEX.
type CreateIndexBuilder struct {
	statementBuilder[*types.CreateIndexStatement]
}

// CreateIndex creates a new CREATE INDEX builder.
func CreateIndex(name any) *CreateIndexBuilder {
	b := &CreateIndexBuilder{}
	b.stmt = &types.CreateIndexStatement{}
	b.stmt.Name, b.err = toIden(name)
	return b
}

// On sets the indexed table.
func (b *CreateIndexBuilder) On(table any) *CreateIndexBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Table, b.err = toTable(table)
	return b
}

// Columns adds indexed columns in the default order.
func (b *CreateIndexBuilder) Columns(cols ...any) *CreateIndexBuilder {
	if b.err != nil {
		return b
	}
	ids, err := toIdens(cols)
	if err != nil {
		b.err = err
		return b
	}
	for _, id := range ids {
		b.stmt.Columns = append(b.stmt.Columns, types.IndexColumn{Name: id})
	}
	return b
}

// Column adds an indexed column with an explicit order.
func (b *CreateIndexBuilder) Column(col any, order Order) *CreateIndexBuilder {
	if b.err != nil {
		return b
	}
	id, err := toIden(col)
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.Columns = append(b.stmt.Columns, types.IndexColumn{Name: id, Order: ptr(order)})
	return b
}

func (b *CreateIndexBuilder) Unique() *CreateIndexBuilder {
	b.stmt.Unique = true
	return b
}

func (b *CreateIndexBuilder) IfNotExists() *CreateIndexBuilder {
	b.stmt.IfNotExists = true
	return b
}

// Using sets the index method.
func (b *CreateIndexBuilder) Using(m IndexMethod) *CreateIndexBuilder {
	b.stmt.Method = m
	return b
}

// DropIndexBuilder provides a fluent API for DROP INDEX.
type DropIndexBuilder struct {
	statementBuilder[*types.DropIndexStatement]
}

// DropIndex creates a new DROP INDEX builder.
func DropIndex(name any) *DropIndexBuilder {
	b := &DropIndexBuilder{}
	b.stmt = &types.DropIndexStatement{}
	b.stmt.Name, b.err = toIden(name)
	return b
}

// On names the table the index belongs to. MySQL and SQL Server require it.
func (b *DropIndexBuilder) On(table any) *DropIndexBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.Table, b.err = toTable(table)
	return b
}

func (b *DropIndexBuilder) IfExists() *DropIndexBuilder {
	b.stmt.IfExists = true
	return b
}
