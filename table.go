package sqltree

import (
	"github.com/zoobzio/sqltree/internal/render"
	"github.com/zoobzio/sqltree/internal/types"
)

// ColumnType is a portable column type; dialects map it to their own names.
type ColumnType = types.ColumnType

// TypeKind is the family of a ColumnType.
type TypeKind = types.TypeKind

func sized(kind types.TypeKind, n uint32) ColumnType {
	return ColumnType{Kind: kind, Length: ptr(n)}
}

func TypeChar(n uint32) ColumnType    { return sized(types.TypeChar, n) }
func TypeVarchar(n uint32) ColumnType { return sized(types.TypeString, n) }

// TypeString is a variable-length string with the dialect's default size.
func TypeString() ColumnType      { return ColumnType{Kind: types.TypeString} }
func TypeText() ColumnType        { return ColumnType{Kind: types.TypeText} }
func TypeTinyInt() ColumnType     { return ColumnType{Kind: types.TypeTinyInteger} }
func TypeSmallInt() ColumnType    { return ColumnType{Kind: types.TypeSmallInteger} }
func TypeInt() ColumnType         { return ColumnType{Kind: types.TypeInteger} }
func TypeBigInt() ColumnType      { return ColumnType{Kind: types.TypeBigInteger} }
func TypeFloat() ColumnType       { return ColumnType{Kind: types.TypeFloat} }
func TypeDouble() ColumnType      { return ColumnType{Kind: types.TypeDouble} }
func TypeBool() ColumnType        { return ColumnType{Kind: types.TypeBoolean} }
func TypeDate() ColumnType        { return ColumnType{Kind: types.TypeDate} }
func TypeTime() ColumnType        { return ColumnType{Kind: types.TypeTime} }
func TypeDateTime() ColumnType    { return ColumnType{Kind: types.TypeDateTime} }
func TypeTimestamp() ColumnType   { return ColumnType{Kind: types.TypeTimestamp} }
func TypeTimestampTZ() ColumnType { return ColumnType{Kind: types.TypeTimestampTZ} }
func TypeBinary() ColumnType      { return ColumnType{Kind: types.TypeBinary} }
func TypeJSON() ColumnType        { return ColumnType{Kind: types.TypeJSON} }
func TypeJSONB() ColumnType       { return ColumnType{Kind: types.TypeJSONBinary} }
func TypeUUID() ColumnType        { return ColumnType{Kind: types.TypeUUID} }

// TypeVarbinary is a binary string of at most n bytes.
func TypeVarbinary(n uint32) ColumnType { return sized(types.TypeBinary, n) }

// TypeDecimal is an exact numeric with precision p and scale s.
func TypeDecimal(p, s uint32) ColumnType {
	return ColumnType{Kind: types.TypeDecimal, Precision: ptr(p), Scale: ptr(s)}
}

// TypeCustom is written verbatim.
func TypeCustom(name string) ColumnType {
	return ColumnType{Kind: types.TypeCustom, Custom: name}
}

// ForeignKeyAction is the referential action of ON DELETE / ON UPDATE.
type ForeignKeyAction = types.ForeignKeyAction

const (
	Restrict   = types.ActionRestrict
	Cascade    = types.ActionCascade
	SetNull    = types.ActionSetNull
	SetDefault = types.ActionSetDefault
	NoAction   = types.ActionNoAction
)

// ColumnBuilder defines one column of CREATE TABLE or ALTER TABLE.
type ColumnBuilder struct {
	def types.ColumnDef
	err error
}

// NewColumn starts a column definition.
func NewColumn(name any, t ColumnType) *ColumnBuilder {
	c := &ColumnBuilder{def: types.ColumnDef{Type: t}}
	id, err := toIden(name)
	if err != nil {
		c.err = err
		return c
	}
	c.def.Name = id
	return c
}

func (c *ColumnBuilder) NotNull() *ColumnBuilder {
	c.def.Null = types.NotNullable
	return c
}

// Null marks the column explicitly nullable.
func (c *ColumnBuilder) Null() *ColumnBuilder {
	c.def.Null = types.Nullable
	return c
}

// Default sets the column default. Values are written as literals.
func (c *ColumnBuilder) Default(x any) *ColumnBuilder {
	c.def.Default = toExpr(x)
	return c
}

func (c *ColumnBuilder) PrimaryKey() *ColumnBuilder {
	c.def.PrimaryKey = true
	return c
}

func (c *ColumnBuilder) AutoIncrement() *ColumnBuilder {
	c.def.AutoIncrement = true
	return c
}

func (c *ColumnBuilder) Unique() *ColumnBuilder {
	c.def.Unique = true
	return c
}

// Extra appends raw SQL to the definition.
func (c *ColumnBuilder) Extra(sql string) *ColumnBuilder {
	c.def.Extra = sql
	return c
}

func (c *ColumnBuilder) build() (types.ColumnDef, error) {
	if c == nil {
		return types.ColumnDef{}, render.Malformedf("missing column")
	}
	return c.def, c.err
}

// ForeignKeyBuilder defines a FOREIGN KEY constraint.
type ForeignKeyBuilder struct {
	fk  types.ForeignKey
	err error
}

// NewForeignKey starts a foreign key definition.
func NewForeignKey() *ForeignKeyBuilder {
	return &ForeignKeyBuilder{}
}

// Name sets the constraint name.
func (f *ForeignKeyBuilder) Name(name any) *ForeignKeyBuilder {
	if f.err != nil {
		return f
	}
	f.fk.Name, f.err = toIden(name)
	return f
}

// Columns sets the referencing columns.
func (f *ForeignKeyBuilder) Columns(cols ...any) *ForeignKeyBuilder {
	if f.err != nil {
		return f
	}
	f.fk.Columns, f.err = toIdens(cols)
	return f
}

// References sets the referenced table and columns.
func (f *ForeignKeyBuilder) References(table any, cols ...any) *ForeignKeyBuilder {
	if f.err != nil {
		return f
	}
	if f.fk.RefTable, f.err = toTable(table); f.err != nil {
		return f
	}
	f.fk.RefColumns, f.err = toIdens(cols)
	return f
}

func (f *ForeignKeyBuilder) OnDelete(a ForeignKeyAction) *ForeignKeyBuilder {
	f.fk.OnDelete = a
	return f
}

func (f *ForeignKeyBuilder) OnUpdate(a ForeignKeyAction) *ForeignKeyBuilder {
	f.fk.OnUpdate = a
	return f
}

func (f *ForeignKeyBuilder) build() (types.ForeignKey, error) {
	if f == nil {
		return types.ForeignKey{}, render.Malformedf("missing foreign key")
	}
	if f.err != nil {
		return types.ForeignKey{}, f.err
	}
	if len(f.fk.Columns) != len(f.fk.RefColumns) {
		return types.ForeignKey{}, render.Malformedf("foreign key columns and referenced columns length mismatch: %d != %d", len(f.fk.Columns), len(f.fk.RefColumns))
	}
	return f.fk, nil
}

// statementBuilder carries the terminal methods shared by the DDL builders.
type statementBuilder[S types.Statement] struct {
	stmt S
	err  error
}

// Err returns the first error recorded while building.
func (b *statementBuilder[S]) Err() error { return b.err }

// Build returns the constructed statement or an error.
func (b *statementBuilder[S]) Build() (S, error) {
	if b.err != nil {
		var zero S
		return zero, b.err
	}
	return b.stmt, nil
}

// MustBuild returns the statement or panics on error.
func (b *statementBuilder[S]) MustBuild() S {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds the statement and renders it with r.
func (b *statementBuilder[S]) Render(r Renderer) (*QueryResult, error) {
	return renderStmt(r, b.stmt, b.err)
}

// MustRender builds and renders the statement or panics on error.
func (b *statementBuilder[S]) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}

// RenderInline renders the statement with values written as literals.
func (b *statementBuilder[S]) RenderInline(r Renderer) (string, error) {
	return renderStmtInline(r, b.stmt, b.err)
}

// CreateTableBuilder provides a fluent API for CREATE TABLE.
type CreateTableBuilder struct {
	statementBuilder[*types.CreateTableStatement]
}

// CreateTable creates a new CREATE TABLE builder.
func CreateTable(table any) *CreateTableBuilder {
	b := &CreateTableBuilder{}
	b.stmt = &types.CreateTableStatement{}
	b.stmt.Table, b.err = toTable(table)
	return b
}

// IfNotExists adds IF NOT EXISTS.
func (b *CreateTableBuilder) IfNotExists() *CreateTableBuilder {
	b.stmt.IfNotExists = true
	return b
}

// Column adds a column definition.
func (b *CreateTableBuilder) Column(c *ColumnBuilder) *CreateTableBuilder {
	if b.err != nil {
		return b
	}
	def, err := c.build()
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.Columns = append(b.stmt.Columns, def)
	return b
}

// PrimaryKey adds a table-level primary key over cols.
func (b *CreateTableBuilder) PrimaryKey(cols ...any) *CreateTableBuilder {
	if b.err != nil {
		return b
	}
	b.stmt.PrimaryKey, b.err = toIdens(cols)
	return b
}

// ForeignKey adds a foreign key constraint.
func (b *CreateTableBuilder) ForeignKey(f *ForeignKeyBuilder) *CreateTableBuilder {
	if b.err != nil {
		return b
	}
	fk, err := f.build()
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.ForeignKeys = append(b.stmt.ForeignKeys, fk)
	return b
}

// AlterTableBuilder provides a fluent API for ALTER TABLE. Each call adds
// one change; several changes render comma-separated where supported.
type AlterTableBuilder struct {
	statementBuilder[*types.AlterTableStatement]
}

// AlterTable creates a new ALTER TABLE builder.
func AlterTable(table any) *AlterTableBuilder {
	b := &AlterTableBuilder{}
	b.stmt = &types.AlterTableStatement{}
	b.stmt.Table, b.err = toTable(table)
	return b
}

func (b *AlterTableBuilder) add(opt types.AlterOption, err error) *AlterTableBuilder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = err
		return b
	}
	b.stmt.Options = append(b.stmt.Options, opt)
	return b
}

// AddColumn adds a column.
func (b *AlterTableBuilder) AddColumn(c *ColumnBuilder) *AlterTableBuilder {
	def, err := c.build()
	return b.add(types.AddColumn{Column: def}, err)
}

// ModifyColumn changes an existing column's definition.
func (b *AlterTableBuilder) ModifyColumn(c *ColumnBuilder) *AlterTableBuilder {
	def, err := c.build()
	return b.add(types.ModifyColumn{Column: def}, err)
}

// RenameColumn renames a column.
func (b *AlterTableBuilder) RenameColumn(from, to any) *AlterTableBuilder {
	f, err := toIden(from)
	if err != nil {
		return b.add(nil, err)
	}
	t, err := toIden(to)
	return b.add(types.RenameColumn{From: f, To: t}, err)
}

// DropColumn removes a column.
func (b *AlterTableBuilder) DropColumn(name any) *AlterTableBuilder {
	id, err := toIden(name)
	return b.add(types.DropColumn{Name: id}, err)
}

// RenameTo renames the table.
func (b *AlterTableBuilder) RenameTo(name any) *AlterTableBuilder {
	id, err := toIden(name)
	return b.add(types.RenameTable{To: id}, err)
}

// DropTableBuilder provides a fluent API for DROP TABLE.
type DropTableBuilder struct {
	statementBuilder[*types.DropTableStatement]
}

// DropTable creates a new DROP TABLE builder.
func DropTable(tables ...any) *DropTableBuilder {
	b := &DropTableBuilder{}
	b.stmt = &types.DropTableStatement{}
	for _, t := range tables {
		ref, err := toTable(t)
		if err != nil {
			b.err = err
			return b
		}
		b.stmt.Tables = append(b.stmt.Tables, ref)
	}
	return b
}

// IfExists adds IF EXISTS.
func (b *DropTableBuilder) IfExists() *DropTableBuilder {
	b.stmt.IfExists = true
	return b
}

// Cascade also drops dependent objects.
func (b *DropTableBuilder) Cascade() *DropTableBuilder {
	b.stmt.Behavior = types.DropCascade
	return b
}

// Restrict refuses to drop a table other objects depend on.
func (b *DropTableBuilder) Restrict() *DropTableBuilder {
	b.stmt.Behavior = types.DropRestrict
	return b
}
