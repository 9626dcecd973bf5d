package types

// TypeKind is a portable column type family.
type TypeKind uint8

const (
	TypeCustom TypeKind = iota
	TypeChar
	TypeString
	TypeText
	TypeTinyInteger
	TypeSmallInteger
	TypeInteger
	TypeBigInteger
	TypeFloat
	TypeDouble
	TypeDecimal
	TypeBoolean
	TypeDate
	TypeTime
	TypeDateTime
	TypeTimestamp
	TypeTimestampTZ
	TypeBinary
	TypeJSON
	TypeJSONBinary
	TypeUUID
)

// ColumnType is a column type with optional sizing. Custom is rendered verbatim
// when Kind is TypeCustom.
type ColumnType struct {
	Length    *uint32
	Precision *uint32
	Scale     *uint32
	Custom    string
	Kind      TypeKind
}

// Nullability is the explicit NULL / NOT NULL marker of a column.
type Nullability uint8

const (
	NullUnspecified Nullability = iota
	Nullable
	NotNullable
)

type ColumnDef struct {
	Name          Iden
	Default       Expr
	Extra         string
	Type          ColumnType
	Null          Nullability
	AutoIncrement bool
	PrimaryKey    bool
	Unique        bool
}

// ForeignKeyAction is the referential action of ON DELETE / ON UPDATE.
type ForeignKeyAction uint8

const (
	ActionNone ForeignKeyAction = iota
	ActionRestrict
	ActionCascade
	ActionSetNull
	ActionSetDefault
	ActionNoAction
)

func (a ForeignKeyAction) String() string {
	switch a {
	case ActionRestrict:
		return "RESTRICT"
	case ActionCascade:
		return "CASCADE"
	case ActionSetNull:
		return "SET NULL"
	case ActionSetDefault:
		return "SET DEFAULT"
	case ActionNoAction:
		return "NO ACTION"
	}
	return ""
}

type ForeignKey struct {
	Name       Iden
	RefTable   TableRef
	Columns    []Iden
	RefColumns []Iden
	OnDelete   ForeignKeyAction
	OnUpdate   ForeignKeyAction
}

type CreateTableStatement struct {
	Table       TableRef
	Columns     []ColumnDef
	PrimaryKey  []Iden
	ForeignKeys []ForeignKey
	IfNotExists bool
}

// AlterOption is one change applied by ALTER TABLE.
type AlterOption interface {
	isAlterOption()
}

type AddColumn struct{ Column ColumnDef }
type ModifyColumn struct{ Column ColumnDef }
type RenameColumn struct{ From, To Iden }
type DropColumn struct{ Name Iden }
type RenameTable struct{ To Iden }

func (AddColumn) isAlterOption()    {}
func (ModifyColumn) isAlterOption() {}
func (RenameColumn) isAlterOption() {}
func (DropColumn) isAlterOption()   {}
func (RenameTable) isAlterOption()  {}

type AlterTableStatement struct {
	Table   TableRef
	Options []AlterOption
}

// DropBehavior is CASCADE or RESTRICT on DROP TABLE.
type DropBehavior uint8

const (
	DropDefault DropBehavior = iota
	DropCascade
	DropRestrict
)

type DropTableStatement struct {
	Tables   []TableRef
	Behavior DropBehavior
	IfExists bool
}

// IndexMethod is the access method of an index.
type IndexMethod string

const (
	IndexDefault IndexMethod = ""
	IndexBTree   IndexMethod = "BTREE"
	IndexHash    IndexMethod = "HASH"
	IndexGIN     IndexMethod = "GIN"
	IndexGiST    IndexMethod = "GIST"
)

type IndexColumn struct {
	Name  Iden
	Order *Order
}

type CreateIndexStatement struct {
	Name        Iden
	Table       TableRef
	Method      IndexMethod
	Columns     []IndexColumn
	Unique      bool
	IfNotExists bool
}

// DropIndexStatement drops an index. Table is required by dialects whose
// index names are scoped to a table.
type DropIndexStatement struct {
	Name     Iden
	Table    TableRef
	IfExists bool
}

func (*CreateTableStatement) isStatement() {}
func (*AlterTableStatement) isStatement()  {}
func (*DropTableStatement) isStatement()   {}
func (*CreateIndexStatement) isStatement() {}
func (*DropIndexStatement) isStatement()   {}
