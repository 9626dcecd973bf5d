// Package schemadoc reads a YAML description of tables and indexes and turns
// it into sqltree DDL builders.
//
//	tables:
//	  - name: users
//	    columns:
//	      - {name: id, type: bigint, primary_key: true, auto_increment: true}
//	      - {name: email, type: varchar(255), nullable: false, unique: true}
//	      - {name: created_at, type: timestamptz, default: CURRENT_TIMESTAMP}
//	    indexes:
//	      - {name: idx_users_created, columns: created_at desc}
package schemadoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/sqltree"
	"github.com/zoobzio/sqltree/dbexec"
)

// ErrNoTables is returned for a document without tables.
var ErrNoTables = errors.New("schema document declares no tables")

// Document is the root of a schema file.
type Document struct {
	Tables []Table `yaml:"tables"`
}

// Table describes one CREATE TABLE and the indexes on it.
type Table struct {
	Name        string       `yaml:"name"`
	Schema      string       `yaml:"schema,omitempty"`
	IfNotExists bool         `yaml:"if_not_exists,omitempty"`
	Columns     []Column     `yaml:"columns"`
	PrimaryKey  StringList   `yaml:"primary_key,omitempty"`
	ForeignKeys []ForeignKey `yaml:"foreign_keys,omitempty"`
	Indexes     []Index      `yaml:"indexes,omitempty"`
}

// Column describes one column. Default holds a YAML scalar: booleans and
// numbers become literals, strings become string literals except the
// CURRENT_TIMESTAMP, CURRENT_DATE and CURRENT_TIME keywords. DefaultSQL is
// written verbatim instead.
type Column struct {
	Name          string    `yaml:"name"`
	Type          string    `yaml:"type"`
	Nullable      *bool     `yaml:"nullable,omitempty"`
	Default       yaml.Node `yaml:"default,omitempty"`
	DefaultSQL    string    `yaml:"default_sql,omitempty"`
	PrimaryKey    bool      `yaml:"primary_key,omitempty"`
	AutoIncrement bool      `yaml:"auto_increment,omitempty"`
	Unique        bool      `yaml:"unique,omitempty"`
}

// ForeignKey describes a FOREIGN KEY constraint.
type ForeignKey struct {
	Name       string     `yaml:"name,omitempty"`
	Columns    StringList `yaml:"columns"`
	References Reference  `yaml:"references"`
	OnDelete   string     `yaml:"on_delete,omitempty"`
	OnUpdate   string     `yaml:"on_update,omitempty"`
}

// Reference is the target of a foreign key.
type Reference struct {
	Table   string     `yaml:"table"`
	Columns StringList `yaml:"columns"`
}

// Index describes a CREATE INDEX on the enclosing table. A column entry may
// carry a trailing "asc" or "desc".
type Index struct {
	Name        string     `yaml:"name"`
	Columns     StringList `yaml:"columns"`
	Unique      bool       `yaml:"unique,omitempty"`
	IfNotExists bool       `yaml:"if_not_exists,omitempty"`
	Using       string     `yaml:"using,omitempty"`
}

// StringList is a YAML type that can be either a string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list of strings", node.Line)
	}
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTables
		}
		return nil, fmt.Errorf("decoding schema document: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, ErrNoTables
	}
	return &doc, nil
}

// Statements returns CREATE TABLE statements in document order, each
// followed by the CREATE INDEX statements of its table.
func (d *Document) Statements() ([]dbexec.Statement, error) {
	var out []dbexec.Statement
	for _, t := range d.Tables {
		create, err := t.createTable()
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", t.Name, err)
		}
		out = append(out, create)
		for _, ix := range t.Indexes {
			idx, err := t.createIndex(ix)
			if err != nil {
				return nil, fmt.Errorf("table %q index %q: %w", t.Name, ix.Name, err)
			}
			out = append(out, idx)
		}
	}
	return out, nil
}

// DropStatements returns DROP TABLE IF EXISTS statements in reverse
// document order, so referencing tables go first.
func (d *Document) DropStatements() []dbexec.Statement {
	out := make([]dbexec.Statement, 0, len(d.Tables))
	for _, t := range slices.Backward(d.Tables) {
		out = append(out, sqltree.DropTable(t.ref()).IfExists())
	}
	return out
}

func (t Table) ref() sqltree.TableRef {
	if t.Schema != "" {
		return sqltree.SchemaTable(t.Schema, t.Name)
	}
	return sqltree.TableRef{Name: sqltree.Name(t.Name)}
}

func (t Table) createTable() (*sqltree.CreateTableBuilder, error) {
	if t.Name == "" {
		return nil, errors.New("missing name")
	}
	b := sqltree.CreateTable(t.ref())
	if t.IfNotExists {
		b.IfNotExists()
	}
	for _, c := range t.Columns {
		col, err := c.column()
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		b.Column(col)
	}
	if len(t.PrimaryKey) > 0 {
		b.PrimaryKey(anys(t.PrimaryKey)...)
	}
	for _, fk := range t.ForeignKeys {
		f, err := fk.build()
		if err != nil {
			return nil, err
		}
		b.ForeignKey(f)
	}
	return b, b.Err()
}

func (c Column) column() (*sqltree.ColumnBuilder, error) {
	if c.Name == "" {
		return nil, errors.New("missing name")
	}
	typ, err := ParseType(c.Type)
	if err != nil {
		return nil, err
	}
	col := sqltree.NewColumn(c.Name, typ)
	if c.Nullable != nil {
		if *c.Nullable {
			col.Null()
		} else {
			col.NotNull()
		}
	}
	switch {
	case c.DefaultSQL != "" && !c.Default.IsZero():
		return nil, errors.New("default and default_sql are mutually exclusive")
	case c.DefaultSQL != "":
		col.Default(sqltree.Cust(c.DefaultSQL))
	case !c.Default.IsZero():
		def, err := defaultValue(&c.Default)
		if err != nil {
			return nil, err
		}
		col.Default(def)
	}
	if c.PrimaryKey {
		col.PrimaryKey()
	}
	if c.AutoIncrement {
		col.AutoIncrement()
	}
	if c.Unique {
		col.Unique()
	}
	return col, nil
}

func defaultValue(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: default must be a scalar", n.Line)
	}
	switch n.ShortTag() {
	case "!!null":
		return sqltree.NullLit(), nil
	case "!!bool":
		var b bool
		err := n.Decode(&b)
		return b, err
	case "!!int":
		var i int64
		err := n.Decode(&i)
		return i, err
	case "!!float":
		var f float64
		err := n.Decode(&f)
		return f, err
	}
	switch strings.ToUpper(n.Value) {
	case "CURRENT_TIMESTAMP", "NOW()":
		return sqltree.CurrentTimestamp(), nil
	case "CURRENT_DATE":
		return sqltree.CurrentDate(), nil
	case "CURRENT_TIME":
		return sqltree.CurrentTime(), nil
	}
	return n.Value, nil
}

func (fk ForeignKey) build() (*sqltree.ForeignKeyBuilder, error) {
	onDelete, err := ParseAction(fk.OnDelete)
	if err != nil {
		return nil, fmt.Errorf("on_delete: %w", err)
	}
	onUpdate, err := ParseAction(fk.OnUpdate)
	if err != nil {
		return nil, fmt.Errorf("on_update: %w", err)
	}
	f := sqltree.NewForeignKey().
		Columns(anys(fk.Columns)...).
		References(fk.References.Table, anys(fk.References.Columns)...).
		OnDelete(onDelete).
		OnUpdate(onUpdate)
	if fk.Name != "" {
		f.Name(fk.Name)
	}
	return f, nil
}

func (t Table) createIndex(ix Index) (*sqltree.CreateIndexBuilder, error) {
	b := sqltree.CreateIndex(ix.Name).On(t.ref())
	for _, entry := range ix.Columns {
		name, order, err := indexColumn(entry)
		if err != nil {
			return nil, err
		}
		if order == nil {
			b.Columns(name)
		} else {
			b.Column(name, *order)
		}
	}
	if ix.Unique {
		b.Unique()
	}
	if ix.IfNotExists {
		b.IfNotExists()
	}
	if ix.Using != "" {
		b.Using(sqltree.IndexMethod(strings.ToUpper(ix.Using)))
	}
	return b, b.Err()
}

func indexColumn(entry string) (string, *sqltree.Order, error) {
	fields := strings.Fields(entry)
	switch len(fields) {
	case 1:
		return fields[0], nil, nil
	case 2:
		order := sqltree.Asc
		switch strings.ToLower(fields[1]) {
		case "asc":
			return fields[0], &order, nil
		case "desc":
			order = sqltree.Desc
			return fields[0], &order, nil
		}
	}
	return "", nil, fmt.Errorf("invalid index column %q", entry)
}

// ParseAction maps a referential action name such as "cascade" or
// "set null" to its constant. The empty string means no action clause.
func ParseAction(s string) (sqltree.ForeignKeyAction, error) {
	switch strings.Join(strings.Fields(strings.ToLower(s)), " ") {
	case "":
		return 0, nil
	case "restrict":
		return sqltree.Restrict, nil
	case "cascade":
		return sqltree.Cascade, nil
	case "set null":
		return sqltree.SetNull, nil
	case "set default":
		return sqltree.SetDefault, nil
	case "no action":
		return sqltree.NoAction, nil
	}
	return 0, fmt.Errorf("unknown referential action %q", s)
}

var typePattern = regexp.MustCompile(`^([a-z_ ]+?)\s*(?:\(\s*(\d+)\s*(?:,\s*(\d+)\s*)?\))?$`)

// ParseType maps a type name, optionally sized as in varchar(255) or
// decimal(10, 2), to a ColumnType. Unrecognised names become custom types
// written verbatim.
func ParseType(s string) (sqltree.ColumnType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sqltree.ColumnType{}, errors.New("missing type")
	}
	m := typePattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return sqltree.TypeCustom(s), nil
	}
	name, args := m[1], m[2:]
	n, err := sizeArg(args[0])
	if err != nil {
		return sqltree.ColumnType{}, err
	}
	sized := args[0] != ""

	switch name {
	case "char", "character":
		if !sized {
			n = 1
		}
		return sqltree.TypeChar(n), nil
	case "varchar", "character varying", "string":
		if sized {
			return sqltree.TypeVarchar(n), nil
		}
		return sqltree.TypeString(), nil
	case "varbinary":
		if !sized {
			return sqltree.ColumnType{}, fmt.Errorf("type %q needs a length", s)
		}
		return sqltree.TypeVarbinary(n), nil
	case "decimal", "numeric":
		if !sized {
			return sqltree.ColumnType{}, fmt.Errorf("type %q needs precision and scale", s)
		}
		scale, err := sizeArg(args[1])
		if err != nil {
			return sqltree.ColumnType{}, err
		}
		return sqltree.TypeDecimal(n, scale), nil
	}
	if sized {
		return sqltree.TypeCustom(s), nil
	}
	if ctor, ok := plainTypes[name]; ok {
		return ctor(), nil
	}
	return sqltree.TypeCustom(s), nil
}

func sizeArg(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid type size %q: %w", s, err)
	}
	return uint32(n), nil
}

var plainTypes = map[string]func() sqltree.ColumnType{
	"text":                     sqltree.TypeText,
	"tinyint":                  sqltree.TypeTinyInt,
	"smallint":                 sqltree.TypeSmallInt,
	"int":                      sqltree.TypeInt,
	"integer":                  sqltree.TypeInt,
	"bigint":                   sqltree.TypeBigInt,
	"float":                    sqltree.TypeFloat,
	"real":                     sqltree.TypeFloat,
	"double":                   sqltree.TypeDouble,
	"double precision":         sqltree.TypeDouble,
	"bool":                     sqltree.TypeBool,
	"boolean":                  sqltree.TypeBool,
	"date":                     sqltree.TypeDate,
	"time":                     sqltree.TypeTime,
	"datetime":                 sqltree.TypeDateTime,
	"timestamp":                sqltree.TypeTimestamp,
	"timestamptz":              sqltree.TypeTimestampTZ,
	"timestamp with time zone": sqltree.TypeTimestampTZ,
	"binary":                   sqltree.TypeBinary,
	"blob":                     sqltree.TypeBinary,
	"bytes":                    sqltree.TypeBinary,
	"json":                     sqltree.TypeJSON,
	"jsonb":                    sqltree.TypeJSONB,
	"uuid":                     sqltree.TypeUUID,
}

func anys(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
