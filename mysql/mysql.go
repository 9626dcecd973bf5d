// Package mysql provides the MySQL dialect renderer for sqltree.
package mysql

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/zoobzio/sqltree/internal/render"
	"github.com/zoobzio/sqltree/internal/types"
)

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`'`, `\'`,
	"\x00", `\0`,
	"\b", `\b`,
	"\t", `\t`,
	"\x1a", `\Z`,
	"\n", `\n`,
	"\r", `\r`,
)

// EscapeString escapes s for use between single quotes in MySQL.
func EscapeString(s string) string {
	return stringEscaper.Replace(s)
}

// UnescapeString reverses EscapeString. A backslash before any other
// character yields that character.
func UnescapeString(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !escaped {
			if c == '\\' {
				escaped = true
			} else {
				b.WriteByte(c)
			}
			continue
		}
		escaped = false
		switch c {
		case '0':
			c = 0
		case 'b':
			c = '\b'
		case 't':
			c = '\t'
		case 'z', 'Z':
			c = 0x1a
		case 'n':
			c = '\n'
		case 'r':
			c = '\r'
		}
		b.WriteByte(c)
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}

// Renderer implements the MySQL dialect renderer.
type Renderer struct {
	name    string
	mariadb bool
}

// New creates a new MySQL renderer.
func New() *Renderer {
	return &Renderer{name: "mysql"}
}

// NewMariaDB creates a renderer for MariaDB, which shares the MySQL dialect
// and additionally accepts IF [NOT] EXISTS on indexes.
func NewMariaDB() *Renderer {
	return &Renderer{name: "mariadb", mariadb: true}
}

// Render converts a statement to MySQL SQL with ? placeholders.
func (r *Renderer) Render(stmt types.Statement) (*types.QueryResult, error) {
	return render.Statement(r, stmt)
}

// RenderInline converts a statement to MySQL SQL with literals inlined.
func (r *Renderer) RenderInline(stmt types.Statement) (string, error) {
	return render.Inline(r, stmt)
}

func (r *Renderer) Name() string { return r.name }

// Capabilities returns the SQL features supported by MySQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		AddColumnKeyword:        "ADD COLUMN",
		IndexMethods:            []types.IndexMethod{types.IndexBTree, types.IndexHash},
		RowLocking:              render.RowLockingBasic,
		Upsert:                  true,
		RightJoin:               true,
		MutationLimit:           true,
		CreateTableIfNotExists:  true,
		CreateIndexIfNotExists:  r.mariadb,
		IndexMethodAfterColumns: true,
		DropIndexIfExists:       r.mariadb,
		DropIndexOnTable:        true,
		DropMultipleTables:      true,
		DropBehavior:            true,
		RenameColumn:            true,
		RenameTable:             true,
		MultipleAlterOptions:    true,
	}
}

func (r *Renderer) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (r *Renderer) Placeholder(int) string { return "?" }

func (r *Renderer) QuoteString(s string) string {
	return "'" + EscapeString(s) + "'"
}

func (r *Renderer) BoolLiteral(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func (r *Renderer) BytesLiteral(b []byte) string {
	return "x'" + hex.EncodeToString(b) + "'"
}

// Precedence is flat: MySQL gives every comparison operator one level.
func (r *Renderer) Precedence(types.BinOper) int { return 1 }

// LimitOffset rejects OFFSET without LIMIT; MySQL has no syntax for it.
func (r *Renderer) LimitOffset(limit, offset *uint64, _ bool) (string, error) {
	switch {
	case limit == nil && offset == nil:
		return "", nil
	case limit == nil:
		return "", render.NewUnsupportedFeatureError(r.name, "OFFSET without LIMIT", "add a LIMIT")
	case offset == nil:
		return "LIMIT " + strconv.FormatUint(*limit, 10), nil
	}
	return "LIMIT " + strconv.FormatUint(*limit, 10) + " OFFSET " + strconv.FormatUint(*offset, 10), nil
}

func (r *Renderer) WriteUpsert(w *render.Writer, stmt *types.InsertStatement) error {
	return render.WriteOnDuplicateKey(w, stmt)
}

func (r *Renderer) ExcludedColumn(quoted string) string {
	return "VALUES(" + quoted + ")"
}

func (r *Renderer) FunctionName(f types.Function) string {
	if f == types.FuncRandom {
		return "RAND"
	}
	return string(f)
}

func (r *Renderer) ColumnType(t types.ColumnType) (string, error) {
	switch t.Kind {
	case types.TypeChar:
		return render.Sized("char", t.Length), nil
	case types.TypeString:
		if t.Length == nil {
			return "varchar(255)", nil
		}
		return render.Sized("varchar", t.Length), nil
	case types.TypeText:
		return "text", nil
	case types.TypeTinyInteger:
		return "tinyint", nil
	case types.TypeSmallInteger:
		return "smallint", nil
	case types.TypeInteger:
		return "int", nil
	case types.TypeBigInteger:
		return "bigint", nil
	case types.TypeFloat:
		return "float", nil
	case types.TypeDouble:
		return "double", nil
	case types.TypeDecimal:
		return render.Numeric("decimal", t.Precision, t.Scale), nil
	case types.TypeBoolean:
		return "bool", nil
	case types.TypeDate:
		return "date", nil
	case types.TypeTime:
		return "time", nil
	case types.TypeDateTime:
		return "datetime", nil
	case types.TypeTimestamp, types.TypeTimestampTZ:
		return "timestamp", nil
	case types.TypeBinary:
		if t.Length == nil {
			return "blob", nil
		}
		return render.Sized("varbinary", t.Length), nil
	case types.TypeJSON, types.TypeJSONBinary:
		return "json", nil
	case types.TypeUUID:
		return "char(36)", nil
	}
	return render.CustomType(t)
}

// CastType maps onto the restricted target list of CAST.
func (r *Renderer) CastType(t types.ColumnType) (string, error) {
	switch t.Kind {
	case types.TypeTinyInteger, types.TypeSmallInteger, types.TypeInteger, types.TypeBigInteger, types.TypeBoolean:
		return "SIGNED", nil
	case types.TypeChar, types.TypeString, types.TypeText:
		return render.Sized("CHAR", t.Length), nil
	case types.TypeUUID:
		return "CHAR(36)", nil
	case types.TypeFloat, types.TypeDouble:
		return "DOUBLE", nil
	case types.TypeDecimal:
		return render.Numeric("DECIMAL", t.Precision, t.Scale), nil
	case types.TypeDate:
		return "DATE", nil
	case types.TypeTime:
		return "TIME", nil
	case types.TypeDateTime, types.TypeTimestamp, types.TypeTimestampTZ:
		return "DATETIME", nil
	case types.TypeBinary:
		return render.Sized("BINARY", t.Length), nil
	case types.TypeJSON, types.TypeJSONBinary:
		return "JSON", nil
	}
	return render.CustomType(t)
}

func (r *Renderer) AutoIncrement(col types.ColumnDef) (string, string, error) {
	if !render.IsInteger(col.Type.Kind) {
		return "", "", render.Malformedf("auto-increment column %v must have an integer type", col.Name)
	}
	return "", "AUTO_INCREMENT", nil
}

// WriteModifyColumn restates the full column definition.
func (r *Renderer) WriteModifyColumn(w *render.Writer, col types.ColumnDef) error {
	w.WriteString("MODIFY COLUMN ")
	return w.ColumnDef(col)
}
