// Package sqlite provides the SQLite dialect renderer for sqltree.
package sqlite

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/zoobzio/sqltree/internal/render"
	"github.com/zoobzio/sqltree/internal/types"
)

const dialectName = "sqlite"

// Renderer implements the SQLite dialect renderer.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a statement to SQLite SQL with ? placeholders.
func (r *Renderer) Render(stmt types.Statement) (*types.QueryResult, error) {
	return render.Statement(r, stmt)
}

// RenderInline converts a statement to SQLite SQL with literals inlined.
func (r *Renderer) RenderInline(stmt types.Statement) (string, error) {
	return render.Inline(r, stmt)
}

func (r *Renderer) Name() string { return dialectName }

// Capabilities returns the SQL features supported by SQLite (3.39+).
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		AddColumnKeyword:       "ADD COLUMN",
		RowLocking:             render.RowLockingNone,
		Returning:              true,
		Upsert:                 true,
		NullsOrdering:          true,
		RightJoin:              true,
		FullJoin:               true,
		CreateTableIfNotExists: true,
		CreateIndexIfNotExists: true,
		DropIndexIfExists:      true,
		RenameColumn:           true,
		RenameTable:            true,
	}
}

func (r *Renderer) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (r *Renderer) Placeholder(int) string { return "?" }

func (r *Renderer) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (r *Renderer) BoolLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (r *Renderer) BytesLiteral(b []byte) string {
	return "X'" + hex.EncodeToString(b) + "'"
}

// Precedence ranks < <= > >= above = <> IS LIKE IN.
func (r *Renderer) Precedence(op types.BinOper) int {
	switch op {
	case types.OpLt, types.OpLe, types.OpGt, types.OpGe:
		return 2
	}
	return 1
}

// LimitOffset writes LIMIT -1 for an unbounded OFFSET.
func (r *Renderer) LimitOffset(limit, offset *uint64, _ bool) (string, error) {
	if limit == nil && offset == nil {
		return "", nil
	}
	n := "-1"
	if limit != nil {
		n = strconv.FormatUint(*limit, 10)
	}
	if offset == nil {
		return "LIMIT " + n, nil
	}
	return "LIMIT " + n + " OFFSET " + strconv.FormatUint(*offset, 10), nil
}

func (r *Renderer) WriteUpsert(w *render.Writer, stmt *types.InsertStatement) error {
	return render.WriteOnConflict(w, stmt)
}

func (r *Renderer) ExcludedColumn(quoted string) string {
	return "excluded." + quoted
}

func (r *Renderer) FunctionName(f types.Function) string {
	if f == types.FuncCharLength {
		return "LENGTH"
	}
	return string(f)
}

func (r *Renderer) ColumnType(t types.ColumnType) (string, error) {
	switch t.Kind {
	case types.TypeChar:
		return render.Sized("char", t.Length), nil
	case types.TypeString:
		return render.Sized("varchar", t.Length), nil
	case types.TypeText, types.TypeUUID:
		return "text", nil
	case types.TypeTinyInteger:
		return "tinyint", nil
	case types.TypeSmallInteger:
		return "smallint", nil
	case types.TypeInteger:
		return "integer", nil
	case types.TypeBigInteger:
		return "bigint", nil
	case types.TypeFloat:
		return "real", nil
	case types.TypeDouble:
		return "double", nil
	case types.TypeDecimal:
		return render.Numeric("decimal", t.Precision, t.Scale), nil
	case types.TypeBoolean:
		return "boolean", nil
	case types.TypeDate:
		return "date", nil
	case types.TypeTime:
		return "time", nil
	case types.TypeDateTime:
		return "datetime", nil
	case types.TypeTimestamp:
		return "timestamp", nil
	case types.TypeTimestampTZ:
		return "timestamptz", nil
	case types.TypeBinary:
		return "blob", nil
	case types.TypeJSON:
		return "json", nil
	case types.TypeJSONBinary:
		return "jsonb", nil
	}
	return render.CustomType(t)
}

// CastType maps onto SQLite's storage classes.
func (r *Renderer) CastType(t types.ColumnType) (string, error) {
	switch t.Kind {
	case types.TypeTinyInteger, types.TypeSmallInteger, types.TypeInteger, types.TypeBigInteger, types.TypeBoolean:
		return "INTEGER", nil
	case types.TypeFloat, types.TypeDouble:
		return "REAL", nil
	case types.TypeDecimal:
		return "NUMERIC", nil
	case types.TypeBinary:
		return "BLOB", nil
	case types.TypeCustom:
		return render.CustomType(t)
	}
	return "TEXT", nil
}

// AutoIncrement is only valid on an INTEGER PRIMARY KEY column.
func (r *Renderer) AutoIncrement(col types.ColumnDef) (string, string, error) {
	if !render.IsInteger(col.Type.Kind) {
		return "", "", render.Malformedf("auto-increment column %v must have an integer type", col.Name)
	}
	if !col.PrimaryKey {
		return "", "", render.NewUnsupportedFeatureError(dialectName, "AUTOINCREMENT outside a primary key column")
	}
	return "integer", "AUTOINCREMENT", nil
}

func (r *Renderer) WriteModifyColumn(*render.Writer, types.ColumnDef) error {
	return render.NewUnsupportedFeatureError(dialectName, "ALTER TABLE MODIFY COLUMN", "rebuild the table")
}
