// Package mssql provides the Microsoft SQL Server dialect renderer for sqltree.
package mssql

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/zoobzio/sqltree/internal/render"
	"github.com/zoobzio/sqltree/internal/types"
)

const dialectName = "sqlserver"

// Renderer implements the SQL Server dialect renderer.
type Renderer struct{}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a statement to T-SQL with @pN placeholders.
func (r *Renderer) Render(stmt types.Statement) (*types.QueryResult, error) {
	return render.Statement(r, stmt)
}

// RenderInline converts a statement to T-SQL with literals inlined.
func (r *Renderer) RenderInline(stmt types.Statement) (string, error) {
	return render.Inline(r, stmt)
}

func (r *Renderer) Name() string { return dialectName }

// Capabilities returns the SQL features supported by SQL Server.
// RETURNING and upserts have T-SQL counterparts (OUTPUT, MERGE) with
// different semantics, so they are reported unsupported.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		AddColumnKeyword:   "ADD",
		RowLocking:         render.RowLockingNone,
		RightJoin:          true,
		FullJoin:           true,
		DropIndexIfExists:  true,
		DropIndexOnTable:   true,
		DropMultipleTables: true,
	}
}

func (r *Renderer) QuoteIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (r *Renderer) Placeholder(ordinal int) string {
	return "@p" + strconv.Itoa(ordinal)
}

// QuoteString writes a Unicode literal.
func (r *Renderer) QuoteString(s string) string {
	return "N'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (r *Renderer) BoolLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (r *Renderer) BytesLiteral(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func (r *Renderer) Precedence(types.BinOper) int { return 1 }

// LimitOffset uses OFFSET/FETCH, which requires an ORDER BY; an arbitrary
// one is supplied when the statement has none.
func (r *Renderer) LimitOffset(limit, offset *uint64, ordered bool) (string, error) {
	if limit == nil && offset == nil {
		return "", nil
	}
	var sb strings.Builder
	if !ordered {
		sb.WriteString("ORDER BY (SELECT NULL) ")
	}
	var skip uint64
	if offset != nil {
		skip = *offset
	}
	sb.WriteString("OFFSET " + strconv.FormatUint(skip, 10) + " ROWS")
	if limit != nil {
		sb.WriteString(" FETCH NEXT " + strconv.FormatUint(*limit, 10) + " ROWS ONLY")
	}
	return sb.String(), nil
}

func (r *Renderer) WriteUpsert(*render.Writer, *types.InsertStatement) error {
	return render.NewUnsupportedFeatureError(dialectName, "upsert", "use MERGE")
}

func (r *Renderer) ExcludedColumn(quoted string) string {
	return quoted
}

func (r *Renderer) FunctionName(f types.Function) string {
	switch f {
	case types.FuncCharLength:
		return "LEN"
	case types.FuncRandom:
		return "RAND"
	case types.FuncIfNull:
		return "ISNULL"
	}
	return string(f)
}

func (r *Renderer) ColumnType(t types.ColumnType) (string, error) {
	switch t.Kind {
	case types.TypeChar:
		return render.Sized("nchar", t.Length), nil
	case types.TypeString:
		if t.Length == nil {
			return "nvarchar(255)", nil
		}
		return render.Sized("nvarchar", t.Length), nil
	case types.TypeText, types.TypeJSON, types.TypeJSONBinary:
		return "nvarchar(max)", nil
	case types.TypeTinyInteger:
		return "tinyint", nil
	case types.TypeSmallInteger:
		return "smallint", nil
	case types.TypeInteger:
		return "int", nil
	case types.TypeBigInteger:
		return "bigint", nil
	case types.TypeFloat:
		return "real", nil
	case types.TypeDouble:
		return "float", nil
	case types.TypeDecimal:
		return render.Numeric("decimal", t.Precision, t.Scale), nil
	case types.TypeBoolean:
		return "bit", nil
	case types.TypeDate:
		return "date", nil
	case types.TypeTime:
		return "time", nil
	case types.TypeDateTime, types.TypeTimestamp:
		return "datetime2", nil
	case types.TypeTimestampTZ:
		return "datetimeoffset", nil
	case types.TypeBinary:
		if t.Length == nil {
			return "varbinary(max)", nil
		}
		return render.Sized("varbinary", t.Length), nil
	case types.TypeUUID:
		return "uniqueidentifier", nil
	}
	return render.CustomType(t)
}

func (r *Renderer) CastType(t types.ColumnType) (string, error) {
	return r.ColumnType(t)
}

func (r *Renderer) AutoIncrement(col types.ColumnDef) (string, string, error) {
	if !render.IsInteger(col.Type.Kind) {
		return "", "", render.Malformedf("auto-increment column %v must have an integer type", col.Name)
	}
	return "", "IDENTITY(1,1)", nil
}

// WriteModifyColumn writes ALTER COLUMN with the new type and nullability.
func (r *Renderer) WriteModifyColumn(w *render.Writer, col types.ColumnDef) error {
	if col.Default != nil || col.AutoIncrement || col.PrimaryKey || col.Unique {
		return render.NewUnsupportedFeatureError(dialectName, "constraints in ALTER COLUMN", "add a constraint with a separate statement")
	}
	typ, err := r.ColumnType(col.Type)
	if err != nil {
		return err
	}
	w.WriteString("ALTER COLUMN ")
	if err := w.Ident(col.Name); err != nil {
		return err
	}
	w.WriteString(" " + typ)
	switch col.Null {
	case types.Nullable:
		w.WriteString(" NULL")
	case types.NotNullable:
		w.WriteString(" NOT NULL")
	}
	return nil
}
