// Package postgres provides the PostgreSQL dialect renderer for sqltree.
// CockroachDB speaks the same dialect and uses the same renderer.
package postgres

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/zoobzio/sqltree/internal/render"
	"github.com/zoobzio/sqltree/internal/types"
)

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct {
	name string
}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{name: "postgres"}
}

// NewCockroach creates a renderer for CockroachDB, which shares the
// PostgreSQL dialect.
func NewCockroach() *Renderer {
	return &Renderer{name: "cockroachdb"}
}

// Render converts a statement to PostgreSQL SQL with $n placeholders.
func (r *Renderer) Render(stmt types.Statement) (*types.QueryResult, error) {
	return render.Statement(r, stmt)
}

// RenderInline converts a statement to PostgreSQL SQL with literals inlined.
func (r *Renderer) RenderInline(stmt types.Statement) (string, error) {
	return render.Inline(r, stmt)
}

func (r *Renderer) Name() string { return r.name }

// Capabilities returns the SQL features supported by PostgreSQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		AddColumnKeyword:       "ADD COLUMN",
		IndexMethods:           []types.IndexMethod{types.IndexBTree, types.IndexHash, types.IndexGIN, types.IndexGiST},
		RowLocking:             render.RowLockingFull,
		Returning:              true,
		Upsert:                 true,
		NullsOrdering:          true,
		RightJoin:              true,
		FullJoin:               true,
		CreateTableIfNotExists: true,
		CreateIndexIfNotExists: true,
		DropIndexIfExists:      true,
		DropMultipleTables:     true,
		DropBehavior:           true,
		RenameColumn:           true,
		RenameTable:            true,
		MultipleAlterOptions:   true,
		ExclusiveRename:        true,
	}
}

func (r *Renderer) QuoteIdentifier(name string) string {
	return pq.QuoteIdentifier(name)
}

func (r *Renderer) Placeholder(ordinal int) string {
	return "$" + strconv.Itoa(ordinal)
}

// QuoteString doubles single quotes and switches to an E'' literal when the
// string holds a backslash.
func (r *Renderer) QuoteString(s string) string {
	return strings.TrimLeft(pq.QuoteLiteral(s), " ")
}

func (r *Renderer) BoolLiteral(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// BytesLiteral uses the bytea hex input format.
func (r *Renderer) BytesLiteral(b []byte) string {
	return `'\x` + hex.EncodeToString(b) + `'`
}

// Precedence follows PostgreSQL 9.5+: LIKE and IN bind tighter than the
// comparison operators. IS moved across versions and ranks with them.
func (r *Renderer) Precedence(op types.BinOper) int {
	switch op {
	case types.OpLike, types.OpNotLike, types.OpIn, types.OpNotIn:
		return 2
	}
	return 1
}

func (r *Renderer) LimitOffset(limit, offset *uint64, _ bool) (string, error) {
	var parts []string
	if limit != nil {
		parts = append(parts, "LIMIT "+strconv.FormatUint(*limit, 10))
	}
	if offset != nil {
		parts = append(parts, "OFFSET "+strconv.FormatUint(*offset, 10))
	}
	return strings.Join(parts, " "), nil
}

func (r *Renderer) WriteUpsert(w *render.Writer, stmt *types.InsertStatement) error {
	return render.WriteOnConflict(w, stmt)
}

func (r *Renderer) ExcludedColumn(quoted string) string {
	return "excluded." + quoted
}

func (r *Renderer) FunctionName(f types.Function) string {
	if f == types.FuncIfNull {
		return string(types.FuncCoalesce)
	}
	return string(f)
}

func (r *Renderer) ColumnType(t types.ColumnType) (string, error) {
	switch t.Kind {
	case types.TypeChar:
		return render.Sized("char", t.Length), nil
	case types.TypeString:
		return render.Sized("varchar", t.Length), nil
	case types.TypeText:
		return "text", nil
	case types.TypeTinyInteger, types.TypeSmallInteger:
		return "smallint", nil
	case types.TypeInteger:
		return "integer", nil
	case types.TypeBigInteger:
		return "bigint", nil
	case types.TypeFloat:
		return "real", nil
	case types.TypeDouble:
		return "double precision", nil
	case types.TypeDecimal:
		return render.Numeric("decimal", t.Precision, t.Scale), nil
	case types.TypeBoolean:
		return "boolean", nil
	case types.TypeDate:
		return "date", nil
	case types.TypeTime:
		return "time", nil
	case types.TypeDateTime, types.TypeTimestamp:
		return "timestamp", nil
	case types.TypeTimestampTZ:
		return "timestamp with time zone", nil
	case types.TypeBinary:
		return "bytea", nil
	case types.TypeJSON:
		return "json", nil
	case types.TypeJSONBinary:
		return "jsonb", nil
	case types.TypeUUID:
		return "uuid", nil
	}
	return render.CustomType(t)
}

func (r *Renderer) CastType(t types.ColumnType) (string, error) {
	return r.ColumnType(t)
}

// AutoIncrement maps integer columns onto the serial pseudo-types.
func (r *Renderer) AutoIncrement(col types.ColumnDef) (string, string, error) {
	switch col.Type.Kind {
	case types.TypeTinyInteger, types.TypeSmallInteger:
		return "smallserial", "", nil
	case types.TypeInteger:
		return "serial", "", nil
	case types.TypeBigInteger:
		return "bigserial", "", nil
	}
	return "", "", render.Malformedf("auto-increment column %v must have an integer type", col.Name)
}

// WriteModifyColumn expands a column change into ALTER COLUMN actions.
func (r *Renderer) WriteModifyColumn(w *render.Writer, col types.ColumnDef) error {
	if col.AutoIncrement || col.PrimaryKey || col.Unique {
		return render.NewUnsupportedFeatureError(r.name, "constraints in ALTER COLUMN", "add constraints with a separate statement")
	}
	typ, err := r.ColumnType(col.Type)
	if err != nil {
		return err
	}
	if err := r.alterColumn(w, col.Name); err != nil {
		return err
	}
	w.WriteString(" TYPE " + typ)

	switch col.Null {
	case types.NotNullable:
		w.WriteString(", ")
		if err := r.alterColumn(w, col.Name); err != nil {
			return err
		}
		w.WriteString(" SET NOT NULL")
	case types.Nullable:
		w.WriteString(", ")
		if err := r.alterColumn(w, col.Name); err != nil {
			return err
		}
		w.WriteString(" DROP NOT NULL")
	}
	if col.Default != nil {
		w.WriteString(", ")
		if err := r.alterColumn(w, col.Name); err != nil {
			return err
		}
		w.WriteString(" SET DEFAULT ")
		return w.DefaultExpr(col.Default)
	}
	return nil
}

func (r *Renderer) alterColumn(w *render.Writer, name types.Iden) error {
	w.WriteString("ALTER COLUMN ")
	return w.Ident(name)
}
