package render

import "github.com/zoobzio/sqltree/internal/types"

// Dialect is the per-database strategy consulted by the Writer. Every method
// is a pure function of its arguments.
type Dialect interface {
	// Name identifies the dialect in error messages.
	Name() string
	Capabilities() Capabilities

	// QuoteIdentifier wraps name in the dialect's identifier delimiters,
	// doubling any embedded delimiter.
	QuoteIdentifier(name string) string
	// Placeholder returns the marker for the ordinal-th binding (1-based).
	Placeholder(ordinal int) string
	// QuoteString returns s as a complete string literal.
	QuoteString(s string) string
	BoolLiteral(b bool) string
	BytesLiteral(b []byte) string

	// Precedence ranks the comparison operators (= <> < <= > >= LIKE IN IS)
	// against each other. Higher binds tighter. A comparison nested in
	// another is parenthesized unless its rank is strictly higher.
	Precedence(op types.BinOper) int

	// LimitOffset returns the pagination clause without a leading space, or
	// "" when both are nil. ordered reports whether the statement has an
	// ORDER BY.
	LimitOffset(limit, offset *uint64, ordered bool) (string, error)

	// WriteUpsert writes the conflict clause of stmt, whose OnConflict is set.
	WriteUpsert(w *Writer, stmt *types.InsertStatement) error
	// ExcludedColumn references the incoming value of a quoted column inside
	// an upsert assignment.
	ExcludedColumn(quoted string) string

	FunctionName(f types.Function) string
	ColumnType(t types.ColumnType) (string, error)
	CastType(t types.ColumnType) (string, error)
	// AutoIncrement returns a replacement type name (or "") and the keyword
	// to append after PRIMARY KEY (or "").
	AutoIncrement(col types.ColumnDef) (typeName, keyword string, err error)
	// WriteModifyColumn writes the ALTER TABLE option changing col.
	WriteModifyColumn(w *Writer, col types.ColumnDef) error
}
