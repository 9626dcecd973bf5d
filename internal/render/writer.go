// Package render turns statement ASTs into SQL text and ordered bindings.
// Dialect packages supply a Dialect; the Writer does the traversal.
package render

import (
	"fmt"
	"strings"

	"github.com/zoobzio/sqltree/internal/types"
)

// Writer accumulates SQL text and bindings for one render call.
type Writer struct {
	d      Dialect
	caps   Capabilities
	sql    strings.Builder
	args   []types.Value
	depth  int
	inline bool
	upsert bool
}

func newWriter(d Dialect, inline bool) *Writer {
	return &Writer{d: d, caps: d.Capabilities(), inline: inline}
}

// Statement renders stmt with bound parameters.
func Statement(d Dialect, stmt types.Statement) (*types.QueryResult, error) {
	w := newWriter(d, false)
	if err := w.statement(stmt); err != nil {
		return nil, err
	}
	return &types.QueryResult{SQL: w.sql.String(), Args: w.args}, nil
}

// Inline renders stmt with every value written as a literal. The output is
// meant for logs and DDL scripts; bound rendering is the safe default.
func Inline(d Dialect, stmt types.Statement) (string, error) {
	w := newWriter(d, true)
	if err := w.statement(stmt); err != nil {
		return "", err
	}
	return w.sql.String(), nil
}

func (w *Writer) statement(stmt types.Statement) error {
	switch s := stmt.(type) {
	case *types.SelectStatement:
		return w.selectStatement(s)
	case *types.InsertStatement:
		return w.insertStatement(s)
	case *types.UpdateStatement:
		return w.updateStatement(s)
	case *types.DeleteStatement:
		return w.deleteStatement(s)
	case *types.CreateTableStatement:
		return w.createTable(s)
	case *types.AlterTableStatement:
		return w.alterTable(s)
	case *types.DropTableStatement:
		return w.dropTable(s)
	case *types.CreateIndexStatement:
		return w.createIndex(s)
	case *types.DropIndexStatement:
		return w.dropIndex(s)
	case nil:
		return Malformedf("nil statement")
	}
	return Malformedf("unknown statement type %T", stmt)
}

// Dialect returns the dialect being rendered.
func (w *Writer) Dialect() Dialect { return w.d }

// WriteString appends raw SQL.
func (w *Writer) WriteString(s string) {
	w.sql.WriteString(s)
}

// Bind writes v as a placeholder and records it, or as a literal in inline mode.
func (w *Writer) Bind(v types.Value) error {
	if w.inline {
		return w.literal(v)
	}
	w.args = append(w.args, v)
	w.sql.WriteString(w.d.Placeholder(len(w.args)))
	return nil
}

// Ident writes a quoted identifier.
func (w *Writer) Ident(id types.Iden) error {
	q, err := w.quote(id)
	if err != nil {
		return err
	}
	w.sql.WriteString(q)
	return nil
}

func (w *Writer) quote(id types.Iden) (string, error) {
	if id == nil {
		return "", InvalidIdentifierError{Reason: "missing"}
	}
	name := id.String()
	if name == "" {
		return "", InvalidIdentifierError{Name: name, Reason: "empty"}
	}
	if strings.IndexByte(name, 0) >= 0 {
		return "", InvalidIdentifierError{Name: name, Reason: "contains NUL byte"}
	}
	return w.d.QuoteIdentifier(name), nil
}

// Idents writes a comma-separated identifier list.
func (w *Writer) Idents(ids []types.Iden) error {
	for i, id := range ids {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		if err := w.Ident(id); err != nil {
			return err
		}
	}
	return nil
}

// Table writes a table reference: schema-qualified name or derived table,
// followed by its alias.
func (w *Writer) Table(t types.TableRef) error {
	switch {
	case t.SubQuery != nil:
		if t.Alias == nil {
			return Malformedf("derived table requires an alias")
		}
		if err := w.subQuery(t.SubQuery); err != nil {
			return err
		}
	case t.Name != nil:
		if t.Schema != nil {
			if err := w.Ident(t.Schema); err != nil {
				return err
			}
			w.sql.WriteByte('.')
		}
		if err := w.Ident(t.Name); err != nil {
			return err
		}
	default:
		return Malformedf("missing table")
	}
	if t.Alias != nil {
		w.sql.WriteString(" AS ")
		return w.Ident(t.Alias)
	}
	return nil
}

// Assignments writes "col = expr" pairs.
func (w *Writer) Assignments(as []types.Assignment) error {
	for i, a := range as {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		if err := w.Ident(a.Column); err != nil {
			return err
		}
		w.sql.WriteString(" = ")
		if err := w.Expr(a.Value); err != nil {
			return err
		}
	}
	return nil
}

// Condition writes a non-empty condition group.
func (w *Writer) Condition(g types.ConditionGroup) error {
	return w.condition(g)
}

// Upsert reports whether an upsert clause is being written; the dialect hook
// is called with it set.
func (w *Writer) Upsert() bool { return w.upsert }

func (w *Writer) enter() error {
	w.depth++
	if w.depth > types.MaxDepth {
		return Malformedf("nesting exceeds %d levels", types.MaxDepth)
	}
	return nil
}

func (w *Writer) leave() { w.depth-- }

func (w *Writer) unsupported(feature string, hint ...string) error {
	return NewUnsupportedFeatureError(w.d.Name(), feature, hint...)
}

func (w *Writer) writef(format string, args ...any) {
	fmt.Fprintf(&w.sql, format, args...)
}
