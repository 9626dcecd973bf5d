package sqltree

import "github.com/zoobzio/sqltree/internal/types"

// Renderer converts statement trees to dialect-specific SQL. The dialect
// packages (postgres, mysql, mariadb, sqlite, mssql) provide implementations.
type Renderer interface {
	// Render converts a statement to SQL with placeholders and its bindings.
	Render(stmt types.Statement) (*types.QueryResult, error)

	// RenderInline converts a statement to SQL with every value written as a
	// literal. Use it for logging and DDL scripts, not for executing
	// untrusted input.
	RenderInline(stmt types.Statement) (string, error)
}

func renderStmt(r Renderer, stmt types.Statement, err error) (*QueryResult, error) {
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, MalformedError{Reason: "nil renderer"}
	}
	return r.Render(stmt)
}

func renderStmtInline(r Renderer, stmt types.Statement, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", MalformedError{Reason: "nil renderer"}
	}
	return r.RenderInline(stmt)
}

func orderExpr(x any, order Order, nulls NullsOrder) types.OrderExpr {
	return types.OrderExpr{Expr: toColumn(x), Order: order, Nulls: nulls}
}

func selectExprs(cols []any) []types.SelectExpr {
	out := make([]types.SelectExpr, len(cols))
	for i, c := range cols {
		out[i] = types.SelectExpr{Expr: toColumn(c)}
	}
	return out
}

func ptr[T any](v T) *T { return &v }
