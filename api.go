// Package sqltree builds SQL statements as trees and renders them for a
// chosen dialect.
//
// Statements are assembled with fluent builders. Nothing is written as SQL
// text until a dialect renderer is applied, which produces the statement with
// placeholders plus the values to bind, in placeholder order.
//
// # Basic Usage
//
//	import "github.com/zoobzio/sqltree/postgres"
//
//	query := sqltree.Select("id", "name").
//		From("users").
//		Where(sqltree.Col("age").Gte(18)).
//		OrderBy("name", sqltree.Asc).
//		Limit(10)
//
//	result, err := query.Render(postgres.New())
//	// result.SQL:  SELECT "id", "name" FROM "users" WHERE "age" >= $1 ORDER BY "name" ASC LIMIT 10
//	// result.Args: [BigInt(18)]
//
// # Dialects
//
// Renderers live in their own packages: postgres (and CockroachDB), mysql,
// mariadb, sqlite and mssql. A statement that uses a feature the dialect
// lacks fails with an UnsupportedFeatureError rather than rendering
// something the database would reject.
//
// # Schema-Validated Usage
//
// A Schema built from a DBML project hands out table and column references
// that are checked against the schema:
//
//	schema, err := sqltree.NewSchema(project)
//	users := schema.T("users")
//	email := schema.C("users", "email")
//
// # Identifiers
//
// Anywhere an identifier is accepted, a string or any fmt.Stringer works.
// Identifiers are always quoted; values are always bound unless a statement
// is rendered with RenderInline.
package sqltree

import "github.com/zoobzio/sqltree/internal/types"

// Iden names a table, column, index or schema. Any fmt.Stringer qualifies.
type Iden = types.Iden

// Name is a plain string identifier.
type Name = types.Name

// Node is a raw expression tree node, for callers that build trees directly.
type Node = types.Expr

// Statement is any renderable statement tree.
type Statement = types.Statement

// QueryResult contains the rendered SQL and the values to bind.
type QueryResult = types.QueryResult

// TableRef names a table, optionally schema-qualified and aliased.
type TableRef = types.TableRef

// Statement trees, re-exported for callers that inspect a built statement.
type (
	SelectStatement      = types.SelectStatement
	InsertStatement      = types.InsertStatement
	UpdateStatement      = types.UpdateStatement
	DeleteStatement      = types.DeleteStatement
	CreateTableStatement = types.CreateTableStatement
	AlterTableStatement  = types.AlterTableStatement
	DropTableStatement   = types.DropTableStatement
	CreateIndexStatement = types.CreateIndexStatement
	DropIndexStatement   = types.DropIndexStatement
)

// Order is a sort direction.
type Order = types.Order

const (
	Asc  = types.Asc
	Desc = types.Desc
)

// NullsOrder places NULLs before or after other values.
type NullsOrder = types.NullsOrder

const (
	NullsDefault = types.NullsDefault
	NullsFirst   = types.NullsFirst
	NullsLast    = types.NullsLast
)

// JoinKind selects the join flavour.
type JoinKind = types.JoinKind

const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	FullJoin  = types.FullJoin
	CrossJoin = types.CrossJoin
)

// LockType is the strength of SELECT ... FOR.
type LockType = types.LockType

const (
	LockUpdate      = types.LockUpdate
	LockNoKeyUpdate = types.LockNoKeyUpdate
	LockShare       = types.LockShare
	LockKeyShare    = types.LockKeyShare
)

// LockBehavior decides what happens when a row is already locked.
type LockBehavior = types.LockBehavior

const (
	LockWait       = types.LockWait
	LockNoWait     = types.LockNoWait
	LockSkipLocked = types.LockSkipLocked
)

// MaxDepth bounds expression and sub-query nesting.
const MaxDepth = types.MaxDepth

// TableAs references table name under alias.
func TableAs(name, alias string) TableRef {
	return TableRef{Name: Name(name), Alias: Name(alias)}
}

// SchemaTable references a schema-qualified table.
func SchemaTable(schema, name string) TableRef {
	return TableRef{Schema: Name(schema), Name: Name(name)}
}

// toTable accepts a TableRef, string or Iden.
func toTable(x any) (types.TableRef, error) {
	if t, ok := x.(types.TableRef); ok {
		return t, nil
	}
	id, err := toIden(x)
	if err != nil {
		return types.TableRef{}, err
	}
	return types.Table(id), nil
}
