package types

// Assignment sets a column to an expression.
type Assignment struct {
	Column Iden
	Value  Expr
}

// ConflictAction is the upsert resolution.
type ConflictAction uint8

const (
	DoNothing ConflictAction = iota
	DoUpdate
)

// OnConflict describes an upsert. Dialects that infer the conflict target
// ignore Targets.
type OnConflict struct {
	Targets []Iden
	Updates []Assignment
	Action  ConflictAction
}

// InsertStatement is an INSERT. Exactly one of Rows and Select supplies the
// data.
type InsertStatement struct {
	Select     *SelectStatement
	OnConflict *OnConflict
	Table      TableRef
	Columns    []Iden
	Rows       [][]Expr
	Returning  []SelectExpr
}

// UpdateStatement is an UPDATE. OrderBy and Limit are MySQL/SQLite extensions.
type UpdateStatement struct {
	Limit     *uint64
	Table     TableRef
	Values    []Assignment
	OrderBy   []OrderExpr
	Returning []SelectExpr
	Where     ConditionGroup
}

// DeleteStatement is a DELETE.
type DeleteStatement struct {
	Limit     *uint64
	Table     TableRef
	OrderBy   []OrderExpr
	Returning []SelectExpr
	Where     ConditionGroup
}

func (*InsertStatement) isStatement() {}
func (*UpdateStatement) isStatement() {}
func (*DeleteStatement) isStatement() {}
