package types

// Statement is any renderable statement AST.
type Statement interface {
	isStatement()
}

// SelectExpr is a projected expression with an optional alias.
type SelectExpr struct {
	Expr  Expr
	Alias Iden
}

// JoinKind selects the join flavour.
type JoinKind uint8

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
)

func (k JoinKind) String() string {
	switch k {
	case LeftJoin:
		return "LEFT JOIN"
	case RightJoin:
		return "RIGHT JOIN"
	case FullJoin:
		return "FULL OUTER JOIN"
	case CrossJoin:
		return "CROSS JOIN"
	}
	return "INNER JOIN"
}

type Join struct {
	Table TableRef
	On    ConditionGroup
	Kind  JoinKind
}

// Order is a sort direction.
type Order uint8

const (
	Asc Order = iota
	Desc
)

func (o Order) String() string {
	if o == Desc {
		return "DESC"
	}
	return "ASC"
}

// NullsOrder places NULLs first or last. NullsDefault leaves it to the database.
type NullsOrder uint8

const (
	NullsDefault NullsOrder = iota
	NullsFirst
	NullsLast
)

type OrderExpr struct {
	Expr  Expr
	Order Order
	Nulls NullsOrder
}

// LockType is the row-lock strength of SELECT ... FOR.
type LockType uint8

const (
	LockUpdate LockType = iota
	LockNoKeyUpdate
	LockShare
	LockKeyShare
)

func (l LockType) String() string {
	switch l {
	case LockNoKeyUpdate:
		return "NO KEY UPDATE"
	case LockShare:
		return "SHARE"
	case LockKeyShare:
		return "KEY SHARE"
	}
	return "UPDATE"
}

// LockBehavior decides what happens when a row is already locked.
type LockBehavior uint8

const (
	LockWait LockBehavior = iota
	LockNoWait
	LockSkipLocked
)

type Lock struct {
	Of       []Iden
	Type     LockType
	Behavior LockBehavior
}

// Union appends another SELECT with UNION [ALL].
type Union struct {
	Query *SelectStatement
	All   bool
}

// SelectStatement is a SELECT query.
type SelectStatement struct {
	From     *TableRef
	Limit    *uint64
	Offset   *uint64
	Lock     *Lock
	Columns  []SelectExpr
	Joins    []Join
	GroupBy  []Expr
	OrderBy  []OrderExpr
	Unions   []Union
	Where    ConditionGroup
	Having   ConditionGroup
	Distinct bool
}

func (*SelectStatement) isStatement() {}
