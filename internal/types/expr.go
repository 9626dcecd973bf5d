package types

// MaxDepth bounds expression and sub-query nesting during rendering.
const MaxDepth = 256

// Expr is a node of the expression tree.
type Expr interface {
	isExpr()
}

// ColumnExpr references a column, optionally table-qualified. A nil Name is *.
type ColumnExpr struct {
	Table Iden
	Name  Iden
}

// ValueExpr is a literal.
type ValueExpr struct {
	Value Value
}

// ValuesExpr is a literal list, used on the right of IN.
type ValuesExpr struct {
	Values []Value
}

type BinaryExpr struct {
	Left  Expr
	Right Expr
	Op    BinOper
}

type UnaryExpr struct {
	Operand Expr
	Op      UnOper
}

// BetweenExpr is expr [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	Expr    Expr
	Low     Expr
	High    Expr
	Negated bool
}

// Function identifies a SQL function. Dialects may rename standard ones.
type Function string

const (
	FuncCount      Function = "COUNT"
	FuncSum        Function = "SUM"
	FuncAvg        Function = "AVG"
	FuncMin        Function = "MIN"
	FuncMax        Function = "MAX"
	FuncCoalesce   Function = "COALESCE"
	FuncLower      Function = "LOWER"
	FuncUpper      Function = "UPPER"
	FuncCharLength Function = "CHAR_LENGTH"
	FuncAbs        Function = "ABS"
	FuncRandom     Function = "RANDOM"
	FuncIfNull     Function = "IFNULL"
)

// FuncExpr is a function call. Functions outside the standard set are
// rendered by name as given.
type FuncExpr struct {
	Func     Function
	Args     []Expr
	Distinct bool
}

// SubQueryExpr is a parenthesized SELECT in expression position.
type SubQueryExpr struct {
	Query *SelectStatement
}

// TupleExpr is a parenthesized expression list.
type TupleExpr struct {
	Items []Expr
}

type WhenClause struct {
	Cond   Expr
	Result Expr
}

type CaseExpr struct {
	Else  Expr
	Whens []WhenClause
}

type CastExpr struct {
	Expr Expr
	Type ColumnType
}

// Keyword is a reserved word usable as an expression.
type Keyword uint8

const (
	KwNull Keyword = iota + 1
	KwCurrentTimestamp
	KwCurrentDate
	KwCurrentTime
	KwDefault
)

func (k Keyword) String() string {
	switch k {
	case KwNull:
		return "NULL"
	case KwCurrentTimestamp:
		return "CURRENT_TIMESTAMP"
	case KwCurrentDate:
		return "CURRENT_DATE"
	case KwCurrentTime:
		return "CURRENT_TIME"
	case KwDefault:
		return "DEFAULT"
	}
	return ""
}

type KeywordExpr struct {
	Keyword Keyword
}

// CustomExpr is raw SQL. Each '?' in SQL is replaced by the next element of
// Values; '??' produces a literal '?'.
type CustomExpr struct {
	SQL    string
	Values []Value
}

// ExcludedExpr references the value a conflicting INSERT tried to write.
// Only valid inside an upsert assignment.
type ExcludedExpr struct {
	Column Iden
}

// ErrorExpr carries a construction error to the renderer.
type ErrorExpr struct {
	Err error
}

func (ColumnExpr) isExpr()     {}
func (ValueExpr) isExpr()      {}
func (ValuesExpr) isExpr()     {}
func (BinaryExpr) isExpr()     {}
func (UnaryExpr) isExpr()      {}
func (BetweenExpr) isExpr()    {}
func (FuncExpr) isExpr()       {}
func (SubQueryExpr) isExpr()   {}
func (TupleExpr) isExpr()      {}
func (CaseExpr) isExpr()       {}
func (CastExpr) isExpr()       {}
func (KeywordExpr) isExpr()    {}
func (CustomExpr) isExpr()     {}
func (ExcludedExpr) isExpr()   {}
func (ErrorExpr) isExpr()      {}
func (ConditionGroup) isExpr() {}

// Precedence returns the binding strength of e as a whole, used to decide
// whether e needs parentheses inside a parent expression.
func Precedence(e Expr) int {
	switch n := e.(type) {
	case BinaryExpr:
		return n.Op.Precedence()
	case UnaryExpr:
		return n.Op.Precedence()
	case BetweenExpr:
		return PrecComparison
	case ConditionGroup:
		members := n.Effective()
		switch {
		case len(members) == 0:
			return PrecAtom
		case n.Negated:
			return PrecNot
		case len(members) == 1:
			return Precedence(members[0])
		}
		return n.Logic.Oper().Precedence()
	}
	return PrecAtom
}
