package types

// BinOper is a binary operator.
type BinOper uint8

const (
	OpAnd BinOper = iota + 1
	OpOr
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpLike
	OpNotLike
	OpIn
	OpNotIn
	OpIs
	OpIsNot
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

var binOperText = map[BinOper]string{
	OpAnd:     "AND",
	OpOr:      "OR",
	OpEq:      "=",
	OpNe:      "<>",
	OpLt:      "<",
	OpLe:      "<=",
	OpGt:      ">",
	OpGe:      ">=",
	OpLike:    "LIKE",
	OpNotLike: "NOT LIKE",
	OpIn:      "IN",
	OpNotIn:   "NOT IN",
	OpIs:      "IS",
	OpIsNot:   "IS NOT",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpMod:     "%",
}

func (op BinOper) String() string { return binOperText[op] }

// Binding strength. Higher binds tighter.
const (
	PrecOr         = 1
	PrecAnd        = 2
	PrecNot        = 3
	PrecComparison = 4
	PrecAdditive   = 5
	PrecMul        = 6
	PrecUnary      = 7
	// PrecAtom applies to anything that never needs parentheses.
	PrecAtom = 8
)

// Precedence returns the binding strength of op.
func (op BinOper) Precedence() int {
	switch op {
	case OpOr:
		return PrecOr
	case OpAnd:
		return PrecAnd
	case OpAdd, OpSub:
		return PrecAdditive
	case OpMul, OpDiv, OpMod:
		return PrecMul
	}
	return PrecComparison
}

// Associative reports whether (a op b) op c == a op (b op c).
func (op BinOper) Associative() bool {
	switch op {
	case OpAnd, OpOr, OpAdd, OpMul:
		return true
	}
	return false
}

// UnOper is a prefix operator.
type UnOper uint8

const (
	OpNot UnOper = iota + 1
	OpNeg
	OpExists
	OpNotExists
)

func (op UnOper) String() string {
	switch op {
	case OpNot:
		return "NOT"
	case OpNeg:
		return "-"
	case OpExists:
		return "EXISTS"
	case OpNotExists:
		return "NOT EXISTS"
	}
	return ""
}

// Precedence returns the binding strength of op.
func (op UnOper) Precedence() int {
	switch op {
	case OpNot:
		return PrecNot
	case OpNeg:
		return PrecUnary
	}
	return PrecAtom
}

// LogicOperator joins the members of a condition group.
type LogicOperator uint8

const (
	LogicAnd LogicOperator = iota
	LogicOr
)

func (l LogicOperator) String() string {
	if l == LogicOr {
		return "OR"
	}
	return "AND"
}

// Oper returns the binary operator matching l.
func (l LogicOperator) Oper() BinOper {
	if l == LogicOr {
		return OpOr
	}
	return OpAnd
}
