package arith

// Expr is the interface implemented by every expression node. The set of
// implementations is closed: the unexported marker method keeps other
// packages from adding variants the evaluator does not know about.
type Expr interface {
	exprNode()
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
)

type UnaryOp string

const (
	UnaryPositive UnaryOp = "+"
	UnaryNegative UnaryOp = "-"
)

// IntegerLiteral is a base-10 integer constant.
type IntegerLiteral struct {
	Value int64
}

// BinaryExpr applies Operation to two fully populated operands. The parser
// never builds one with a missing side.
type BinaryExpr struct {
	Operation BinaryOp
	Op1       Expr
	Op2       Expr
}

// UnaryExpr applies a sign to its operand.
type UnaryExpr struct {
	Operation UnaryOp
	Operand   Expr
}

// FuncCall invokes a registry function by name with ordered arguments. Args
// may be empty.
type FuncCall struct {
	Name string
	Args []Expr
}

func (*IntegerLiteral) exprNode() {}
func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*FuncCall) exprNode()       {}
