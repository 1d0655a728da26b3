package arith

import (
	"fmt"
	"strconv"
)

// Parser builds exactly one expression tree from a token stream.
//
// Grammar, lowest precedence first:
//
//	expr    := multiplicative ( ('+' | '-') multiplicative )*
//	mult    := unary ( ('*' | '/') unary )*
//	unary   := ('+' | '-') unary | primary
//	primary := INTEGER | IDENTIFIER '(' args ')' | '(' expr ')'
//	args    := ( expr (',' expr)* )?
//
// Chained operators of equal precedence fold left, so "10 - 3 - 2" is
// (10-3)-2.
type Parser struct {
	tokenizer Tokenizer
	buf       *Token
}

func NewParser(tokenizer Tokenizer) *Parser {
	return &Parser{tokenizer: tokenizer}
}

// Parse runs a parser over a fresh lexer for input.
func Parse(input string) (Expr, error) {
	return NewParser(NewLexer(input)).Run()
}

// Run parses one expression and requires the input to end there; trailing
// tokens are a ParseError.
func (p *Parser) Run() (Expr, error) {
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenEOF); err != nil {
		return nil, err
	}

	return expr, nil
}

func (p *Parser) peek() (Token, error) {
	if p.buf == nil {
		tok, err := p.tokenizer.Next()
		if err != nil {
			return Token{}, err
		}

		p.buf = &tok
	}

	return *p.buf, nil
}

func (p *Parser) next() (Token, error) {
	if p.buf != nil {
		tok := *p.buf
		p.buf = nil

		return tok, nil
	}

	return p.tokenizer.Next()
}

// advance discards the buffered token. Only valid straight after a
// successful peek.
func (p *Parser) advance() Token {
	tok := *p.buf
	p.buf = nil

	return tok
}

func (p *Parser) expect(typ TokenType) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}

	if tok.Typ != typ {
		return Token{}, &ParseError{Pos: tok.Pos, Expected: typ, Got: tok.Typ}
	}

	return tok, nil
}

func (p *Parser) expr() (Expr, error) {
	return p.additiveExpr()
}

func (p *Parser) additiveExpr() (Expr, error) {
	lhs, err := p.multiplicativeExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		if tok.Typ != TokenPlus && tok.Typ != TokenMinus {
			return lhs, nil
		}

		op := p.advance()
		rhs, err := p.multiplicativeExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(op.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}
}

func (p *Parser) multiplicativeExpr() (Expr, error) {
	lhs, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		if tok.Typ != TokenMulti && tok.Typ != TokenDiv {
			return lhs, nil
		}

		op := p.advance()
		rhs, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(op.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}
}

func (p *Parser) unaryExpr() (Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Typ == TokenPlus || tok.Typ == TokenMinus {
		op := p.advance()

		// Recurse on the unary level itself, so "--5" nests as -(-5)
		operand, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{
			Operation: UnaryOp(op.Value),
			Operand:   operand,
		}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Typ {
	case TokenOpenParentheses:
		return p.parenthesisedExpression()
	case TokenIdentifier:
		return p.funcCall()
	default:
		return p.literal()
	}
}

func (p *Parser) parenthesisedExpression() (Expr, error) {
	if _, err := p.expect(TokenOpenParentheses); err != nil {
		return nil, err
	}

	expr, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenCloseParentheses); err != nil {
		return nil, err
	}

	return expr, nil
}

func (p *Parser) funcCall() (Expr, error) {
	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Typ != TokenOpenParentheses {
		return nil, &ParseError{
			Pos: name.Pos,
			Msg: fmt.Sprintf("bare identifier '%s': variables are not supported", name.Value),
		}
	}
	p.advance()

	var args []Expr
	tok, err = p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Typ != TokenCloseParentheses {
		for {
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			tok, err := p.peek()
			if err != nil {
				return nil, err
			}

			if tok.Typ != TokenComma {
				break
			}

			p.advance()
		}
	}

	if _, err := p.expect(TokenCloseParentheses); err != nil {
		return nil, err
	}

	return &FuncCall{
		Name: name.Value,
		Args: args,
	}, nil
}

func (p *Parser) literal() (Expr, error) {
	tok, err := p.expect(TokenInteger)
	if err != nil {
		return nil, err
	}

	value, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return nil, &ParseError{
			Pos: tok.Pos,
			Msg: fmt.Sprintf("integer literal '%s' out of range", tok.Value),
		}
	}

	return &IntegerLiteral{Value: value}, nil
}
