package arith

import (
	"unicode"
	"unicode/utf8"
)

type TokenType int

const EOF rune = 0

const (
	TokenEOF TokenType = iota
	TokenInteger
	TokenIdentifier

	TokenPlus
	TokenMinus
	TokenMulti
	TokenDiv
	TokenComma
	TokenOpenParentheses
	TokenCloseParentheses
)

var operatorTable = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMulti,
	'/': TokenDiv,
	',': TokenComma,
	'(': TokenOpenParentheses,
	')': TokenCloseParentheses,
}

var tokenNames = map[TokenType]string{
	TokenEOF:              "end of input",
	TokenInteger:          "integer",
	TokenIdentifier:       "identifier",
	TokenPlus:             "'+'",
	TokenMinus:            "'-'",
	TokenMulti:            "'*'",
	TokenDiv:              "'/'",
	TokenComma:            "','",
	TokenOpenParentheses:  "'('",
	TokenCloseParentheses: "')'",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return "unknown token"
}

// Token is a single lexical unit. Pos is the byte offset in the source where
// the token began. Value holds the digit run for TokenInteger, the collected
// text for TokenIdentifier, and the literal character otherwise.
type Token struct {
	Typ   TokenType
	Value string
	Pos   int
}

// Tokenizer produces tokens on demand. Once the source is exhausted every
// further call yields a TokenEOF token.
type Tokenizer interface {
	Next() (Token, error)
}

// Lexer reads tokens from an expression string. The zero value is not usable;
// construct with NewLexer.
type Lexer struct {
	input string
	pos   int
	err   error
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token, skipping whitespace silently. Once an error
// has been returned the lexer is stuck on it and every further call returns
// the same error.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}

	for {
		switch r := l.peek(); {
		case r == EOF:
			return Token{Typ: TokenEOF, Pos: l.pos}, nil
		case unicode.IsSpace(r):
			l.next()
			continue
		case isDigit(r):
			return l.lexInteger(), nil
		case isIdentStart(r):
			return l.lexIdentifier(), nil
		default:
			return l.lexOperator(r)
		}
	}
}

// Tokens drains the lexer, returning every remaining token up to and
// including the closing TokenEOF.
func (l *Lexer) Tokens() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
		if tok.Typ == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) lexInteger() Token {
	start := l.pos
	for isDigit(l.peek()) {
		l.next()
	}

	return Token{
		Typ:   TokenInteger,
		Value: l.input[start:l.pos],
		Pos:   start,
	}
}

func (l *Lexer) lexIdentifier() Token {
	start := l.pos
	for r := l.peek(); isIdentStart(r) || isDigit(r); r = l.peek() {
		l.next()
	}

	return Token{
		Typ:   TokenIdentifier,
		Value: l.input[start:l.pos],
		Pos:   start,
	}
}

func (l *Lexer) lexOperator(r rune) (Token, error) {
	typ, ok := operatorTable[r]
	if !ok {
		l.err = &LexError{Char: r, Pos: l.pos}
		return Token{}, l.err
	}

	pos := l.pos
	return Token{
		Typ:   typ,
		Value: string(l.next()),
		Pos:   pos,
	}, nil
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return EOF
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		return EOF
	}

	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size

	return r
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
