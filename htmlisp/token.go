package htmlisp

import "strconv"

// A TokenType is the type of a Token.
type TokenType uint32

const (
	// ErrorToken means that an error occurred during tokenization.
	ErrorToken TokenType = iota
	// LeftParenToken is the '(' that opens a form.
	LeftParenToken
	// RightParenToken is the ')' that closes a form.
	RightParenToken
	// TextToken is a double-quoted text literal. Data holds the content
	// without the quotes. There are no escape sequences, so a literal can
	// not contain a '"'.
	TextToken
	// IdentToken is a bare identifier: a maximal run of characters that are
	// not whitespace, parentheses or quotes. Used for tag names and for the
	// key part of attributes.
	IdentToken
	// EOFToken means the end of the source was reached.
	EOFToken
)

// String returns a string representation of the TokenType.
func (t TokenType) String() string {
	switch t {
	case ErrorToken:
		return "Error"
	case LeftParenToken:
		return "LeftParen"
	case RightParenToken:
		return "RightParen"
	case TextToken:
		return "Text"
	case IdentToken:
		return "Ident"
	case EOFToken:
		return "EOF"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// A Token is one lexical unit of HTMLisp source, with the position where it
// started. For TextToken and IdentToken, Data holds the token content; for
// ErrorToken it holds the error message.
type Token struct {
	Type TokenType
	Data string
	Line int
	Col  int
}

// A Tokenizer walks the raw source and produces Tokens on demand. It skips
// whitespace between tokens and supports one token of lookahead, which is
// all the parser needs.
type Tokenizer struct {
	src []byte

	// current read position and its line/column, both 1-based
	pos  int
	line int
	col  int

	// buffered token for Peek
	peeked *Token
}

// NewTokenizer returns a Tokenizer reading from src.
func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (tk *Tokenizer) Peek() Token {
	if tk.peeked == nil {
		t := tk.scan()
		tk.peeked = &t
	}
	return *tk.peeked
}

// Next consumes and returns the next token. After EOFToken or ErrorToken it
// keeps returning the same token.
func (tk *Tokenizer) Next() Token {
	if tk.peeked != nil {
		t := *tk.peeked
		if t.Type != EOFToken && t.Type != ErrorToken {
			tk.peeked = nil
		}
		return t
	}
	t := tk.scan()
	if t.Type == EOFToken || t.Type == ErrorToken {
		tk.peeked = &t
	}
	return t
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentChar(c byte) bool {
	return !isSpace(c) && c != '(' && c != ')' && c != '"'
}

// advance consumes one byte, keeping the line/column counters in sync.
func (tk *Tokenizer) advance() {
	if tk.src[tk.pos] == '\n' {
		tk.line++
		tk.col = 1
	} else {
		tk.col++
	}
	tk.pos++
}

func (tk *Tokenizer) skipWhitespace() {
	for tk.pos < len(tk.src) && isSpace(tk.src[tk.pos]) {
		tk.advance()
	}
}

func (tk *Tokenizer) scan() Token {
	tk.skipWhitespace()

	if tk.pos >= len(tk.src) {
		return Token{Type: EOFToken, Line: tk.line, Col: tk.col}
	}

	line, col := tk.line, tk.col
	switch c := tk.src[tk.pos]; c {
	case '(':
		tk.advance()
		return Token{Type: LeftParenToken, Data: "(", Line: line, Col: col}
	case ')':
		tk.advance()
		return Token{Type: RightParenToken, Data: ")", Line: line, Col: col}
	case '"':
		return tk.scanText()
	default:
		return tk.scanIdent()
	}
}

// scanText consumes a quoted literal. The opening quote has already been
// seen at the current position. Newlines inside the literal are kept as-is.
func (tk *Tokenizer) scanText() Token {
	line, col := tk.line, tk.col
	tk.advance() // opening quote

	start := tk.pos
	for tk.pos < len(tk.src) {
		if tk.src[tk.pos] == '"' {
			data := string(tk.src[start:tk.pos])
			tk.advance() // closing quote
			return Token{Type: TextToken, Data: data, Line: line, Col: col}
		}
		tk.advance()
	}

	return Token{Type: ErrorToken, Data: "unterminated text literal", Line: line, Col: col}
}

func (tk *Tokenizer) scanIdent() Token {
	line, col := tk.line, tk.col

	start := tk.pos
	for tk.pos < len(tk.src) && isIdentChar(tk.src[tk.pos]) {
		tk.advance()
	}
	return Token{Type: IdentToken, Data: string(tk.src[start:tk.pos]), Line: line, Col: col}
}
