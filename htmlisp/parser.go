package htmlisp

import "fmt"

// A SyntaxError describes a grammar violation, with the position of the
// token where parsing stopped. The whole parse is aborted on the first one;
// no partial tree is returned.
type SyntaxError struct {
	Filename string
	Line     int
	Column   int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Msg)
}

// A Parser consumes the token stream of one HTMLisp source and builds the
// document tree. Lexing and parsing are one fused pass: a tokenizer error
// surfaces as a *SyntaxError like any grammar violation.
type Parser struct {
	tk       *Tokenizer
	fileName string
}

// Parse parses a complete HTMLisp source into a Document. fileName is used
// only in error messages.
func Parse(fileName string, src []byte) (*Document, error) {
	p := &Parser{tk: NewTokenizer(src), fileName: fileName}
	return p.parseDocument()
}

// ParseString is Parse for a string source.
func ParseString(fileName, src string) (*Document, error) {
	return Parse(fileName, []byte(src))
}

func (p *Parser) syntaxError(tok Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Filename: p.fileName,
		Line:     tok.Line,
		Column:   tok.Col,
		Msg:      fmt.Sprintf(format, args...),
	}
}

// parseDocument parses zero or more top-level expressions until EOF.
func (p *Parser) parseDocument() (*Document, error) {
	doc := &Node{Type: DocumentNode}

	for {
		tok := p.tk.Next()
		switch tok.Type {
		case EOFToken:
			return doc, nil
		case TextToken:
			doc.AppendChild(NewText(tok.Data))
		case LeftParenToken:
			child, err := p.parseElement(tok)
			if err != nil {
				return nil, err
			}
			doc.AppendChild(child)
		case RightParenToken:
			return nil, p.syntaxError(tok, "unexpected ')'")
		case ErrorToken:
			return nil, p.syntaxError(tok, "%s", tok.Data)
		default:
			return nil, p.syntaxError(tok, "unexpected %q at top level", tok.Data)
		}
	}
}

// parseElement parses one parenthesized form. The opening paren has already
// been consumed and is passed in for error positions.
//
// The first token must be a bare identifier, the tag name. After it, while
// no child has been appended yet, two shapes are taken as attributes: a
// nested form holding exactly one identifier and one text literal, like
// (class "greeting"), and a bare identifier immediately followed by a text
// literal. The first token that fits neither shape starts the children; from
// then on every item is a child, so (b "world") after some text is a <b>
// element, not an attribute.
func (p *Parser) parseElement(open Token) (*Node, error) {
	tok := p.tk.Next()
	switch tok.Type {
	case IdentToken:
		// the tag name
	case TextToken:
		return nil, p.syntaxError(tok, "text literal %q cannot be a tag name", tok.Data)
	case RightParenToken:
		return nil, p.syntaxError(tok, "missing tag name")
	case EOFToken:
		return nil, p.syntaxError(open, "missing ')'")
	case ErrorToken:
		return nil, p.syntaxError(tok, "%s", tok.Data)
	default:
		return nil, p.syntaxError(tok, "expected tag name, got %q", tok.Data)
	}

	n := NewElement(tok.Data)
	for {
		tok = p.tk.Next()
		switch tok.Type {
		case RightParenToken:
			return n, nil
		case EOFToken:
			return nil, p.syntaxError(open, "missing ')'")
		case ErrorToken:
			return nil, p.syntaxError(tok, "%s", tok.Data)
		case TextToken:
			n.AppendChild(NewText(tok.Data))
		case IdentToken:
			if len(n.Children) == 0 && p.tk.Peek().Type == TextToken {
				val := p.tk.Next()
				n.SetAttr(tok.Data, val.Data)
				continue
			}
			n.AppendChild(NewText(tok.Data))
		case LeftParenToken:
			child, err := p.parseElement(tok)
			if err != nil {
				return nil, err
			}
			if key, val, ok := attrShape(child); ok && len(n.Children) == 0 {
				n.SetAttr(key, val)
				continue
			}
			n.AppendChild(child)
		default:
			return nil, p.syntaxError(tok, "unexpected %q", tok.Data)
		}
	}
}

// attrShape reports whether a parsed form looks like an attribute pair:
// a tag with no attributes of its own and exactly one text child, like
// (class "greeting").
func attrShape(n *Node) (key, val string, ok bool) {
	if len(n.Attr) != 0 || len(n.Children) != 1 {
		return "", "", false
	}
	child := n.Children[0]
	if child.Type != TextNode {
		return "", "", false
	}
	return n.Data, child.Data, true
}
