package htmlisp

import "strings"

// DefaultIndentWidth is the number of spaces per nesting level used by
// RenderPretty.
const DefaultIndentWidth = 2

// Render serializes the tree compactly: no whitespace is added between
// siblings or around nesting. Text is escaped ('&', '<', '>') and attribute
// values additionally escape '"'.
func (n *Node) Render() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	switch n.Type {
	case DocumentNode:
		for _, c := range n.Children {
			c.render(sb)
		}
	case TextNode:
		escapeText(sb, n.Data)
	case ElementNode:
		n.renderOpenTag(sb)
		for _, c := range n.Children {
			c.render(sb)
		}
		n.renderCloseTag(sb)
	}
}

// RenderPretty serializes the tree with one node per line, indented
// DefaultIndentWidth spaces per nesting level. depth is the level of the
// top-level nodes, normally 0. The closing tag of an element is aligned
// with its opening tag; an element without children stays on one line.
func (n *Node) RenderPretty(depth int) string {
	return n.RenderPrettyWidth(depth, DefaultIndentWidth)
}

// RenderPrettyWidth is RenderPretty with an explicit indent width.
func (n *Node) RenderPrettyWidth(depth, width int) string {
	if width < 0 {
		width = DefaultIndentWidth
	}
	var sb strings.Builder
	n.renderPretty(&sb, depth, width)
	return sb.String()
}

func (n *Node) renderPretty(sb *strings.Builder, depth, width int) {
	switch n.Type {
	case DocumentNode:
		for _, c := range n.Children {
			c.renderPretty(sb, depth, width)
		}
	case TextNode:
		sb.WriteString(strings.Repeat(" ", depth*width))
		escapeText(sb, n.Data)
		sb.WriteByte('\n')
	case ElementNode:
		pad := strings.Repeat(" ", depth*width)
		sb.WriteString(pad)
		n.renderOpenTag(sb)
		if len(n.Children) == 0 {
			n.renderCloseTag(sb)
			sb.WriteByte('\n')
			return
		}
		sb.WriteByte('\n')
		for _, c := range n.Children {
			c.renderPretty(sb, depth+1, width)
		}
		sb.WriteString(pad)
		n.renderCloseTag(sb)
		sb.WriteByte('\n')
	}
}

func (n *Node) renderOpenTag(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		escapeAttr(sb, a.Val)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
}

func (n *Node) renderCloseTag(sb *strings.Builder) {
	sb.WriteString("</")
	sb.WriteString(n.Data)
	sb.WriteByte('>')
}

const textEscapedChars = "&<>"
const attrEscapedChars = `&<>"`

// escapeText writes s with '&', '<' and '>' replaced by entities.
func escapeText(sb *strings.Builder, s string) {
	escape(sb, s, textEscapedChars)
}

// escapeAttr writes s like escapeText but also escapes '"', so the result
// is safe inside a double-quoted attribute value.
func escapeAttr(sb *strings.Builder, s string) {
	escape(sb, s, attrEscapedChars)
}

func escape(sb *strings.Builder, s, chars string) {
	for {
		i := strings.IndexAny(s, chars)
		if i < 0 {
			break
		}
		sb.WriteString(s[:i])
		switch s[i] {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		}
		s = s[i+1:]
	}
	sb.WriteString(s)
}
