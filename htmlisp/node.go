package htmlisp

// A NodeType is the type of a Node.
type NodeType uint32

const (
	// DocumentNode is the root of a parsed document. Only its Children are
	// meaningful.
	DocumentNode NodeType = iota
	// ElementNode is a tag with attributes and children, like (div ...).
	ElementNode
	// TextNode is a raw text segment. The text is stored unescaped; the
	// renderer escapes it on output.
	TextNode
)

// An Attribute is a single key="value" pair on an element. Attributes keep
// their source order, and duplicate keys are kept as separate entries.
type Attribute struct {
	Key string
	Val string
}

// A Node is one unit of the document tree: the document root, an element or
// a text segment. For an ElementNode, Data is the tag name; for a TextNode
// it is the text content. Children are owned by their parent and the tree
// is never mutated after parsing.
type Node struct {
	Type     NodeType
	Data     string
	Attr     []Attribute
	Children []*Node
}

// A Document is the root node produced by one parse. Its children are the
// top-level expressions of the source, in order.
type Document = Node

// NewElement returns an ElementNode with the given tag name. Used by the
// parser and convenient for building trees by hand in tests.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, Data: tag}
}

// NewText returns a TextNode holding text.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Data: text}
}

// AppendChild adds child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// SetAttr appends a key="value" attribute, keeping insertion order.
func (n *Node) SetAttr(key, val string) {
	n.Attr = append(n.Attr, Attribute{Key: key, Val: val})
}
