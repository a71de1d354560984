package htmlisp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRenderCompact(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "concrete scenario",
			src:  `(div (class "greeting") "Hello, " (b "world") "!")`,
			want: `<div class="greeting">Hello, <b>world</b>!</div>`,
		},
		{
			name: "empty element",
			src:  `(br)`,
			want: `<br></br>`,
		},
		{
			name: "duplicate attributes in order",
			src:  `(div (class "a") (class "b"))`,
			want: `<div class="a" class="b"></div>`,
		},
		{
			name: "siblings without added whitespace",
			src:  `(p "a") (p "b")`,
			want: `<p>a</p><p>b</p>`,
		},
		{
			name: "text escaping",
			src:  `(p "1 < 2 & 2 > 1")`,
			want: `<p>1 &lt; 2 &amp; 2 &gt; 1</p>`,
		},
		{
			name: "leading pair form renders as attribute",
			src:  `(div (p "x"))`,
			want: `<div p="x"></div>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseString("test.htmlisp", tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Render())
		})
	}
}

func TestRenderAttrEscaping(t *testing.T) {
	n := elem("a", []Attribute{{Key: "title", Val: `say "hi" & <go>`}})

	got := n.Render()
	assert.Equal(t, `<a title="say &quot;hi&quot; &amp; &lt;go&gt;"></a>`, got)
	assert.NotContains(t, strings.TrimPrefix(strings.TrimSuffix(got, `"></a>`), `<a title="`), `"`)
}

func TestRenderPretty(t *testing.T) {
	doc, err := ParseString("test.htmlisp", `(div (class "greeting") "Hello, " (b "world") "!")`)
	require.NoError(t, err)

	// escaped strings, not a raw literal: the trailing space in "Hello, "
	// must survive editors that trim line ends
	want := "<div class=\"greeting\">\n" +
		"  Hello, \n" +
		"  <b>\n" +
		"    world\n" +
		"  </b>\n" +
		"  !\n" +
		"</div>\n"
	assert.Equal(t, want, doc.RenderPretty(0))
}

func TestRenderPrettyStartDepth(t *testing.T) {
	doc, err := ParseString("test.htmlisp", `(p "x")`)
	require.NoError(t, err)

	assert.Equal(t, "    <p>\n      x\n    </p>\n", doc.RenderPretty(2))
}

func TestRenderPrettyWidth(t *testing.T) {
	doc, err := ParseString("test.htmlisp", `(div "a" (p "x"))`)
	require.NoError(t, err)

	assert.Equal(t, "<div>\n    a\n    <p>\n        x\n    </p>\n</div>\n", doc.RenderPrettyWidth(0, 4))
}

// TestRenderPrettyIndentation checks the depth property: every opening tag
// is indented strictly deeper than its parent and each closing tag is
// aligned with its opening tag.
func TestRenderPrettyIndentation(t *testing.T) {
	doc, err := ParseString("test.htmlisp", `(html (body (div (p "deep" "er"))))`)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(doc.RenderPretty(0), "\n"), "\n")
	require.Len(t, lines, 10)

	indent := func(s string) int { return len(s) - len(strings.TrimLeft(s, " ")) }
	for i := 1; i < 5; i++ {
		assert.Greater(t, indent(lines[i]), indent(lines[i-1]), "line %d should be deeper than line %d", i, i-1)
	}
	// closing tags align with their opening tags
	assert.Equal(t, indent(lines[0]), indent(lines[9]))
	assert.Equal(t, indent(lines[1]), indent(lines[8]))
	assert.Equal(t, indent(lines[2]), indent(lines[7]))
	assert.Equal(t, indent(lines[3]), indent(lines[6]))
}

func TestRenderPrettyEscaping(t *testing.T) {
	doc, err := ParseString("test.htmlisp", `(p (title "a<b") "x & y")`)
	require.NoError(t, err)

	got := doc.RenderPretty(0)
	assert.Contains(t, got, `title="a&lt;b"`)
	assert.Contains(t, got, "x &amp; y")
	assert.NotContains(t, got, "x & y")
}

// TestRenderRoundTrip feeds a compact render through an HTML parser and
// checks that tag structure, attribute order and child order survive.
func TestRenderRoundTrip(t *testing.T) {
	orig := doc(elem("div", attrs("class", "greeting", "data-x", `1 "2" 3`),
		NewText("Hello, "),
		elem("b", nil, NewText("world")),
		NewText("! <&>"),
	))

	parsed, err := html.Parse(strings.NewReader(orig.Render()))
	require.NoError(t, err)

	body := findBody(parsed)
	require.NotNil(t, body)

	got := &Node{Type: DocumentNode}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		got.AppendChild(fromHTML(c))
	}
	assert.Equal(t, orig, got)
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func fromHTML(n *html.Node) *Node {
	if n.Type == html.TextNode {
		return NewText(n.Data)
	}
	out := NewElement(n.Data)
	for _, a := range n.Attr {
		out.SetAttr(a.Key, a.Val)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out.AppendChild(fromHTML(c))
	}
	return out
}
