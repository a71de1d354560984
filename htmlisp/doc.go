// Package htmlisp parses HTMLisp, an S-expression markup for HTML, and
// renders the parsed tree back to HTML text, either compact or indented.
//
// Example:
//
//	(div (class "greeting") "Hello, " (b "world") "!")
//
// compiles to:
//
//	<div class="greeting">Hello, <b>world</b>!</div>
//
// Grammar:
//
//	<document>  :: <expr>* ;
//	<expr>      :: <text> | "(" <ident> <attribute>* <child>* ")" ;
//	<attribute> :: "(" <ident> <text> ")" | <ident> <text> ;
//	<child>     :: <expr> | <ident> ;
//	<text>      :: "\"" <any char except "\"">* "\"" ;
//	<ident>     :: <any char except whitespace, "(", ")", "\"">+ ;
//
// Whitespace between tokens is insignificant. Attribute recognition is
// positional: before the first child of a form, a nested pair form like
// (class "greeting") or a bare identifier followed by a literal is always
// an attribute, whatever its identifier — (div (p "x")) means
// <div p="x"></div>, not a nested <p>. The first item fitting neither
// shape starts the children, and from then on the same shapes parse as
// children, so (b "world") after some text is a <b> element. A grammar
// violation anywhere aborts the whole parse with a *SyntaxError carrying
// the position; there are no partial trees.
package htmlisp
