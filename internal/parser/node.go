// # internal/parser/node.go
package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Location is a 1-based source position.
type Location struct {
	File   string
	Line   int
	Column int
}

// Span is the source range of a node, byte offsets plus the start location.
type Span struct {
	StartByte uint
	EndByte   uint
	Start     Location
	End       Location
}

func NodeSpan(node *sitter.Node, file string) Span {
	if node == nil {
		return Span{}
	}
	start := node.StartPosition()
	end := node.EndPosition()
	return Span{
		StartByte: node.StartByte(),
		EndByte:   node.EndByte(),
		Start: Location{
			File:   file,
			Line:   int(start.Row) + 1,
			Column: int(start.Column) + 1,
		},
		End: Location{
			File:   file,
			Line:   int(end.Row) + 1,
			Column: int(end.Column) + 1,
		},
	}
}

// NodeText returns the source bytes spanned by a node as a trimmed string.
func NodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start := node.StartByte()
	end := node.EndByte()
	if start >= end || end > uint(len(source)) {
		return ""
	}
	return strings.TrimSpace(string(source[start:end]))
}

// NamedChildren collects the named (non-token) children of a node.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := node.NamedChildCount()
	children := make([]*sitter.Node, 0, count)
	for i := uint(0); i < count; i++ {
		if ch := node.NamedChild(i); ch != nil {
			children = append(children, ch)
		}
	}
	return children
}

// CallArguments returns the argument expressions of a call_expression,
// skipping punctuation tokens.
func CallArguments(call *sitter.Node) []*sitter.Node {
	if call == nil {
		return nil
	}
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	return NamedChildren(args)
}

// HasChildOfKind reports whether any direct child (token or named) has the
// given kind. Used for keyword children such as "static" or "default".
func HasChildOfKind(node *sitter.Node, kind string) bool {
	if node == nil {
		return false
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		ch := node.Child(i)
		if ch != nil && ch.Kind() == kind {
			return true
		}
	}
	return false
}

// Unparenthesize strips nested parenthesized_expression wrappers.
func Unparenthesize(node *sitter.Node) *sitter.Node {
	for node != nil && node.Kind() == "parenthesized_expression" {
		inner := node.NamedChild(0)
		if inner == nil {
			return node
		}
		node = inner
	}
	return node
}

// StringLiteralValue returns the unquoted value of a string node, or the
// node's own text for identifier-like keys. Property keys appear both ways
// in object literals ('displayName' vs displayName).
func StringLiteralValue(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	text := NodeText(node, source)
	if node.Kind() == "string" {
		text = strings.Trim(text, `"'`+"`")
	}
	return text
}
