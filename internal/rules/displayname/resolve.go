package displayname

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"displaylint/internal/parser"
)

// resolveName canonicalizes an identifier or member chain into a dotted
// name, e.g. React.createClass. Computed properties and anything that is
// not a plain identifier chain do not resolve.
func resolveName(node *sitter.Node, source []byte) (string, bool) {
	if node == nil {
		return "", false
	}
	switch node.Kind() {
	case "identifier":
		return parser.NodeText(node, source), true
	case "member_expression":
		object := node.ChildByFieldName("object")
		base, ok := resolveName(object, source)
		if !ok {
			return "", false
		}
		property := node.ChildByFieldName("property")
		if property == nil || property.Kind() != "property_identifier" {
			return "", false
		}
		return base + "." + parser.NodeText(property, source), true
	}
	return "", false
}

// calleeName resolves the callee of a call expression.
func calleeName(call *sitter.Node, source []byte) (string, bool) {
	if call == nil || call.Kind() != "call_expression" {
		return "", false
	}
	return resolveName(call.ChildByFieldName("function"), source)
}
