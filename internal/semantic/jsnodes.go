package semantic

import sitter "github.com/tree-sitter/go-tree-sitter"

// IsFunctionNode reports whether the node is any function literal or
// declaration form. The bare "function" kind covers older grammar
// revisions that used it for function expressions.
func IsFunctionNode(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind() {
	case "function_declaration", "function_expression", "function",
		"generator_function", "generator_function_declaration",
		"arrow_function", "method_definition":
		return true
	}
	return false
}

// IsClassNode reports whether the node is a class declaration or expression.
func IsClassNode(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind() {
	case "class_declaration", "class":
		return true
	}
	return false
}

// FunctionName returns the function literal's own name, if it has one.
func FunctionName(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	name := node.ChildByFieldName("name")
	if name == nil {
		return ""
	}
	text := string(source[name.StartByte():name.EndByte()])
	return text
}

// FunctionBody returns the body of a function-like node. Arrow functions
// may have an expression body instead of a statement block.
func FunctionBody(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	return node.ChildByFieldName("body")
}
