package displayname

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"displaylint/internal/parser"
	"displaylint/internal/semantic"
)

// maxDelegationDepth bounds the `return this._renderHello()` helper chain.
// Mutually recursive helpers are additionally cut off by the visited set.
const maxDelegationDepth = 4

// renderDetector decides, syntactically, whether a function produces a UI
// element on at least one of its own return paths. It never descends into
// nested function literals and performs no flow analysis.
type renderDetector struct {
	info    *semantic.FileInfo
	pragma  string
	visited map[uint]bool
}

func newRenderDetector(info *semantic.FileInfo, pragma string) *renderDetector {
	return &renderDetector{
		info:    info,
		pragma:  pragma,
		visited: make(map[uint]bool),
	}
}

func (d *renderDetector) isRenderReturning(fn *sitter.Node, depth int) bool {
	if fn == nil || depth > maxDelegationDepth {
		return false
	}
	if d.visited[fn.StartByte()] {
		return false
	}
	d.visited[fn.StartByte()] = true

	body := semantic.FunctionBody(fn)
	if body == nil {
		return false
	}
	if body.Kind() != "statement_block" {
		// Arrow expression body is itself the returned value.
		return d.yieldsRender(body, fn, depth)
	}
	return d.scanForReturns(body, fn, depth)
}

// scanForReturns walks statements of a function body looking for a render
// return, skipping nested function and class literals.
func (d *renderDetector) scanForReturns(node *sitter.Node, owner *sitter.Node, depth int) bool {
	for _, ch := range parser.NamedChildren(node) {
		if semantic.IsFunctionNode(ch) || semantic.IsClassNode(ch) {
			continue
		}
		if ch.Kind() == "return_statement" {
			if arg := ch.NamedChild(0); arg != nil && d.yieldsRender(arg, owner, depth) {
				return true
			}
			continue
		}
		if d.scanForReturns(ch, owner, depth) {
			return true
		}
	}
	return false
}

func (d *renderDetector) yieldsRender(expr *sitter.Node, owner *sitter.Node, depth int) bool {
	expr = parser.Unparenthesize(expr)
	if expr == nil {
		return false
	}

	switch expr.Kind() {
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return true
	case "call_expression":
		if name, ok := calleeName(expr, d.info.File.Source); ok {
			// Bare createElement covers both the named import and the
			// `const createElement = React.createElement` alias pattern.
			if name == d.pragma+".createElement" || name == "createElement" {
				return true
			}
		}
		return d.delegatesToRenderHelper(expr, owner, depth)
	}
	return false
}

// delegatesToRenderHelper handles the `return renderRow()` and
// `return this._renderHello()` patterns: the call target is looked up in
// the same file (or the enclosing object/class for this-calls) and checked
// with the same detector one level deeper.
func (d *renderDetector) delegatesToRenderHelper(call *sitter.Node, owner *sitter.Node, depth int) bool {
	callee := call.ChildByFieldName("function")
	if callee == nil {
		return false
	}

	switch callee.Kind() {
	case "identifier":
		name := d.info.Text(callee)
		sym, ok := d.info.Lookup(name)
		if !ok {
			return false
		}
		value := parser.Unparenthesize(sym.BoundValue())
		if !semantic.IsFunctionNode(value) {
			return false
		}
		return d.isRenderReturning(value, depth+1)

	case "member_expression":
		object := callee.ChildByFieldName("object")
		property := callee.ChildByFieldName("property")
		if object == nil || object.Kind() != "this" || property == nil {
			return false
		}
		helper := d.findSiblingFunction(owner, d.info.Text(property))
		if helper == nil {
			return false
		}
		return d.isRenderReturning(helper, depth+1)
	}
	return false
}

// findSiblingFunction searches the object literal or class body enclosing
// the owner function for a property or method of the given name.
func (d *renderDetector) findSiblingFunction(owner *sitter.Node, name string) *sitter.Node {
	container := owner
	for container != nil {
		kind := container.Kind()
		if kind == "object" || kind == "class_body" {
			break
		}
		container = container.Parent()
	}
	if container == nil {
		return nil
	}

	for _, member := range parser.NamedChildren(container) {
		switch member.Kind() {
		case "pair":
			key := member.ChildByFieldName("key")
			if key == nil || parser.StringLiteralValue(key, d.info.File.Source) != name {
				continue
			}
			value := member.ChildByFieldName("value")
			if semantic.IsFunctionNode(value) {
				return value
			}
		case "method_definition":
			if methodName := member.ChildByFieldName("name"); methodName != nil && d.info.Text(methodName) == name {
				return member
			}
		}
	}
	return nil
}
