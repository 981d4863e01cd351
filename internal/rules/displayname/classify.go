package displayname

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"displaylint/internal/parser"
	"displaylint/internal/react"
	"displaylint/internal/semantic"
)

// forwardRefNamingFixed is the first version that derives a devtools name
// for anonymous forwardRef render functions on its own. Older versions
// never could, so flagging them there would be pure noise.
var forwardRefNamingFixed = react.Version{Major: 16, Minor: 13, Patch: 0}

type componentType int

const (
	componentNamed componentType = iota + 1
	componentTranspilerNamed
	componentUnnamed
)

// classification pins a naming tier to the node whose span a diagnostic
// should cover. Node is usually the declaring binding; for deferred
// candidates it is the inner function literal itself.
type classification struct {
	Type componentType
	Node *sitter.Node
}

// classify decides whether the symbol's bound value is component-like and,
// if so, which naming tier it lands in. Unrecognized shapes are not
// components and produce no classification.
func (r *Rule) classify(info *semantic.FileInfo, settings react.Settings, sym *semantic.Symbol) (classification, bool) {
	value := parser.Unparenthesize(sym.BoundValue())
	if value == nil {
		return classification{}, false
	}

	if value.Kind() == "call_expression" {
		name, _ := calleeName(value, info.File.Source)
		switch {
		case r.isFactoryCall(name, settings):
			return r.classifyFactory(info, sym, value)
		case isContextCall(name, settings):
			if !r.opts.CheckContextObjects {
				return classification{}, false
			}
			return classifyContext(info, sym), true
		}
		if unwrapped, ok := r.unwrapWrappers(value, info.File.Source, settings); ok {
			return r.classifyWrapped(info, settings, sym, unwrapped)
		}
		return classification{}, false
	}

	if semantic.IsClassNode(value) {
		return r.classifyClass(info, settings, sym, value)
	}

	if semantic.IsFunctionNode(value) {
		return r.classifyFunction(info, settings, sym, value)
	}

	return classification{}, false
}

func (r *Rule) isFactoryCall(name string, settings react.Settings) bool {
	if name == "" {
		return false
	}
	if name == settings.Pragma+".createClass" || name == "createReactClass" {
		return true
	}
	return settings.CreateClass != "" && name == settings.CreateClass
}

func isContextCall(name string, settings react.Settings) bool {
	return name == settings.Pragma+".createContext" || name == "createContext"
}

// classifyFactory handles create-class calls. The sole argument must be an
// object literal; its displayName property names the component directly.
func (r *Rule) classifyFactory(info *semantic.FileInfo, sym *semantic.Symbol, call *sitter.Node) (classification, bool) {
	args := parser.CallArguments(call)
	if len(args) != 1 {
		return classification{}, false
	}
	object := parser.Unparenthesize(args[0])
	if object == nil || object.Kind() != "object" {
		return classification{}, false
	}
	if objectHasDisplayName(object, info) {
		return classification{componentNamed, sym.Decl}, true
	}
	if sym.HasName() {
		return classification{componentTranspilerNamed, sym.Decl}, true
	}
	return classification{componentUnnamed, sym.Decl}, true
}

// classifyContext handles context-factory bindings. A context value carries
// no name-bearing syntax, so only a later displayName assignment names it.
func classifyContext(info *semantic.FileInfo, sym *semantic.Symbol) classification {
	if hasDisplayNameAssignment(info, sym) {
		return classification{componentNamed, sym.Decl}
	}
	return classification{componentUnnamed, sym.Decl}
}

func (r *Rule) classifyClass(info *semantic.FileInfo, settings react.Settings, sym *semantic.Symbol, class *sitter.Node) (classification, bool) {
	if !isComponentClass(class, info, settings.Pragma) {
		return classification{}, false
	}
	if hasStaticDisplayName(class, info) || hasDisplayNameAssignment(info, sym) {
		return classification{componentNamed, sym.Decl}, true
	}
	if className(class, info) != "" || sym.HasName() {
		return classification{componentTranspilerNamed, sym.Decl}, true
	}
	return classification{componentUnnamed, sym.Decl}, true
}

func (r *Rule) classifyFunction(info *semantic.FileInfo, settings react.Settings, sym *semantic.Symbol, fn *sitter.Node) (classification, bool) {
	if newRenderDetector(info, settings.Pragma).isRenderReturning(fn, 0) {
		return r.nameFunction(info, sym, fn, sym.Decl), true
	}
	// A chain like `a => listItem => <div/>` hands candidacy to the
	// innermost literal; the outer binding name does not attach to it.
	if inner := deferredRenderLiteral(info, settings.Pragma, fn); inner != nil {
		if ownFunctionName(inner, info.File.Source) != "" {
			return classification{componentNamed, inner}, true
		}
		return classification{componentUnnamed, inner}, true
	}
	return classification{}, false
}

// classifyWrapped handles memo/forwardRef and configured wrapper chains.
// An unwrapped function is a component even when its body is opaque to the
// render detector.
func (r *Rule) classifyWrapped(info *semantic.FileInfo, settings react.Settings, sym *semantic.Symbol, unwrapped unwrapResult) (classification, bool) {
	fn := parser.Unparenthesize(unwrapped.Value)
	if !semantic.IsFunctionNode(fn) {
		return classification{}, false
	}
	if unwrapped.DirectForwardRef && ownFunctionName(fn, info.File.Source) == "" {
		if settings.Version != nil && settings.Version.Less(forwardRefNamingFixed) {
			return classification{componentNamed, sym.Decl}, true
		}
	}
	return r.nameFunction(info, sym, fn, sym.Decl), true
}

// nameFunction applies the function-tier naming rules: the literal's own
// name or a later displayName assignment names it outright, a named binding
// leaves the name to the transpiler.
func (r *Rule) nameFunction(info *semantic.FileInfo, sym *semantic.Symbol, fn *sitter.Node, at *sitter.Node) classification {
	if ownFunctionName(fn, info.File.Source) != "" {
		return classification{componentNamed, at}
	}
	if hasDisplayNameAssignment(info, sym) {
		return classification{componentNamed, at}
	}
	if sym.HasName() {
		return classification{componentTranspilerNamed, at}
	}
	return classification{componentUnnamed, at}
}

// ownFunctionName is the name written on the literal itself. A method key
// does not count; the transpiler supplies that one.
func ownFunctionName(fn *sitter.Node, source []byte) string {
	if fn == nil || fn.Kind() == "method_definition" {
		return ""
	}
	return semantic.FunctionName(fn, source)
}

// deferredRenderLiteral follows arrow expression bodies and returned
// function literals to the innermost literal and reports it when that
// literal renders.
func deferredRenderLiteral(info *semantic.FileInfo, pragma string, fn *sitter.Node) *sitter.Node {
	inner := fn
	for {
		next := returnedFunctionLiteral(inner)
		if next == nil {
			break
		}
		inner = next
	}
	if inner.StartByte() == fn.StartByte() {
		return nil
	}
	if !newRenderDetector(info, pragma).isRenderReturning(inner, 0) {
		return nil
	}
	return inner
}

func returnedFunctionLiteral(fn *sitter.Node) *sitter.Node {
	body := semantic.FunctionBody(fn)
	if body == nil {
		return nil
	}
	if body.Kind() != "statement_block" {
		if value := parser.Unparenthesize(body); semantic.IsFunctionNode(value) {
			return value
		}
		return nil
	}
	for _, stmt := range parser.NamedChildren(body) {
		if stmt.Kind() != "return_statement" {
			continue
		}
		if value := parser.Unparenthesize(stmt.NamedChild(0)); semantic.IsFunctionNode(value) {
			return value
		}
	}
	return nil
}

// isComponentClass accepts classes extending the pragma's component bases
// and plain classes that define an instance render method.
func isComponentClass(class *sitter.Node, info *semantic.FileInfo, pragma string) bool {
	if base := classHeritage(class); base != nil {
		if name, ok := resolveName(base, info.File.Source); ok {
			if name == pragma+".Component" || name == pragma+".PureComponent" {
				return true
			}
		}
	}
	body := class.ChildByFieldName("body")
	if body == nil {
		return false
	}
	for _, member := range parser.NamedChildren(body) {
		if member.Kind() != "method_definition" || parser.HasChildOfKind(member, "static") {
			continue
		}
		if name := member.ChildByFieldName("name"); name != nil && info.Text(name) == "render" {
			return true
		}
	}
	return false
}

// classHeritage returns the extended expression. The javascript grammar
// puts it directly under class_heritage; the typescript grammar wraps it in
// an extends_clause.
func classHeritage(class *sitter.Node) *sitter.Node {
	if class == nil {
		return nil
	}
	for i := uint(0); i < class.ChildCount(); i++ {
		ch := class.Child(i)
		if ch == nil || ch.Kind() != "class_heritage" {
			continue
		}
		for _, part := range parser.NamedChildren(ch) {
			if part.Kind() == "extends_clause" {
				if value := part.ChildByFieldName("value"); value != nil {
					return value
				}
				return part.NamedChild(0)
			}
			if part.Kind() == "implements_clause" {
				continue
			}
			return part
		}
	}
	return nil
}

func className(class *sitter.Node, info *semantic.FileInfo) string {
	if name := class.ChildByFieldName("name"); name != nil {
		return info.Text(name)
	}
	return ""
}

// hasStaticDisplayName finds `static displayName = …` fields and
// `static get displayName()` accessors.
func hasStaticDisplayName(class *sitter.Node, info *semantic.FileInfo) bool {
	body := class.ChildByFieldName("body")
	if body == nil {
		return false
	}
	for _, member := range parser.NamedChildren(body) {
		if !parser.HasChildOfKind(member, "static") {
			continue
		}
		switch member.Kind() {
		case "field_definition", "public_field_definition":
			key := member.ChildByFieldName("property")
			if key != nil && parser.StringLiteralValue(key, info.File.Source) == "displayName" {
				return true
			}
		case "method_definition":
			if !parser.HasChildOfKind(member, "get") {
				continue
			}
			if name := member.ChildByFieldName("name"); name != nil && info.Text(name) == "displayName" {
				return true
			}
		}
	}
	return false
}

func objectHasDisplayName(object *sitter.Node, info *semantic.FileInfo) bool {
	for _, member := range parser.NamedChildren(object) {
		switch member.Kind() {
		case "pair":
			key := member.ChildByFieldName("key")
			if key != nil && parser.StringLiteralValue(key, info.File.Source) == "displayName" {
				return true
			}
		case "shorthand_property_identifier":
			if info.Text(member) == "displayName" {
				return true
			}
		case "method_definition":
			if name := member.ChildByFieldName("name"); name != nil && info.Text(name) == "displayName" {
				return true
			}
		}
	}
	return false
}

// hasDisplayNameAssignment scans the symbol's references for a
// `Symbol.displayName = …` write. The scan is order-independent, so
// assignment-before-declaration patterns are covered too.
func hasDisplayNameAssignment(info *semantic.FileInfo, sym *semantic.Symbol) bool {
	for _, ref := range sym.Refs {
		if ref.Node == nil {
			continue
		}
		member := ref.Node.Parent()
		if member == nil || member.Kind() != "member_expression" {
			continue
		}
		object := member.ChildByFieldName("object")
		if object == nil || object.StartByte() != ref.Node.StartByte() {
			continue
		}
		property := member.ChildByFieldName("property")
		if property == nil || info.Text(property) != "displayName" {
			continue
		}
		assign := member.Parent()
		if assign == nil || assign.Kind() != "assignment_expression" {
			continue
		}
		if left := assign.ChildByFieldName("left"); left != nil && left.StartByte() == member.StartByte() {
			return true
		}
	}
	return false
}
