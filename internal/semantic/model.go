// Package semantic builds a per-file symbol model over the concrete syntax
// tree: every name-introducing binding becomes a Symbol carrying its
// declaring node and the ordered list of references to it within the file.
// Resolution is same-file and name-based; rules that need cross-module
// knowledge do not belong here.
package semantic

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"displaylint/internal/parser"
)

type SymbolKind string

const (
	// KindVariable is a variable_declarator binding (var/let/const).
	KindVariable SymbolKind = "variable"
	// KindFunction is a function declaration.
	KindFunction SymbolKind = "function"
	// KindClass is a class declaration.
	KindClass SymbolKind = "class"
	// KindAssignment is an assignment to a previously undeclared name or to
	// a member target such as module.exports.
	KindAssignment SymbolKind = "assignment"
	// KindProperty is an object-literal property or method binding.
	KindProperty SymbolKind = "property"
	// KindExportDefault is an anonymous default-exported value.
	KindExportDefault SymbolKind = "export-default"
)

// Reference is one syntactic occurrence of a symbol's name.
type Reference struct {
	Node  *sitter.Node
	Write bool
}

// Symbol is the semantic identity of a binding. Name is empty for anonymous
// bindings (member-assignment targets, anonymous default exports).
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Decl     *sitter.Node
	NameNode *sitter.Node
	Refs     []Reference
}

func (s *Symbol) HasName() bool { return s.Name != "" }

// BoundValue resolves the value expression the symbol is bound to. For a
// declarator without an initializer the right side of any assignment write
// reference counts, so `let x; x = createContext()` resolves the same as
// `let x = createContext()` regardless of reference order.
func (s *Symbol) BoundValue() *sitter.Node {
	switch s.Kind {
	case KindVariable:
		if init := s.Decl.ChildByFieldName("value"); init != nil {
			return init
		}
		for _, ref := range s.Refs {
			if !ref.Write {
				continue
			}
			assign := ref.Node.Parent()
			if assign != nil && assign.Kind() == "assignment_expression" {
				return assign.ChildByFieldName("right")
			}
		}
		return nil
	case KindFunction, KindClass, KindExportDefault:
		return s.Decl
	case KindAssignment:
		return s.Decl.ChildByFieldName("right")
	case KindProperty:
		if s.Decl.Kind() == "method_definition" {
			return s.Decl
		}
		return s.Decl.ChildByFieldName("value")
	}
	return nil
}

// FileInfo is the symbol model of one parsed file.
type FileInfo struct {
	File    *parser.File
	Symbols []*Symbol

	byName  map[string]*Symbol
	imports map[string]string // local name -> module specifier
}

// Lookup returns the symbol a bare name resolves to in this file, if any.
func (fi *FileInfo) Lookup(name string) (*Symbol, bool) {
	sym, ok := fi.byName[name]
	return sym, ok
}

// ImportedFrom returns the module a local name was imported from.
func (fi *FileInfo) ImportedFrom(name string) (string, bool) {
	module, ok := fi.imports[name]
	return module, ok
}

// Text is a convenience wrapper over the file's source.
func (fi *FileInfo) Text(node *sitter.Node) string {
	return parser.NodeText(node, fi.File.Source)
}
