package semantic

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"displaylint/internal/parser"
)

// Build walks the file's tree and produces its symbol model. It never
// fails: unrecognized syntax simply contributes no symbols.
func Build(file *parser.File) *FileInfo {
	fi := &FileInfo{
		File:    file,
		byName:  make(map[string]*Symbol),
		imports: make(map[string]string),
	}

	root := file.Root()
	if root == nil {
		return fi
	}

	collectBindings(root, file.Source, fi)
	collectReferences(root, file.Source, fi)

	// Every symbol carries at least its declaration as a reference.
	for _, sym := range fi.Symbols {
		if len(sym.Refs) == 0 {
			node := sym.NameNode
			if node == nil {
				node = sym.Decl
			}
			sym.Refs = append(sym.Refs, Reference{Node: node, Write: true})
		}
	}

	return fi
}

func collectBindings(node *sitter.Node, source []byte, fi *FileInfo) {
	switch node.Kind() {
	case "variable_declarator":
		// Destructuring patterns introduce no single component binding.
		if name := node.ChildByFieldName("name"); name != nil && name.Kind() == "identifier" {
			fi.addNamed(KindVariable, node, name, source)
		}

	case "function_declaration", "generator_function_declaration":
		if name := node.ChildByFieldName("name"); name != nil {
			fi.addNamed(KindFunction, node, name, source)
		}

	case "class_declaration":
		if name := node.ChildByFieldName("name"); name != nil {
			fi.addNamed(KindClass, node, name, source)
		}

	case "assignment_expression":
		left := node.ChildByFieldName("left")
		if left == nil {
			break
		}
		switch left.Kind() {
		case "identifier":
			// First assignment to an undeclared name acts as its binding;
			// later ones become write references during the reference pass.
			if _, exists := fi.byName[parser.NodeText(left, source)]; !exists {
				fi.addNamed(KindAssignment, node, left, source)
			}
		case "member_expression":
			// module.exports = ..., obj.prop = ...
			fi.addAnonymous(KindAssignment, node)
		}

	case "pair":
		// Object-literal properties are bindings only when they carry a
		// name-bearing construction (function, arrow, class).
		if node.Parent() != nil && node.Parent().Kind() == "object" {
			value := node.ChildByFieldName("value")
			key := node.ChildByFieldName("key")
			if key != nil && isValueBinding(value) && propertyKeyName(key, source) != "" {
				fi.addNamed(KindProperty, node, key, source)
			}
		}

	case "method_definition":
		// Object-literal methods only. Class methods are component
		// internals, not separate bindings.
		if node.Parent() != nil && node.Parent().Kind() == "object" {
			if name := node.ChildByFieldName("name"); name != nil {
				fi.addNamed(KindProperty, node, name, source)
			}
		}

	case "export_statement":
		if parser.HasChildOfKind(node, "default") {
			if value := node.ChildByFieldName("value"); value != nil {
				fi.addAnonymous(KindExportDefault, value)
			}
		}

	case "import_statement":
		collectImport(node, source, fi)
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		if ch := node.Child(i); ch != nil {
			collectBindings(ch, source, fi)
		}
	}
}

func isValueBinding(value *sitter.Node) bool {
	if value == nil {
		return false
	}
	return IsFunctionNode(value) || IsClassNode(value)
}

func propertyKeyName(key *sitter.Node, source []byte) string {
	switch key.Kind() {
	case "property_identifier", "identifier":
		return parser.NodeText(key, source)
	case "string":
		return parser.StringLiteralValue(key, source)
	}
	// computed_property_name and friends are not statically known
	return ""
}

func (fi *FileInfo) addNamed(kind SymbolKind, decl, nameNode *sitter.Node, source []byte) {
	name := propertyKeyName(nameNode, source)
	if name == "" {
		name = parser.NodeText(nameNode, source)
	}
	if name == "" {
		return
	}
	if _, exists := fi.byName[name]; exists && kind != KindProperty {
		// Same-name redeclaration: the first binding wins at file level.
		return
	}

	sym := &Symbol{Name: name, Kind: kind, Decl: decl, NameNode: nameNode}
	fi.Symbols = append(fi.Symbols, sym)
	if _, exists := fi.byName[name]; !exists {
		fi.byName[name] = sym
	}
}

func (fi *FileInfo) addAnonymous(kind SymbolKind, decl *sitter.Node) {
	fi.Symbols = append(fi.Symbols, &Symbol{Kind: kind, Decl: decl})
}

// collectImport records local names bound by an import statement so rules
// can distinguish `import {createContext} from 'react'` from a local
// function of the same name.
func collectImport(node *sitter.Node, source []byte, fi *FileInfo) {
	module := ""
	if src := node.ChildByFieldName("source"); src != nil {
		module = strings.Trim(parser.NodeText(src, source), `"'`+"`")
	}

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		switch n.Kind() {
		case "import_specifier":
			local := n.ChildByFieldName("alias")
			if local == nil {
				local = n.ChildByFieldName("name")
			}
			if local != nil {
				fi.imports[parser.NodeText(local, source)] = module
			}
			return
		case "namespace_import":
			// import * as React from 'react'
			for i := uint(0); i < n.NamedChildCount(); i++ {
				if ch := n.NamedChild(i); ch != nil && ch.Kind() == "identifier" {
					fi.imports[parser.NodeText(ch, source)] = module
				}
			}
			return
		case "identifier":
			// default import
			fi.imports[parser.NodeText(n, source)] = module
			return
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			if ch := n.Child(i); ch != nil {
				walk(ch)
			}
		}
	}

	if clause := firstChildOfKind(node, "import_clause"); clause != nil {
		for i := uint(0); i < clause.ChildCount(); i++ {
			if ch := clause.Child(i); ch != nil {
				walk(ch)
			}
		}
	}
}

func firstChildOfKind(node *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < node.ChildCount(); i++ {
		if ch := node.Child(i); ch != nil && ch.Kind() == kind {
			return ch
		}
	}
	return nil
}

// collectReferences attaches every identifier occurrence to the symbol its
// name resolves to. Matching is name-based at file scope; shadowing inside
// nested scopes is deliberately not modeled.
func collectReferences(node *sitter.Node, source []byte, fi *FileInfo) {
	if node.Kind() == "identifier" {
		name := parser.NodeText(node, source)
		if sym, ok := fi.byName[name]; ok {
			if sym.NameNode == nil || sym.NameNode.StartByte() != node.StartByte() {
				fi.attachReference(sym, node)
			}
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		if ch := node.Child(i); ch != nil {
			collectReferences(ch, source, fi)
		}
	}
}

func (fi *FileInfo) attachReference(sym *Symbol, node *sitter.Node) {
	write := false
	if parent := node.Parent(); parent != nil && parent.Kind() == "assignment_expression" {
		if left := parent.ChildByFieldName("left"); left != nil && left.StartByte() == node.StartByte() {
			write = true
		}
	}
	sym.Refs = append(sym.Refs, Reference{Node: node, Write: write})
}
