// # internal/parser/parser_test.go
package parser

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"src/App.jsx", "javascript"},
		{"src/index.js", "javascript"},
		{"lib/util.mjs", "javascript"},
		{"lib/util.cjs", "javascript"},
		{"src/store.ts", "typescript"},
		{"src/Panel.tsx", "tsx"},
		{"README.md", ""},
		{"Makefile", ""},
		{"dir.with.dots/file", ""},
	}

	for _, tc := range tests {
		if got := DetectLanguage(tc.path); got != tc.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestParseFileJSX(t *testing.T) {
	p := NewParser(NewGrammarLoader())

	src := []byte(`
		var Hello = createReactClass({
		  render: function() {
		    return <div>Hello {this.props.name}</div>;
		  }
		});
	`)

	file, err := p.ParseFile("Hello.jsx", src)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	defer file.Close()

	root := file.Root()
	if root == nil {
		t.Fatal("expected a root node")
	}
	if root.Kind() != "program" {
		t.Errorf("Expected program root, got %s", root.Kind())
	}
	if root.HasError() {
		t.Errorf("JSX source parsed with errors")
	}
}

func TestParseFileTSX(t *testing.T) {
	p := NewParser(NewGrammarLoader())

	src := []byte(`
		import {Component} from "react";
		type LinkProps = {};
		class Link extends Component<LinkProps> {}
	`)

	file, err := p.ParseFile("Link.tsx", src)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	defer file.Close()

	if file.Language != "tsx" {
		t.Errorf("Expected tsx, got %s", file.Language)
	}
	if file.Root().HasError() {
		t.Errorf("TSX source parsed with errors")
	}
}

func TestParseFileUnsupported(t *testing.T) {
	p := NewParser(NewGrammarLoader())
	if _, err := p.ParseFile("main.go", []byte("package main")); err == nil {
		t.Error("expected error for unsupported language")
	}
}
