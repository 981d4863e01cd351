package semantic

import (
	"testing"

	"displaylint/internal/parser"
)

func parseJSX(t *testing.T, src string) *FileInfo {
	t.Helper()
	p := parser.NewParser(parser.NewGrammarLoader())
	file, err := p.ParseAs("fixture.jsx", []byte(src), "javascript")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	t.Cleanup(file.Close)
	return Build(file)
}

func TestBuildVariableBinding(t *testing.T) {
	fi := parseJSX(t, `
		var Hello = createReactClass({
		  render: function() { return <div/>; }
		});
		Hello.displayName = 'Hello';
	`)

	sym, ok := fi.Lookup("Hello")
	if !ok {
		t.Fatal("expected a symbol for Hello")
	}
	if sym.Kind != KindVariable {
		t.Errorf("Expected variable kind, got %s", sym.Kind)
	}
	if sym.BoundValue() == nil {
		t.Error("expected a bound value")
	}
	// declaration + the displayName assignment object
	if len(sym.Refs) < 1 {
		t.Errorf("Expected at least 1 reference, got %d", len(sym.Refs))
	}
}

func TestBuildAssignmentBeforeUse(t *testing.T) {
	fi := parseJSX(t, `
		let Hello;
		Hello = createContext();
		Hello.displayName = "HelloContext";
	`)

	sym, ok := fi.Lookup("Hello")
	if !ok {
		t.Fatal("expected a symbol for Hello")
	}

	value := sym.BoundValue()
	if value == nil {
		t.Fatal("expected bound value from the write reference")
	}
	if value.Kind() != "call_expression" {
		t.Errorf("Expected call_expression, got %s", value.Kind())
	}

	writes := 0
	for _, ref := range sym.Refs {
		if ref.Write {
			writes++
		}
	}
	if writes != 1 {
		t.Errorf("Expected exactly 1 write reference, got %d", writes)
	}
}

func TestBuildUndeclaredAssignment(t *testing.T) {
	fi := parseJSX(t, `
		demo = (a) => {
		  if (a == null) return null;
		  return f(a);
		};
	`)

	sym, ok := fi.Lookup("demo")
	if !ok {
		t.Fatal("expected a symbol for demo")
	}
	if sym.Kind != KindAssignment {
		t.Errorf("Expected assignment kind, got %s", sym.Kind)
	}
}

func TestBuildMemberAssignmentAnonymous(t *testing.T) {
	fi := parseJSX(t, `
		module.exports = function() {
		  return <div>Hello {props.name}</div>;
		}
	`)

	found := false
	for _, sym := range fi.Symbols {
		if sym.Kind == KindAssignment && !sym.HasName() {
			found = true
			if sym.BoundValue() == nil {
				t.Error("expected a bound value for module.exports")
			}
		}
	}
	if !found {
		t.Error("expected an anonymous symbol for the member assignment")
	}
}

func TestBuildExportDefaultExpression(t *testing.T) {
	fi := parseJSX(t, `
		export default class {
		  render() { return <div/>; }
		}
	`)

	found := false
	for _, sym := range fi.Symbols {
		if sym.Kind == KindExportDefault {
			found = true
			if !IsClassNode(sym.BoundValue()) {
				t.Error("expected the exported class expression as bound value")
			}
		}
	}
	if !found {
		t.Error("expected an export-default symbol")
	}
}

func TestBuildObjectPropertyBindings(t *testing.T) {
	fi := parseJSX(t, `
		const Mixin = {
		  Button() {
		    return (<button />);
		  }
		};
		var data = { a: "test1", displayName: "test2" };
	`)

	if _, ok := fi.Lookup("Button"); !ok {
		t.Error("expected a property symbol for the Button method")
	}
	if _, ok := fi.Lookup("displayName"); ok {
		t.Error("plain data properties must not become bindings")
	}
}

func TestBuildImports(t *testing.T) {
	fi := parseJSX(t, `
		import React, { createContext } from 'react';
		import * as Everything from 'react-dom';
		import { memo as remember } from 'react';
	`)

	tests := []struct {
		local  string
		module string
	}{
		{"React", "react"},
		{"createContext", "react"},
		{"Everything", "react-dom"},
		{"remember", "react"},
	}
	for _, tc := range tests {
		module, ok := fi.ImportedFrom(tc.local)
		if !ok {
			t.Errorf("expected %s to be import-bound", tc.local)
			continue
		}
		if module != tc.module {
			t.Errorf("ImportedFrom(%s) = %s, want %s", tc.local, module, tc.module)
		}
	}

	if _, ok := fi.ImportedFrom("memo"); ok {
		t.Error("aliased import must bind the alias, not the source name")
	}
}

func TestBuildReferenceOrderIndependence(t *testing.T) {
	first := parseJSX(t, `
		let x;
		x = createContext();
		x.displayName = "D";
	`)
	second := parseJSX(t, `
		let x;
		x.displayName = "D";
		x = createContext();
	`)

	for _, fi := range []*FileInfo{first, second} {
		sym, ok := fi.Lookup("x")
		if !ok {
			t.Fatal("expected symbol x")
		}
		if sym.BoundValue() == nil {
			t.Error("bound value must resolve regardless of reference order")
		}
	}
}
