// Package displayname implements the display-name rule: every binding that
// defines a UI component must carry a statically derivable name, so devtools
// never show an anonymous component.
package displayname

import (
	"displaylint/internal/parser"
	"displaylint/internal/react"
	"displaylint/internal/rules"
	"displaylint/internal/semantic"
)

const RuleName = "display-name"

// Options is the decoded rule configuration.
type Options struct {
	// IgnoreTranspilerName silences components whose name the transpiler
	// infers from the binding. When false such components are reported
	// until they carry an explicit name.
	IgnoreTranspilerName bool

	// CheckContextObjects extends the rule to createContext values, which
	// only a displayName assignment can name.
	CheckContextObjects bool

	// ComponentWrapperFunctions lists additional bare higher-order wrapper
	// names treated like memo and forwardRef, e.g. "observer".
	ComponentWrapperFunctions []string
}

// Rule is stateless per invocation; the wrapper set is built once from the
// options and only read afterwards.
type Rule struct {
	opts     Options
	wrappers map[string]bool
}

func New(opts Options) *Rule {
	wrappers := make(map[string]bool, len(opts.ComponentWrapperFunctions))
	for _, name := range opts.ComponentWrapperFunctions {
		if name != "" {
			wrappers[name] = true
		}
	}
	return &Rule{opts: opts, wrappers: wrappers}
}

func (r *Rule) Name() string { return RuleName }

// Run classifies one symbol and reports it when its name cannot be derived
// statically. Named components never report; transpiler-named ones report
// unless IgnoreTranspilerName is set.
func (r *Rule) Run(ctx *rules.Context, sym *semantic.Symbol) {
	if sym == nil || sym.Decl == nil {
		return
	}
	// Members of a create-class argument object are part of the factory
	// component, not components of their own.
	if sym.Kind == semantic.KindProperty && r.insideFactoryObject(ctx.Info, ctx.Settings, sym) {
		return
	}

	result, ok := r.classify(ctx.Info, ctx.Settings, sym)
	if !ok {
		return
	}
	switch result.Type {
	case componentNamed:
		return
	case componentTranspilerNamed:
		if r.opts.IgnoreTranspilerName {
			return
		}
	}

	node := result.Node
	if node == nil {
		node = sym.Decl
	}
	ctx.Report(rules.Diagnostic{
		Rule:     RuleName,
		Severity: rules.SeverityWarning,
		Message:  "Component definition is missing display name",
		Span:     parser.NodeSpan(node, ctx.Info.File.Path),
	})
}

func (r *Rule) insideFactoryObject(info *semantic.FileInfo, settings react.Settings, sym *semantic.Symbol) bool {
	for node := sym.Decl.Parent(); node != nil; node = node.Parent() {
		if node.Kind() != "object" {
			continue
		}
		argsNode := node.Parent()
		if argsNode == nil || argsNode.Kind() != "arguments" {
			continue
		}
		call := argsNode.Parent()
		if call == nil || call.Kind() != "call_expression" {
			continue
		}
		if name, ok := calleeName(call, info.File.Source); ok && r.isFactoryCall(name, settings) {
			return true
		}
	}
	return false
}
