// Package rules defines the lint-rule contract and the per-file dispatch
// that presents every symbol of a file to every registered rule.
package rules

import (
	"displaylint/internal/parser"
	"displaylint/internal/react"
	"displaylint/internal/semantic"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is one finding, located at the declaration span of the
// offending binding.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	Span     parser.Span
}

// Context is handed to a rule for one file. Rules read the symbol model and
// settings and report diagnostics; they must not retain the context.
type Context struct {
	Info     *semantic.FileInfo
	Settings react.Settings

	diagnostics []Diagnostic
}

func (c *Context) Report(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// Rule is invoked once per declared symbol. Implementations must be
// stateless across invocations and must never panic on malformed input;
// unrecognized shapes are silently skipped.
type Rule interface {
	Name() string
	Run(ctx *Context, sym *semantic.Symbol)
}

// Registry is the ordered set of rules for a run.
type Registry struct {
	rules []Rule
}

func NewRegistry(rules ...Rule) *Registry {
	return &Registry{rules: rules}
}

func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

func (r *Registry) Rules() []Rule {
	return r.rules
}

// RunFile dispatches every symbol of the file to every rule and returns the
// collected diagnostics in report order.
func (r *Registry) RunFile(info *semantic.FileInfo, settings react.Settings) []Diagnostic {
	ctx := &Context{Info: info, Settings: settings.Normalize()}
	for _, rule := range r.rules {
		for _, sym := range info.Symbols {
			rule.Run(ctx, sym)
		}
	}
	return ctx.diagnostics
}
