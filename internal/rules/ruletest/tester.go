// Package ruletest runs rules against inline source fixtures. Tests hand it
// a snippet and assert on the diagnostics that come back.
package ruletest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"displaylint/internal/parser"
	"displaylint/internal/react"
	"displaylint/internal/rules"
	"displaylint/internal/semantic"
)

// Tester parses fixtures and dispatches them through a registry built from
// a single rule, the way a real run would.
type Tester struct {
	t        *testing.T
	parser   *parser.Parser
	registry *rules.Registry
	settings react.Settings
}

func New(t *testing.T, rule rules.Rule) *Tester {
	t.Helper()
	return &Tester{
		t:        t,
		parser:   parser.NewParser(parser.NewGrammarLoader()),
		registry: rules.NewRegistry(rule),
		settings: react.DefaultSettings(),
	}
}

// WithSettings replaces the shared settings for subsequent fixtures.
func (tr *Tester) WithSettings(settings react.Settings) *Tester {
	tr.settings = settings
	return tr
}

// Lint parses the snippet as JSX and returns the rule's diagnostics.
func (tr *Tester) Lint(source string) []rules.Diagnostic {
	return tr.LintAs(source, "javascript", "fixture.jsx")
}

// LintTSX parses the snippet with the tsx grammar.
func (tr *Tester) LintTSX(source string) []rules.Diagnostic {
	return tr.LintAs(source, "tsx", "fixture.tsx")
}

func (tr *Tester) LintAs(source, langID, path string) []rules.Diagnostic {
	tr.t.Helper()
	file, err := tr.parser.ParseAs(path, []byte(source), langID)
	require.NoError(tr.t, err, "fixture must parse")
	tr.t.Cleanup(file.Close)

	info := semantic.Build(file)
	return tr.registry.RunFile(info, tr.settings)
}

// ExpectOK asserts the snippet produces no diagnostics.
func (tr *Tester) ExpectOK(source string) {
	tr.t.Helper()
	diags := tr.Lint(source)
	require.Empty(tr.t, diags, "expected no diagnostics for:\n%s", source)
}

// ExpectFail asserts the snippet produces exactly n diagnostics.
func (tr *Tester) ExpectFail(source string, n int) {
	tr.t.Helper()
	diags := tr.Lint(source)
	require.Len(tr.t, diags, n, "unexpected diagnostic count for:\n%s", source)
}
