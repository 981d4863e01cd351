package displayname_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"displaylint/internal/react"
	"displaylint/internal/rules/displayname"
	"displaylint/internal/rules/ruletest"
)

func newTester(t *testing.T, opts displayname.Options) *ruletest.Tester {
	t.Helper()
	return ruletest.New(t, displayname.New(opts))
}

func TestNamedComponentsNeverReport(t *testing.T) {
	fixtures := []string{
		`function Hello() { return <div>Hello stranger</div>; }`,
		`var Widget = function Hello() { return <div>Hello</div>; };`,
		`var Hello = createReactClass({ displayName: 'Hello', render() { return <div>Hello</div>; } });`,
		`var Hello = React.createClass({ displayName: 'Hello', render: function() { return <div/>; } });`,
		`class Hello extends React.Component { static displayName = 'Widget'; render() { return <div/>; } }`,
		`class Hello extends React.Component { static get displayName() { return 'Widget'; } render() { return <div/>; } }`,
		`class Hello extends React.Component { render() { return <div/>; } }
Hello.displayName = 'Hello';`,
		`var Hello = function() { return <div/>; };
Hello.displayName = 'Hello';`,
		`var Hello = React.forwardRef(function Hello(props, ref) { return <div ref={ref}/>; });`,
		`export default function Hello() { return <div/>; }`,
	}

	for _, ignore := range []bool{false, true} {
		tr := newTester(t, displayname.Options{IgnoreTranspilerName: ignore})
		for _, src := range fixtures {
			tr.ExpectOK(src)
		}
	}
}

func TestUnnamedComponentsAlwaysReport(t *testing.T) {
	fixtures := []string{
		`module.exports = createReactClass({ render() { return <div>Hello</div>; } });`,
		`export default class extends React.Component { render() { return <div/>; } }`,
		`export default () => <div/>;`,
		`module.exports = function() { return <div/>; };`,
		`const renderer = a => listItem => <div>{listItem}</div>;`,
	}

	for _, ignore := range []bool{false, true} {
		tr := newTester(t, displayname.Options{IgnoreTranspilerName: ignore})
		for _, src := range fixtures {
			tr.ExpectFail(src, 1)
		}
	}
}

func TestTranspilerNameToggle(t *testing.T) {
	fixtures := []string{
		`class Hello extends React.Component { render() { return <div>Hello {this.props.name}</div>; } }`,
		`var Hello = createReactClass({ render() { return <div>Hello</div>; } });`,
		`var Hello = () => <div/>;`,
		`var Hello = React.memo(() => <div/>);`,
		`var Hello = function() { return <div/>; };`,
	}

	reporting := newTester(t, displayname.Options{})
	silent := newTester(t, displayname.Options{IgnoreTranspilerName: true})
	for _, src := range fixtures {
		reporting.ExpectFail(src, 1)
		silent.ExpectOK(src)
	}
}

func TestNonComponentsAreIgnored(t *testing.T) {
	tr := newTester(t, displayname.Options{})
	fixtures := []string{
		`var config = { displayName: 'ignored', rows: 3 };`,
		`function add(a, b) { return a + b; }`,
		`class Parser { parse() { return []; } }`,
		`var Hello = createReactClass(externalSpec);`,
		`var maybe = somethingElse(() => <div/>);`,
		`const fetchRows = async () => { return load(); };`,
	}
	for _, src := range fixtures {
		tr.ExpectOK(src)
	}
}

func TestFactoryObjectMembersAreNotSeparateComponents(t *testing.T) {
	// The render method inside the factory argument belongs to the factory
	// component and must not be classified on its own.
	tr := newTester(t, displayname.Options{})
	tr.ExpectOK(`var Hello = createReactClass({
  displayName: 'Hello',
  _renderHello() { return <span>Hello</span>; },
  render() { return this._renderHello(); },
});`)
}

func TestRenderDelegation(t *testing.T) {
	tr := newTester(t, displayname.Options{})

	tr.ExpectFail(`module.exports = function() { return renderRow(); };
function renderRow() { return <div/>; }`, 1)

	tr.ExpectOK(`module.exports = function() { return compute(); };
function compute() { return 42; }`)

	// Mutually recursive helpers never reach an element and must not loop.
	tr.ExpectOK(`module.exports = function() { return ping(); };
function ping() { return pong(); }
function pong() { return ping(); }`)
}

func TestRenderDelegationDepthBound(t *testing.T) {
	tr := newTester(t, displayname.Options{})

	tr.ExpectFail(`module.exports = function() { return a(); };
function a() { return b(); }
function b() { return <div/>; }`, 1)

	// A helper chain deeper than the recursion bound is treated as opaque.
	tr.ExpectOK(`module.exports = function() { return h1(); };
function h1() { return h2(); }
function h2() { return h3(); }
function h3() { return h4(); }
function h4() { return h5(); }
function h5() { return <div/>; }`)
}

func TestWrapperUnwrappingIsTransitive(t *testing.T) {
	reporting := newTester(t, displayname.Options{})
	silent := newTester(t, displayname.Options{IgnoreTranspilerName: true})

	for _, src := range []string{
		`var Hello = React.forwardRef((props, ref) => <div ref={ref}/>);`,
		`var Hello = React.memo(React.forwardRef((props, ref) => <div ref={ref}/>));`,
	} {
		reporting.ExpectFail(src, 1)
		silent.ExpectOK(src)
	}

	for _, src := range []string{
		`module.exports = React.forwardRef((props, ref) => <div ref={ref}/>);`,
		`module.exports = React.memo(React.forwardRef((props, ref) => <div ref={ref}/>));`,
	} {
		reporting.ExpectFail(src, 1)
		silent.ExpectFail(src, 1)
	}
}

func TestConfiguredWrapperFunctions(t *testing.T) {
	src := `const Hello = observer(() => <div/>);`

	newTester(t, displayname.Options{}).ExpectOK(src)

	wrapped := newTester(t, displayname.Options{
		ComponentWrapperFunctions: []string{"observer"},
	})
	wrapped.ExpectFail(src, 1)

	ignored := newTester(t, displayname.Options{
		IgnoreTranspilerName:      true,
		ComponentWrapperFunctions: []string{"observer"},
	})
	ignored.ExpectOK(src)
}

func TestForwardRefVersionException(t *testing.T) {
	src := `module.exports = React.forwardRef((props, ref) => <div ref={ref}/>);`

	cases := []struct {
		version string
		reports bool
	}{
		{"15.7.1", false},
		{"16.12.1", false},
		{"16.13.0", true},
		{"16.14.0", true},
		{"", true}, // unknown version is not exempt
	}

	for _, tc := range cases {
		tr := newTester(t, displayname.Options{}).WithSettings(react.Settings{
			Pragma:  react.DefaultPragma,
			Version: react.ParseVersion(tc.version),
		})
		if tc.reports {
			tr.ExpectFail(src, 1)
		} else {
			tr.ExpectOK(src)
		}
	}
}

func TestForwardRefExceptionRequiresDirectArgument(t *testing.T) {
	tr := newTester(t, displayname.Options{}).WithSettings(react.Settings{
		Pragma:  react.DefaultPragma,
		Version: react.ParseVersion("15.7.1"),
	})

	// memo(forwardRef(fn)) keeps fn in forwardRef position, so the old
	// version still exempts it.
	tr.ExpectOK(`module.exports = React.memo(React.forwardRef((props, ref) => <div ref={ref}/>));`)

	// A named render function never needed the exemption.
	tr.ExpectOK(`module.exports = React.forwardRef(function Hello(props, ref) { return <div ref={ref}/>; });`)
}

func TestContextObjects(t *testing.T) {
	checked := newTester(t, displayname.Options{CheckContextObjects: true})

	checked.ExpectFail(`import { createContext } from 'react';
const Hello = createContext();`, 1)

	checked.ExpectFail(`const Hello = React.createContext();`, 1)

	checked.ExpectOK(`import { createContext } from 'react';
const Hello = createContext();
Hello.displayName = 'HelloContext';`)

	// The displayName search is order independent over the references.
	checked.ExpectOK(`let Hello;
Hello = React.createContext();
Hello.displayName = 'HelloContext';`)

	// Off by default.
	newTester(t, displayname.Options{}).ExpectOK(`const Hello = React.createContext();`)
}

func TestClassComponents(t *testing.T) {
	tr := newTester(t, displayname.Options{})

	// A plain class with an instance render method counts.
	tr.ExpectFail(`class Hello { render() { return <div>Hello</div>; } }`, 1)

	tr.ExpectOK(`class Parser { static render() { return <div/>; } }`)
	tr.ExpectOK(`class Queue { push(item) { this.items.push(item); } }`)
}

func TestBareComponentBaseIsNotRecognized(t *testing.T) {
	// Only the pragma-qualified bases identify a component by heritage.
	tr := newTester(t, displayname.Options{})
	diags := tr.LintTSX(`import { Component } from 'react';
class Link extends Component<LinkProps> {}`)
	require.Empty(t, diags)
}

func TestPragmaAndFactoryAliases(t *testing.T) {
	tr := newTester(t, displayname.Options{}).WithSettings(react.Settings{
		Pragma:      "Foo",
		CreateClass: "createClass",
	})

	tr.ExpectFail(`var Hello = Foo.createClass({ render() { return <div/>; } });`, 1)
	tr.ExpectFail(`var Hello = createClass({ render() { return <div/>; } });`, 1)
	tr.ExpectFail(`var Hello = Foo.memo(() => <div/>);`, 1)

	// The default pragma no longer matches anything.
	tr.ExpectOK(`var maybe = React.memo(() => <div/>);`)
}

func TestDeferredCandidateSpan(t *testing.T) {
	tr := newTester(t, displayname.Options{})
	src := `const renderer = a => listItem => <div>{listItem}</div>;`

	diags := tr.Lint(src)
	require.Len(t, diags, 1)

	span := diags[0].Span
	require.Equal(t, `listItem => <div>{listItem}</div>`, src[span.StartByte:span.EndByte],
		"diagnostic must cover the inner function literal")
}

func TestCreateElementReturnsAreRenders(t *testing.T) {
	reporting := newTester(t, displayname.Options{})

	reporting.ExpectFail(`module.exports = function() { return React.createElement('div', null); };`, 1)
	reporting.ExpectFail(`import { createElement } from 'react';
module.exports = function() { return createElement('div', null); };`, 1)
}
