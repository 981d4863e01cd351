package displayname

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"displaylint/internal/parser"
	"displaylint/internal/react"
)

// unwrapResult is the value extracted from a chain of higher-order wrapper
// calls. DirectForwardRef records whether the innermost wrapper holding the
// value was <pragma>.forwardRef with the value as its immediate argument;
// the version-gated naming exception only applies in that position.
type unwrapResult struct {
	Value            *sitter.Node
	DirectForwardRef bool
}

// unwrapWrappers peels recognized wrapper calls (<pragma>.memo,
// <pragma>.forwardRef, configured componentWrapperFunctions names) until a
// non-wrapper value is reached. Calls without arguments, or whose callee
// does not resolve to a wrapper name, are not wrapped components.
func (r *Rule) unwrapWrappers(call *sitter.Node, source []byte, settings react.Settings) (unwrapResult, bool) {
	name, ok := calleeName(call, source)
	if !ok {
		return unwrapResult{}, false
	}

	pragma := settings.Pragma
	isForwardRef := name == pragma+".forwardRef"
	isWrapper := isForwardRef || name == pragma+".memo" || r.wrappers[name]
	if !isWrapper {
		return unwrapResult{}, false
	}

	args := parser.CallArguments(call)
	if len(args) == 0 {
		return unwrapResult{}, false
	}

	first := parser.Unparenthesize(args[0])
	if first != nil && first.Kind() == "call_expression" {
		if inner, ok := r.unwrapWrappers(first, source, settings); ok {
			return inner, true
		}
	}

	return unwrapResult{Value: first, DirectForwardRef: isForwardRef}, true
}
