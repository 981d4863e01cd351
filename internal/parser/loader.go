// # internal/parser/loader.go
package parser

import (
	"fmt"
	"sort"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// GrammarLoader owns the compiled tree-sitter grammars for the JavaScript
// dialects the linter understands. The javascript grammar parses JSX; TSX
// needs the dedicated typescript sub-grammar.
type GrammarLoader struct {
	languages map[string]*sitter.Language
}

func NewGrammarLoader() *GrammarLoader {
	return &GrammarLoader{
		languages: map[string]*sitter.Language{
			"javascript": sitter.NewLanguage(tree_sitter_javascript.Language()),
			"typescript": sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
			"tsx":        sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()),
		},
	}
}

func (gl *GrammarLoader) Language(langID string) (*sitter.Language, error) {
	lang := gl.languages[langID]
	if lang == nil {
		return nil, fmt.Errorf("grammar not loaded: %s", langID)
	}
	return lang, nil
}

func (gl *GrammarLoader) SupportedLanguages() []string {
	ids := make([]string, 0, len(gl.languages))
	for id := range gl.languages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DetectLanguage maps a file extension to a grammar ID, or "" when the file
// is not lintable.
func DetectLanguage(path string) string {
	idx := lastDot(path)
	if idx < 0 {
		return ""
	}
	switch path[idx:] {
	case ".js", ".jsx", ".mjs", ".cjs":
		return "javascript"
	case ".ts", ".mts", ".cts":
		return "typescript"
	case ".tsx":
		return "tsx"
	}
	return ""
}

func lastDot(path string) int {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			return i
		case '/', '\\':
			return -1
		}
	}
	return -1
}
