// # internal/parser/parser.go
package parser

import (
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// File is one parsed source file. The tree is retained so analysis passes
// can walk the concrete syntax; Close must be called when linting is done
// because trees hold memory outside the Go heap.
type File struct {
	Path     string
	Language string
	Source   []byte

	tree *sitter.Tree
}

func (f *File) Root() *sitter.Node {
	if f == nil || f.tree == nil {
		return nil
	}
	return f.tree.RootNode()
}

func (f *File) Close() {
	if f != nil && f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

type Parser struct {
	loader *GrammarLoader
}

func NewParser(loader *GrammarLoader) *Parser {
	return &Parser{loader: loader}
}

func (p *Parser) ParseFile(path string, content []byte) (*File, error) {
	lang := DetectLanguage(path)
	if lang == "" {
		return nil, fmt.Errorf("unsupported language: %s", path)
	}
	return p.ParseAs(path, content, lang)
}

// ParseAs parses content with an explicit grammar ID, bypassing extension
// detection. Used by tests that lint inline snippets.
func (p *Parser) ParseAs(path string, content []byte, langID string) (*File, error) {
	grammar, err := p.loader.Language(langID)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, errors.New("parse failed")
	}

	return &File{
		Path:     path,
		Language: langID,
		Source:   content,
		tree:     tree,
	}, nil
}
