package driver

import (
	"fortio.org/safecast"

	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/parser"
	"minijs/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Root    ast.ExprID
	Bag     *diag.Bag
}

// Parse loads a file and produces its AST.
// Диагностики лексера и парсера складываются в общий Bag.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	tok, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return parseTokens(tok, maxDiagnostics)
}

// ParseSource parses an in-memory program under a virtual file name.
func ParseSource(name string, src []byte, maxDiagnostics int) (*ParseResult, error) {
	return parseTokens(TokenizeSource(name, src, maxDiagnostics), maxDiagnostics)
}

func parseTokens(tok *TokenizeResult, maxDiagnostics int) (*ParseResult, error) {
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	opts := parser.Options{
		Reporter:  &diag.BagReporter{Bag: tok.Bag},
		MaxErrors: maxErrors,
	}
	result := parser.ParseProgram(tok.FileSet, tok.Tokens, builder, opts)

	return &ParseResult{
		FileSet: tok.FileSet,
		File:    tok.File,
		Builder: builder,
		Root:    result.Root,
		Bag:     tok.Bag,
	}, nil
}
