package driver

import (
	"minijs/internal/diag"
	"minijs/internal/lexer"
	"minijs/internal/source"
	"minijs/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and runs the lexer over it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource lexes an in-memory program under a virtual file name.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{
		Reporter: reporterAdapter.Reporter(),
	})

	// собираем все токены до EOF включительно
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
