package driver

import (
	"fmt"

	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/sexpr"
	"minijs/internal/source"
	"minijs/internal/transform"
)

type CompileResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Root    ast.ExprID
	Value   sexpr.Value
	Output  string
	Bag     *diag.Bag
}

// CompileError wraps the first error diagnostic of a failed compile,
// так что вызывающий код может обойтись обычным error-путём без Bag.
type CompileError struct {
	Diag diag.Diagnostic
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Diag.Code.ID(), e.Diag.Message)
}

// Err returns nil on a clean compile and a *CompileError otherwise.
func (r *CompileResult) Err() error {
	if d, found := r.Bag.FirstError(); found {
		return &CompileError{Diag: d}
	}
	return nil
}

// Compile runs the full pipeline over a file: lex, parse, lower, serialize.
// I/O-ошибки возвращаются как error; ошибки в исходнике лежат в Bag.
func Compile(path string, maxDiagnostics int) (*CompileResult, error) {
	parsed, err := Parse(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return lower(parsed), nil
}

// CompileSource compiles an in-memory program under a virtual file name.
func CompileSource(name string, src []byte, maxDiagnostics int) (*CompileResult, error) {
	parsed, err := ParseSource(name, src, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return lower(parsed), nil
}

func lower(parsed *ParseResult) *CompileResult {
	res := &CompileResult{
		FileSet: parsed.FileSet,
		File:    parsed.File,
		Builder: parsed.Builder,
		Root:    parsed.Root,
		Bag:     parsed.Bag,
	}
	if parsed.Bag.HasErrors() || !parsed.Root.IsValid() {
		return res
	}

	tr := transform.Transform(parsed.Builder, parsed.Root, transform.Options{
		Reporter: &diag.BagReporter{Bag: parsed.Bag},
	})
	if !tr.Ok {
		return res
	}

	res.Value = tr.Value
	res.Output = sexpr.Serialize(tr.Value)
	return res
}
