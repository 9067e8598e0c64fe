package transform_test

import (
	"testing"

	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/lexer"
	"minijs/internal/parser"
	"minijs/internal/source"
	"minijs/internal/token"
	"minijs/internal/transform"
)

// lowerInput прогоняет полный конвейер и возвращает debug-форму значения.
func lowerInput(t *testing.T, input string) string {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mjs", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	adapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: adapter.Reporter()})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	builder := ast.NewBuilder(ast.Hints{})
	result := parser.ParseProgram(fs, toks, builder, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	if bag.HasErrors() {
		first, _ := bag.FirstError()
		t.Fatalf("parse failed for %q: [%s] %s", input, first.Code.ID(), first.Message)
	}

	lowered := transform.Transform(builder, result.Root, transform.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	if !lowered.Ok {
		first, _ := bag.FirstError()
		t.Fatalf("lowering failed for %q: [%s] %s", input, first.Code.ID(), first.Message)
	}
	return lowered.Value.String()
}

func TestLowerLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"3.5", "3.5"},
		{"0", "0"},
		{"true", "true"},
		{"false", "false"},
		{"null", "null"},
		{`"hi"`, `(quote "hi")`},
		{`""`, `(quote "")`},
	}
	for _, tt := range tests {
		if got := lowerInput(t, tt.input); got != tt.want {
			t.Errorf("%q => %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestLowerOperators(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2", "(+ 1 2)"},
		{"7 % 2", "(% 7 2)"},
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"10 - 4 - 3", "(- (- 10 4) 3)"},
		{"a == b", "(= a b)"},
		{"a != b", "(!= a b)"},
		{"a < b", "(< a b)"},
		{"a <= b", "(<= a b)"},
		{"a > b", "(> a b)"},
		{"a >= b", "(>= a b)"},
		{"a && b", "(and a b)"},
		{"a || b", "(or a b)"},
		{"1 < 2 && 3 > 2", "(and (< 1 2) (> 3 2))"},
		{"-x", "(- 0 x)"},
		{"!ok", "(not ok)"},
		{"!!ok", "(not (not ok))"},
		{"-5", "(- 0 5)"},
	}
	for _, tt := range tests {
		if got := lowerInput(t, tt.input); got != tt.want {
			t.Errorf("%q => %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestLowerTernary(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a ? 1 : 2", "(if a 1 2)"},
		{"a ? b : c ? d : e", "(if a b (if c d e))"},
		{"x > 0 ? x : -x", "(if (> x 0) x (- 0 x))"},
	}
	for _, tt := range tests {
		if got := lowerInput(t, tt.input); got != tt.want {
			t.Errorf("%q => %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestLowerArraysAndAccess(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[]", "(list)"},
		{"[1, 2, x]", "(list 1 2 x)"},
		// строковый элемент массива закавычен, как любое строковое выражение
		{`["a", 1]`, `(list (quote "a") 1)`},
		// имя поля при доступе через точку — голый строковый атом
		{"obj.field", `(get obj "field")`},
		{"a.b.c", `(get (get a "b") "c")`},
		{"obj[key]", "(get obj key)"},
		{`obj["k"]`, `(get obj (quote "k"))`},
	}
	for _, tt := range tests {
		if got := lowerInput(t, tt.input); got != tt.want {
			t.Errorf("%q => %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestLowerFunctions(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x => x + 1", "(lambda (x) (+ x 1))"},
		{"() => 1", "(lambda () 1)"},
		{"(a, b) => a", "(lambda (a b) a)"},
		{"f(1, 2)", "(f 1 2)"},
		{"f()", "(f)"},
		{"obj.m(x)", `((get obj "m") x)`},
		{"(x => x)(1)", "((lambda (x) x) 1)"},
	}
	for _, tt := range tests {
		if got := lowerInput(t, tt.input); got != tt.want {
			t.Errorf("%q => %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestLowerObjects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty object", "{}", "null"},
		{"single prop", "{ a: 1 }", "(define a 1)"},
		{"two props", "{ a: 1, b: 2 }", "(progn (define a 1) (define b 2))"},
		{
			"single method with assignment",
			"{ test() { x = 1 } }",
			"(define (test) (define x 1))",
		},
		{
			"method with params",
			"{ add(a, b) { a + b } }",
			"(define (add a b) (+ a b))",
		},
		{
			"mixed entries in source order",
			"{ a: 1, double(x) { x * 2 } }",
			"(progn (define a 1) (define (double x) (* x 2)))",
		},
		{
			"multi-statement method body",
			"{ run() {\n  y = 2\n  y * y\n} }",
			"(define (run) (progn (define y 2) (* y y)))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lowerInput(t, tt.input); got != tt.want {
				t.Errorf("%q => %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestLowerBlocks(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x => {}", "(lambda (x) null)"},
		{"x => { x }", "(lambda (x) x)"},
		{"x => {\n  a = 1\n  a + x\n}", "(lambda (x) (progn (define a 1) (+ a x)))"},
	}
	for _, tt := range tests {
		if got := lowerInput(t, tt.input); got != tt.want {
			t.Errorf("%q => %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestLowerMultilineContinuation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 +\n2", "(+ 1 2)"},
		{"a &&\nb ||\nc", "(or (and a b) c)"},
		{"f(1,\n   2)", "(f 1 2)"},
	}
	for _, tt := range tests {
		if got := lowerInput(t, tt.input); got != tt.want {
			t.Errorf("%q => %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestLowerStringVsSymbol(t *testing.T) {
	// "x" и x обязаны давать разные значения
	str := lowerInput(t, `"x"`)
	sym := lowerInput(t, "x")
	if str == sym {
		t.Fatalf("string and symbol lowered to the same form: %s", str)
	}
}

func TestLowerNumberFormatting(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.0", "10"},
		{"0.5", "0.5"},
		{"1000000", "1e+06"},
	}
	for _, tt := range tests {
		if got := lowerInput(t, tt.input); got != tt.want {
			t.Errorf("%q => %s, want %s", tt.input, got, tt.want)
		}
	}
}
