package parser_test

import (
	"testing"

	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/lexer"
	"minijs/internal/parser"
	"minijs/internal/source"
	"minijs/internal/token"
)

type parseOutcome struct {
	builder *ast.Builder
	root    ast.ExprID
	bag     *diag.Bag
}

// parseInput прогоняет лексер и парсер над строкой
func parseInput(input string) parseOutcome {
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
	return parseOutcome{builder: builder, root: result.Root, bag: bag}
}

func mustParse(t *testing.T, input string) parseOutcome {
	t.Helper()
	out := parseInput(input)
	if out.bag.HasErrors() {
		first, _ := out.bag.FirstError()
		t.Fatalf("unexpected parse errors for %q: [%s] %s", input, first.Code.ID(), first.Message)
	}
	if !out.root.IsValid() {
		t.Fatalf("no root expression for %q", input)
	}
	return out
}

func rootKind(t *testing.T, input string) ast.ExprKind {
	t.Helper()
	out := mustParse(t, input)
	return out.builder.Exprs.Get(out.root).Kind
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.ExprLitKind
		value string
	}{
		{"42", ast.LitNumber, "42"},
		{"3.14", ast.LitNumber, "3.14"},
		{`"hi"`, ast.LitString, "hi"},
		{`'escaped\n'`, ast.LitString, "escaped\n"},
		{"true", ast.LitBool, "true"},
		{"false", ast.LitBool, "false"},
		{"null", ast.LitNull, "null"},
	}
	for _, tt := range tests {
		out := mustParse(t, tt.input)
		data, ok := out.builder.Exprs.Literal(out.root)
		if !ok {
			t.Errorf("%q: root is not a literal", tt.input)
			continue
		}
		if data.Kind != tt.kind {
			t.Errorf("%q: literal kind = %v, want %v", tt.input, data.Kind, tt.kind)
		}
		if got := out.builder.StringsInterner.MustLookup(data.Value); got != tt.value {
			t.Errorf("%q: literal value = %q, want %q", tt.input, got, tt.value)
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 == (1 + (2 * 3))
	out := mustParse(t, "1 + 2 * 3")
	add, ok := out.builder.Exprs.Binary(out.root)
	if !ok || add.Op != ast.ExprBinaryAdd {
		t.Fatalf("root must be Add")
	}
	mul, ok := out.builder.Exprs.Binary(add.Right)
	if !ok || mul.Op != ast.ExprBinaryMul {
		t.Fatalf("right operand must be Mul")
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// 1 - 2 - 3 == ((1 - 2) - 3)
	out := mustParse(t, "1 - 2 - 3")
	outer, ok := out.builder.Exprs.Binary(out.root)
	if !ok || outer.Op != ast.ExprBinarySub {
		t.Fatalf("root must be Sub")
	}
	inner, ok := out.builder.Exprs.Binary(outer.Left)
	if !ok || inner.Op != ast.ExprBinarySub {
		t.Fatalf("left operand must be the inner Sub")
	}
}

func TestParseGrouping(t *testing.T) {
	out := mustParse(t, "(1 + 2) * 3")
	mul, ok := out.builder.Exprs.Binary(out.root)
	if !ok || mul.Op != ast.ExprBinaryMul {
		t.Fatalf("root must be Mul")
	}
	add, ok := out.builder.Exprs.Binary(mul.Left)
	if !ok || add.Op != ast.ExprBinaryAdd {
		t.Fatalf("left operand must be the grouped Add")
	}
}

func TestParseTernaryRightAssociative(t *testing.T) {
	// a ? b : c ? d : e == a ? b : (c ? d : e)
	out := mustParse(t, "a ? b : c ? d : e")
	outer, ok := out.builder.Exprs.Ternary(out.root)
	if !ok {
		t.Fatalf("root must be Ternary")
	}
	if _, ok := out.builder.Exprs.Ternary(outer.FalseExpr); !ok {
		t.Fatalf("false branch must be the nested Ternary")
	}
}

func TestParseRootKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.ExprKind
	}{
		{"x", ast.ExprIdent},
		{"-x", ast.ExprUnary},
		{"!x", ast.ExprUnary},
		{"a && b", ast.ExprBinary},
		{"[1, 2]", ast.ExprArray},
		{"{}", ast.ExprObject},
		{"{ a: 1 }", ast.ExprObject},
		{"x => x", ast.ExprArrow},
		{"() => 1", ast.ExprArrow},
		{"(a, b) => a", ast.ExprArrow},
		{"f(1)", ast.ExprCall},
		{"a.b", ast.ExprMember},
		{"a[0]", ast.ExprIndex},
		{"(x)", ast.ExprIdent},
	}
	for _, tt := range tests {
		if got := rootKind(t, tt.input); got != tt.kind {
			t.Errorf("%q: root kind = %s, want %s", tt.input, got, tt.kind)
		}
	}
}

func TestParsePostfixChain(t *testing.T) {
	// a.b[0](x) — член, индекс, вызов слева направо
	out := mustParse(t, "a.b[0](x)")
	call, ok := out.builder.Exprs.Call(out.root)
	if !ok {
		t.Fatalf("root must be Call")
	}
	index, ok := out.builder.Exprs.Index(call.Callee)
	if !ok {
		t.Fatalf("callee must be Index")
	}
	member, ok := out.builder.Exprs.Member(index.Target)
	if !ok {
		t.Fatalf("index target must be Member")
	}
	if got := out.builder.StringsInterner.MustLookup(member.Field); got != "b" {
		t.Errorf("member field = %q, want %q", got, "b")
	}
}

func TestParseObjectEntries(t *testing.T) {
	out := mustParse(t, "{ a: 1, add(x, y) { x + y }, b: 2 }")
	obj, ok := out.builder.Exprs.Object(out.root)
	if !ok {
		t.Fatalf("root must be Object")
	}
	if len(obj.Props) != 3 {
		t.Fatalf("props = %d, want 3", len(obj.Props))
	}

	// порядок записей — исходный
	first := out.builder.Props.Get(obj.Props[0])
	if first.IsMethod || out.builder.StringsInterner.MustLookup(first.Key) != "a" {
		t.Errorf("first entry must be plain prop 'a'")
	}
	method := out.builder.Props.Get(obj.Props[1])
	if !method.IsMethod || out.builder.StringsInterner.MustLookup(method.Key) != "add" {
		t.Errorf("second entry must be method 'add'")
	}
	if len(method.Params) != 2 {
		t.Errorf("method params = %d, want 2", len(method.Params))
	}
}

func TestParseObjectMultiline(t *testing.T) {
	input := "{\n  a: 1,\n  b: 2\n}"
	out := mustParse(t, input)
	obj, ok := out.builder.Exprs.Object(out.root)
	if !ok || len(obj.Props) != 2 {
		t.Fatalf("multiline object must parse to 2 props")
	}
}

func TestParseTrailingCommas(t *testing.T) {
	for _, input := range []string{"[1, 2,]", "{ a: 1, }", "f(1, 2,)"} {
		mustParse(t, input)
	}
}

func TestParseBlockStatements(t *testing.T) {
	out := mustParse(t, "x => {\n  a = 1\n  a + x\n}")
	arrow, ok := out.builder.Exprs.Arrow(out.root)
	if !ok {
		t.Fatalf("root must be Arrow")
	}
	block, ok := out.builder.Exprs.Block(arrow.Body)
	if !ok {
		t.Fatalf("arrow body must be Block")
	}
	if len(block.Stmts) != 2 {
		t.Fatalf("statements = %d, want 2", len(block.Stmts))
	}
	if assign, ok := out.builder.Stmts.Assign(block.Stmts[0]); !ok {
		t.Errorf("first statement must be Assign")
	} else if got := out.builder.StringsInterner.MustLookup(assign.Name); got != "a" {
		t.Errorf("assign name = %q, want %q", got, "a")
	}
	if _, ok := out.builder.Stmts.Expr(block.Stmts[1]); !ok {
		t.Errorf("second statement must be a bare expression")
	}
}

func TestParseContinuationLines(t *testing.T) {
	// оператор в конце строки склеивает физические строки
	for _, input := range []string{"1 +\n2", "a &&\nb", "x ?\n1 :\n2"} {
		mustParse(t, input)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"empty program", "", diag.SynExpectExpression},
		{"dangling operator", "1 +", diag.SynUnexpectedEOF},
		{"unclosed paren", "(1 + 2", diag.SynUnclosedParen},
		{"unclosed bracket", "[1, 2", diag.SynUnclosedBracket},
		{"unclosed brace", "{ a: 1", diag.SynUnclosedBrace},
		{"leftover tokens", "1 2", diag.SynLeftoverTokens},
		{"assignment in expression", "a = 1", diag.SynIllegalAssignment},
		{"assignment nested", "x => {y = (a = 1)\ny}", diag.SynIllegalAssignment},
		{"bad object entry", "{ a 1 }", diag.SynBadObjectEntry},
		{"object entry without name", "{ 1: 2 }", diag.SynBadObjectEntry},
		{"missing colon in ternary", "a ? b", diag.SynExpectColon},
		{"missing property name", "a.", diag.SynExpectIdentifier},
		{"bad arrow params", "(a, 1) => a", diag.SynBadArrowParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := parseInput(tt.input)
			if !out.bag.HasErrors() {
				t.Fatalf("expected parse error for %q", tt.input)
			}
			found := false
			for _, d := range out.bag.Items() {
				if d.Code == tt.code {
					found = true
					break
				}
			}
			if !found {
				first, _ := out.bag.FirstError()
				t.Errorf("%q: expected code %s, got [%s] %s", tt.input, tt.code.ID(), first.Code.ID(), first.Message)
			}
		})
	}
}

func TestParseTopLevelLeadingNewlines(t *testing.T) {
	mustParse(t, "\n\n1 + 2\n\n")
}

func TestParseErrorsReportOnce(t *testing.T) {
	// одна ошибка пользователя — один diagnostic: отчитывается только
	// место сбоя, внешние кадры рекурсии не добавляют каскадных ошибок
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"dangling binary operator", "1 +", diag.SynUnexpectedEOF},
		{"dangling unary operator", "!", diag.SynUnexpectedEOF},
		{"operator instead of operand", "1 + * 2", diag.SynUnexpectedToken},
		{"truncated ternary", "a ? 1 :", diag.SynUnexpectedEOF},
		{"truncated assignment", "x => {y = }", diag.SynUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := parseInput(tt.input)
			errCount := 0
			for _, d := range out.bag.Items() {
				if d.Severity == diag.SevError {
					errCount++
				}
			}
			if errCount != 1 {
				t.Fatalf("%q: %d error diagnostics, want exactly 1", tt.input, errCount)
			}
			first, _ := out.bag.FirstError()
			if first.Code != tt.code {
				t.Errorf("%q: code = %s, want %s", tt.input, first.Code.ID(), tt.code.ID())
			}
		})
	}
}
