package parser

import (
	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/source"
	"minijs/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Root ast.ExprID
	Bag  *diag.Bag
}

// Parser — состояние парсера на одну программу.
// Курсор — индекс в буфере токенов; произвольный lookahead нужен для
// различения списка параметров стрелочной функции и скобочной группы.
type Parser struct {
	toks     []token.Token // все токены программы, включая завершающий EOF
	pos      int
	arenas   *ast.Builder
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseProgram — входная точка для разбора одной программы.
// Требует уже собранный буфер токенов (driver.Tokenize).
// Программа — одно выражение: литерал, объектный литерал и т.д.
func ParseProgram(
	fs *source.FileSet,
	toks []token.Token,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		toks:   toks,
		pos:    0,
		arenas: arenas,
		fs:     fs,
		opts:   opts,
	}

	root := p.parseProgram()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Root: root,
		Bag:  bag,
	}
}

func (p *Parser) parseProgram() ast.ExprID {
	p.skipNewlines()
	if p.at(token.EOF) {
		p.err(diag.SynExpectExpression, "empty program")
		return ast.NoExprID
	}

	root, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID
	}

	// Все токены кроме завершающего EOF должны быть потреблены.
	p.skipNewlines()
	if !p.at(token.EOF) {
		p.err(diag.SynLeftoverTokens, "leftover input after expression")
		return ast.NoExprID
	}
	return root
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}
