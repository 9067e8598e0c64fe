package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"minijs/internal/diag"
	"minijs/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts)
		printUnderline(w, fs, d.Primary, opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				printNoteHeader(w, fs, note, opts)
				printUnderline(w, fs, note.Span, opts)
			}
		}
	}
}

func printHeader(w io.Writer, fs *source.FileSet, span source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	path, start := locate(fs, span, opts.PathMode)
	sevText := sev.String()
	codeText := code.ID()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
		codeText = color.New(color.Bold).Sprint(codeText)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, codeText, msg)
}

func printNoteHeader(w io.Writer, fs *source.FileSet, note diag.Note, opts PrettyOpts) {
	path, start := locate(fs, note.Span, opts.PathMode)
	label := "note"
	if opts.Color {
		label = color.New(color.FgCyan).Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, label, note.Msg)
}

// printUnderline печатает строку исходника и ^~~~ под span-ом.
// Ширина подчёркивания считается в дисплейных колонках, не в байтах.
func printUnderline(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	file := fs.Get(span.File)
	if file == nil || span.Empty() && span.Start == 0 && span.End == 0 {
		return
	}

	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := runewidth.StringWidth(prefix)

	// на многострочном span подчёркиваем до конца первой строки
	spanEnd := len(line)
	if start.Line == end.Line && int(end.Col-1) <= len(line) {
		spanEnd = int(end.Col - 1)
	}
	width := 1
	if int(start.Col-1) < spanEnd {
		width = runewidth.StringWidth(line[start.Col-1 : spanEnd])
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func locate(fs *source.FileSet, span source.Span, mode PathMode) (string, source.LineCol) {
	file := fs.Get(span.File)
	if file == nil {
		return "<unknown>", source.LineCol{Line: 1, Col: 1}
	}
	start, _ := fs.Resolve(span)
	return formatPath(file.Path, mode), start
}

func formatPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if cwd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(cwd, path); err == nil {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
