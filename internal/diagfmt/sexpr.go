package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"minijs/internal/sexpr"
)

// короткие списки остаются на одной строке
const sexprFlatLimit = 60

// FormatSexprPretty выводит значение с отступами для чтения человеком.
// Строковые атомы показываются в кавычках, как в debug-форме.
func FormatSexprPretty(w io.Writer, v sexpr.Value) error {
	_, err := fmt.Fprintln(w, indentSexpr(v, 0))
	return err
}

func indentSexpr(v sexpr.Value, depth int) string {
	flat := v.String()
	if v.IsAtom() || len(flat) <= sexprFlatLimit {
		return flat
	}

	pad := strings.Repeat("  ", depth+1)
	var sb strings.Builder
	sb.WriteByte('(')
	for i, item := range v.Items {
		if i == 0 && item.IsAtom() {
			// голова формы остаётся на строке открывающей скобки
			sb.WriteString(item.String())
			continue
		}
		sb.WriteByte('\n')
		sb.WriteString(pad)
		sb.WriteString(indentSexpr(item, depth+1))
	}
	sb.WriteByte(')')
	return sb.String()
}
