package diag

// Severity ranks a diagnostic. Every pipeline phase (lexer, parser,
// transform, decoder) reports through the same scale; only SevError
// stops compilation.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for diagnostics that do not fail the compile.
	SevWarning
	// SevError is for diagnostics that make the compile fail.
	SevError
)

// String returns the uppercase label used in rendered output.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
