// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: Severity, a stable numeric Code, a
// message, the primary source.Span, and optional Notes with secondary
// context. Codes are partitioned by phase: 1000s lexical, 2000s syntactic,
// 3000s transform, 4000s wire decoding.
//
// Phases emit through the Reporter interface so they stay decoupled from
// storage and formatting; BagReporter aggregates into a Bag, which supports
// deterministic sorting and first-error extraction. Rendering lives in
// internal/diagfmt, orchestration in internal/driver.
package diag
