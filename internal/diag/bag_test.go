package diag

import (
	"testing"

	"minijs/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for range 5 {
		bag.Add(NewError(SynUnexpectedToken, source.Span{}, "boom"))
	}
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (limit)", bag.Len())
	}

	if added := bag.Add(NewError(SynUnexpectedToken, source.Span{}, "over")); added {
		t.Errorf("Add over limit must return false")
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatalf("fresh bag must be clean")
	}

	bag.Add(New(SevWarning, LexUnknownChar, source.Span{}, "warn"))
	if bag.HasErrors() {
		t.Errorf("warning must not count as error")
	}
	if !bag.HasWarnings() {
		t.Errorf("HasWarnings() = false after warning")
	}

	bag.Add(NewError(SynUnexpectedEOF, source.Span{}, "eof"))
	if !bag.HasErrors() {
		t.Errorf("HasErrors() = false after error")
	}
}

func TestBagFirstError(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevWarning, LexUnknownChar, source.Span{}, "warn"))
	bag.Add(NewError(SynUnexpectedEOF, source.Span{}, "first"))
	bag.Add(NewError(SynExpectExpression, source.Span{}, "second"))

	d, found := bag.FirstError()
	if !found {
		t.Fatalf("FirstError() found nothing")
	}
	if d.Message != "first" {
		t.Errorf("FirstError() = %q, want %q", d.Message, "first")
	}
}

func TestBagSortDeterministic(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(SynUnexpectedToken, source.Span{File: 0, Start: 10, End: 11}, "later"))
	bag.Add(NewError(LexUnknownChar, source.Span{File: 0, Start: 2, End: 3}, "earlier"))
	bag.Sort()

	items := bag.Items()
	if items[0].Message != "earlier" || items[1].Message != "later" {
		t.Errorf("Sort() did not order by span start")
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{TransformInternal, "TRN3001"},
		{DecUnbalancedList, "DEC4001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCodeTitles(t *testing.T) {
	for _, code := range []Code{
		LexUnknownChar, LexUnterminatedString, LexBadNumber,
		SynUnexpectedToken, SynIllegalAssignment, SynBadObjectEntry,
		TransformInternal,
		DecUnbalancedList, DecTrailingInput, DecEmptyInput,
	} {
		if code.Title() == "" || code.Title() == "unknown" {
			t.Errorf("code %s has no title", code.ID())
		}
	}
}

func TestWithNote(t *testing.T) {
	d := NewError(SynUnclosedParen, source.Span{Start: 5, End: 6}, "missing ')'").
		WithNote(source.Span{Start: 0, End: 1}, "opened here")
	if len(d.Notes) != 1 {
		t.Fatalf("Notes = %d, want 1", len(d.Notes))
	}
	if d.Notes[0].Msg != "opened here" {
		t.Errorf("note msg = %q", d.Notes[0].Msg)
	}
}
