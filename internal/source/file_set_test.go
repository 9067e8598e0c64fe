package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mjs", []byte("a\nbb\nccc"))
	f := fs.Get(id)

	if len(f.LineIdx) != 2 {
		t.Fatalf("LineIdx length = %d, want 2", len(f.LineIdx))
	}
	if f.LineIdx[0] != 1 || f.LineIdx[1] != 4 {
		t.Errorf("LineIdx = %v, want [1 4]", f.LineIdx)
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("virtual file must carry FileVirtual flag")
	}
}

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	//          0123 456 789
	content := "ab\ncd\nef"
	id := fs.AddVirtual("test.mjs", []byte(content))

	tests := []struct {
		name string
		off  uint32
		line uint32
		col  uint32
	}{
		{"start of file", 0, 1, 1},
		{"second byte", 1, 1, 2},
		{"newline belongs to its line", 2, 1, 3},
		{"start of second line", 3, 2, 1},
		{"middle of second line", 4, 2, 2},
		{"start of third line", 6, 3, 1},
		{"last byte", 7, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start.Line != tt.line || start.Col != tt.col {
				t.Errorf("Resolve(%d) = %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mjs", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dir/test.mjs", []byte("x"))

	if _, ok := fs.GetByPath("dir/test.mjs"); !ok {
		t.Errorf("GetByPath failed for added path")
	}
	// normalizePath должен склеить "dir//test.mjs" и "dir/test.mjs"
	if _, ok := fs.GetByPath("dir//test.mjs"); !ok {
		t.Errorf("GetByPath must normalize the lookup path")
	}
	if _, ok := fs.GetByPath("missing.mjs"); ok {
		t.Errorf("GetByPath found a file that was never added")
	}
}

func TestHashDiffers(t *testing.T) {
	fs := NewFileSet()
	a := fs.Get(fs.AddVirtual("a.mjs", []byte("1 + 2")))
	b := fs.Get(fs.AddVirtual("b.mjs", []byte("1 + 3")))
	c := fs.Get(fs.AddVirtual("c.mjs", []byte("1 + 2")))

	if a.Hash == b.Hash {
		t.Errorf("different content produced identical hashes")
	}
	if a.Hash != c.Hash {
		t.Errorf("identical content produced different hashes")
	}
}

func TestLoadCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.mjs")
	if err := os.WriteFile(path, []byte("a\r\nb\r\nc"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	f := fs.Get(id)

	if string(f.Content) != "a\nb\nc" {
		t.Errorf("CRLF not normalized: %q", f.Content)
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected FileNormalizedCRLF flag")
	}
}

func TestLoadBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.mjs")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBF1 + 2"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	f := fs.Get(id)

	if string(f.Content) != "1 + 2" {
		t.Errorf("BOM not removed: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Errorf("expected FileHadBOM flag")
	}
}
