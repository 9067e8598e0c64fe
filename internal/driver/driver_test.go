package driver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"minijs/internal/diag"
	"minijs/internal/driver"
)

func TestCompileSource(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"arithmetic", "1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"lambda", "(x, y) => x + y", "(lambda (x y) (+ x y))"},
		{"assign block", "x => {\ny = 1\ny\n}", "(lambda (x) (progn (define y 1) y))"},
		{"object", "{ a: 1 }", "(define a 1)"},
		{"string literal", "'a b'", "(quote \x00STR:a+b)"},
		{"member call", "console.log(x)", "((get console \x00STR:log) x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := driver.CompileSource("test.mjs", []byte(tt.input), 100)
			if err != nil {
				t.Fatalf("CompileSource: %v", err)
			}
			if res.Bag.HasErrors() {
				d, _ := res.Bag.FirstError()
				t.Fatalf("unexpected diagnostic: %s: %s", d.Code.ID(), d.Message)
			}
			if res.Output != tt.want {
				t.Errorf("Output = %q, want %q", res.Output, tt.want)
			}
			if err := res.Err(); err != nil {
				t.Errorf("Err() = %v on clean compile", err)
			}
		})
	}
}

func TestCompileSourceErrors(t *testing.T) {
	res, err := driver.CompileSource("bad.mjs", []byte("1 +"), 100)
	if err != nil {
		t.Fatalf("CompileSource: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatalf("expected diagnostics for %q", "1 +")
	}
	if res.Output != "" {
		t.Errorf("Output = %q on failed compile, want empty", res.Output)
	}

	cerr := res.Err()
	if cerr == nil {
		t.Fatalf("Err() = nil on failed compile")
	}
	var ce *driver.CompileError
	if !errors.As(cerr, &ce) {
		t.Fatalf("Err() = %T, want *CompileError", cerr)
	}
	if ce.Diag.Code != diag.SynUnexpectedEOF {
		t.Errorf("Err() code = %s, want %s", ce.Diag.Code.ID(), diag.SynUnexpectedEOF.ID())
	}
	// обрыв выражения — ровно одна ошибка, без каскадных дубликатов
	if n := res.Bag.Len(); n != 1 {
		t.Errorf("Bag.Len() = %d, want 1", n)
	}
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.mjs")
	if err := os.WriteFile(path, []byte("a && b || c"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := driver.Compile(path, 100)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if want := "(or (and a b) c)"; res.Output != want {
		t.Errorf("Output = %q, want %q", res.Output, want)
	}
}

func TestCompileMissingFile(t *testing.T) {
	_, err := driver.Compile(filepath.Join(t.TempDir(), "nope.mjs"), 100)
	if err == nil {
		t.Fatalf("Compile on missing file must return an I/O error")
	}
}

func TestCompileDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.mjs":    "2 * 2",
		"a.mjs":    "1 + 1",
		"skip.txt": "not a source file",
		"bad.mjs":  "1 +",
	}
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := driver.CompileDir(context.Background(), dir, 100)
	if err != nil {
		t.Fatalf("CompileDir: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3 (only *%s)", len(entries), driver.SourceExt)
	}

	// порядок детерминирован: по пути
	wantOrder := []string{"a.mjs", "b.mjs", "bad.mjs"}
	for i, want := range wantOrder {
		if got := filepath.Base(entries[i].Path); got != want {
			t.Errorf("entries[%d] = %s, want %s", i, got, want)
		}
	}

	if entries[0].Result.Output != "(+ 1 1)" {
		t.Errorf("a.mjs output = %q", entries[0].Result.Output)
	}
	if entries[1].Result.Output != "(* 2 2)" {
		t.Errorf("b.mjs output = %q", entries[1].Result.Output)
	}
	if !entries[2].Result.Bag.HasErrors() {
		t.Errorf("bad.mjs compiled without diagnostics")
	}
	for _, e := range entries {
		if e.Err != nil {
			t.Errorf("%s: unexpected I/O error: %v", e.Path, e.Err)
		}
	}
}

func TestCompileDirCancelled(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.mjs"), []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.CompileDir(ctx, dir, 100); err == nil {
		t.Fatalf("CompileDir with cancelled context must fail")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("minijs-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	key := driver.Digest{1, 2, 3}
	var got driver.DiskPayload
	if hit, err := cache.Get(key, &got); err != nil || hit {
		t.Fatalf("Get on empty cache = (%v, %v), want miss", hit, err)
	}

	put := driver.DiskPayload{
		Schema:     1,
		Path:       "main.mjs",
		Output:     "(+ 1 2)",
		SourceHash: key,
	}
	if err := cache.Put(key, &put); err != nil {
		t.Fatalf("Put: %v", err)
	}

	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatalf("Get after Put = miss")
	}
	if got.Output != put.Output || got.Path != put.Path || got.SourceHash != key {
		t.Errorf("Get = %+v, want %+v", got, put)
	}
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("minijs-test")
	if err != nil {
		t.Fatal(err)
	}

	key := driver.Digest{9}
	stale := &driver.DiskPayload{Schema: 0, Output: "stale"}
	if err := cache.Put(key, stale); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got driver.DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Errorf("stale schema must read back as a miss")
	}
}

func TestCompileCached(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("minijs-test")
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "main.mjs")
	if err := os.WriteFile(path, []byte("1 + 2"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, cached, err := driver.CompileCached(cache, path, 100)
	if err != nil {
		t.Fatalf("CompileCached: %v", err)
	}
	if cached {
		t.Fatalf("first compile must be a cache miss")
	}
	if res.Output != "(+ 1 2)" {
		t.Errorf("Output = %q", res.Output)
	}

	res2, cached2, err := driver.CompileCached(cache, path, 100)
	if err != nil {
		t.Fatalf("CompileCached (second): %v", err)
	}
	if !cached2 {
		t.Fatalf("second compile must be a cache hit")
	}
	if res2.Output != res.Output {
		t.Errorf("cached Output = %q, want %q", res2.Output, res.Output)
	}

	// после правки исходника хеш меняется — снова промах
	if err := os.WriteFile(path, []byte("3 * 4"), 0o644); err != nil {
		t.Fatal(err)
	}
	res3, cached3, err := driver.CompileCached(cache, path, 100)
	if err != nil {
		t.Fatalf("CompileCached (edited): %v", err)
	}
	if cached3 {
		t.Fatalf("edited source must be a cache miss")
	}
	if res3.Output != "(* 3 4)" {
		t.Errorf("Output = %q", res3.Output)
	}
}

func TestCompileCachedErrorsNotStored(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("minijs-test")
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.mjs")
	if err := os.WriteFile(path, []byte("(1 + 2"), 0o644); err != nil {
		t.Fatal(err)
	}

	for i := range 2 {
		res, cached, err := driver.CompileCached(cache, path, 100)
		if err != nil {
			t.Fatalf("CompileCached: %v", err)
		}
		if cached {
			t.Fatalf("run %d: failed compiles must never hit the cache", i)
		}
		if !res.Bag.HasErrors() {
			t.Fatalf("run %d: expected diagnostics", i)
		}
	}
}

func TestTokenizeSource(t *testing.T) {
	res := driver.TokenizeSource("t.mjs", []byte("a + 1"), 100)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	// ident, plus, number, EOF
	if len(res.Tokens) != 4 {
		t.Errorf("tokens = %d, want 4", len(res.Tokens))
	}
}
