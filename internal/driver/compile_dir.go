package driver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt — расширение файлов, которые подхватывает пакетная компиляция.
const SourceExt = ".mjs"

// BatchEntry holds the outcome of one file of a directory compile.
type BatchEntry struct {
	Path   string
	Result *CompileResult
	Err    error // I/O failure; source errors live in Result.Bag
}

// CompileDir compiles every *.mjs file directly under dir, in parallel.
// Entries come back sorted by path so output order is deterministic.
func CompileDir(ctx context.Context, dir string, maxDiagnostics int) ([]BatchEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), SourceExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, de.Name()))
	}
	sort.Strings(paths)

	entries := make([]BatchEntry, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Compile(path, maxDiagnostics)
			entries[i] = BatchEntry{Path: path, Result: res, Err: err}
			// ошибки отдельных файлов не валят всю пачку
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
