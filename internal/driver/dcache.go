package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"minijs/internal/sexpr"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest — SHA-256 содержимого исходника, ключ кэша.
type Digest = [32]byte

// DiskCache хранит скомпилированные артефакты по хешу исходника на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores one cached compile artifact.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// Where the artifact came from (informational, not part of the key)
	Path string

	// Serialized S-expression output
	Output string

	// Hash of the source content the output was produced from
	SourceHash Digest
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "out".
	return filepath.Join(c.dir, "out", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err = os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err = enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
// Расхождение схемы считается промахом, не ошибкой.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим в фоне
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// CompileCached compiles through the cache: on a hash hit the stored
// output is returned without re-running the pipeline.
func CompileCached(cache *DiskCache, path string, maxDiagnostics int) (*CompileResult, bool, error) {
	tok, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, false, err
	}

	key := tok.File.Hash
	var payload DiskPayload
	if hit, err := cache.Get(key, &payload); err == nil && hit {
		// повреждённый артефакт трактуем как промах
		if value, decErr := sexpr.Deserialize(payload.Output); decErr == nil {
			return &CompileResult{
				FileSet: tok.FileSet,
				File:    tok.File,
				Value:   value,
				Output:  payload.Output,
				Bag:     tok.Bag,
			}, true, nil
		}
	}

	parsed, err := parseTokens(tok, maxDiagnostics)
	if err != nil {
		return nil, false, err
	}
	res := lower(parsed)
	if !res.Bag.HasErrors() {
		// сбой записи в кэш не валит компиляцию
		_ = cache.Put(key, &DiskPayload{
			Schema:     diskCacheSchemaVersion,
			Path:       path,
			Output:     res.Output,
			SourceHash: key,
		})
	}
	return res, false, nil
}
