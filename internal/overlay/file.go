package overlay

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// FileKV persists the overlay as a single JSON document on disk, one
// top-level property per key. The whole file is rewritten on every Set,
// which keeps the semantics identical to the in-memory map: last write
// wins, no partial updates.
type FileKV struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
	log  zerolog.Logger
}

// NewFileKV opens (or creates) the overlay file at path. A corrupt or
// unreadable file is treated as empty rather than an error: the overlay
// degrades, the static content still serves.
func NewFileKV(path string, log zerolog.Logger) (*FileKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create overlay directory: %w", err)
	}

	kv := &FileKV{
		path: path,
		data: make(map[string]json.RawMessage),
		log:  log.With().Str("component", "overlay-file").Logger(),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay file: %w", err)
	}

	if err := json.Unmarshal(raw, &kv.data); err != nil {
		kv.log.Debug().Err(err).Str("path", path).Msg("Corrupt overlay file, starting empty")
		kv.data = make(map[string]json.RawMessage)
	}

	return kv, nil
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	f.data[key] = stored
	return f.flush()
}

func (f *FileKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

func (f *FileKV) Close() error {
	return nil
}

// flush rewrites the whole file. Caller holds the lock.
func (f *FileKV) flush() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode overlay: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write overlay file: %w", err)
	}
	return nil
}
