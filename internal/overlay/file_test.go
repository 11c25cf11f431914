package overlay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestFileKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.json")

	kv, err := NewFileKV(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}
	if err := kv.Set("likedArticles", []byte(`["1","3"]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	kv.Close()

	reopened, err := NewFileKV(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, ok, err := reopened.Get("likedArticles")
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if string(got) != `["1","3"]` {
		t.Errorf("Get after reopen = %s", got)
	}
}

func TestFileKVMissingKey(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "overlay.json"), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}

	_, ok, err := kv.Get("nothing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Get on missing key reported ok")
	}
}

func TestFileKVDelete(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "overlay.json"), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}

	if err := kv.Set("comments-1", []byte("[]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Delete("comments-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := kv.Get("comments-1"); ok {
		t.Error("key survived Delete")
	}

	// Deleting a missing key is not an error.
	if err := kv.Delete("comments-1"); err != nil {
		t.Errorf("Delete on missing key failed: %v", err)
	}
}

func TestFileKVCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	kv, err := NewFileKV(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFileKV on corrupt file failed: %v", err)
	}
	if _, ok, _ := kv.Get("likedArticles"); ok {
		t.Error("corrupt file should read as empty")
	}
}

func TestFileKVCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "overlay.json")

	kv, err := NewFileKV(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}
	if err := kv.Set("k", []byte(`"v"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("overlay file not created: %v", err)
	}
}
