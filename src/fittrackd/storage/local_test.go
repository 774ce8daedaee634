package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func setupLocalBackend(t *testing.T) *LocalBackend {
	t.Helper()

	backend, err := NewLocal(LocalConfig{BasePath: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create local backend: %v", err)
	}
	return backend
}

func TestLocalUploadDownload(t *testing.T) {
	backend := setupLocalBackend(t)
	ctx := context.Background()

	content := []byte("snapshot payload")
	err := backend.Upload(ctx, "snapshots/test.db.xz", bytes.NewReader(content), int64(len(content)), "application/x-xz")
	if err != nil {
		t.Fatalf("failed to upload: %v", err)
	}

	reader, info, err := backend.Download(ctx, "snapshots/test.db.xz")
	if err != nil {
		t.Fatalf("failed to download: %v", err)
	}
	defer reader.Close()

	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("failed to read downloaded object: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("downloaded content mismatch: got %q", got)
	}
	if info.Size != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), info.Size)
	}
}

func TestLocalUpload_SizeMismatch(t *testing.T) {
	backend := setupLocalBackend(t)

	err := backend.Upload(context.Background(), "bad.bin", strings.NewReader("short"), 100, "")
	if err == nil {
		t.Fatal("expected size mismatch error")
	}

	// The partial file must not be left behind
	exists, err := backend.Exists(context.Background(), "bad.bin")
	if err != nil {
		t.Fatalf("failed to check existence: %v", err)
	}
	if exists {
		t.Fatal("expected failed upload to be cleaned up")
	}
}

func TestLocalExistsAndDelete(t *testing.T) {
	backend := setupLocalBackend(t)
	ctx := context.Background()

	exists, err := backend.Exists(ctx, "missing.bin")
	if err != nil {
		t.Fatalf("failed to check existence: %v", err)
	}
	if exists {
		t.Fatal("expected missing object to not exist")
	}

	if err := backend.Upload(ctx, "a/b.bin", strings.NewReader("x"), 1, ""); err != nil {
		t.Fatalf("failed to upload: %v", err)
	}

	exists, err = backend.Exists(ctx, "a/b.bin")
	if err != nil || !exists {
		t.Fatalf("expected uploaded object to exist: %v", err)
	}

	if err := backend.Delete(ctx, "a/b.bin"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}

	// Deleting a missing object is not an error
	if err := backend.Delete(ctx, "a/b.bin"); err != nil {
		t.Fatalf("expected idempotent delete, got: %v", err)
	}
}

func TestLocalList_PrefixAndOrder(t *testing.T) {
	backend := setupLocalBackend(t)
	ctx := context.Background()

	for _, key := range []string{"snapshots/one.xz", "snapshots/two.xz", "other/three.xz"} {
		if err := backend.Upload(ctx, key, strings.NewReader("x"), 1, ""); err != nil {
			t.Fatalf("failed to upload %s: %v", key, err)
		}
		// Distinct modification times for deterministic ordering
		time.Sleep(10 * time.Millisecond)
	}

	objects, err := backend.List(ctx, "snapshots")
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(objects) != 2 {
		t.Fatalf("expected 2 objects under snapshots/, got %d", len(objects))
	}
	for _, obj := range objects {
		if !strings.HasPrefix(obj.Key, "snapshots/") {
			t.Fatalf("prefix filter leaked key %q", obj.Key)
		}
	}
	if objects[0].LastModified.After(objects[1].LastModified) {
		t.Fatal("expected objects ordered oldest first")
	}
}

func TestLocalFullPath_ConfinedToBase(t *testing.T) {
	backend := setupLocalBackend(t)

	escaped := backend.fullPath("../../etc/passwd")
	if !strings.HasPrefix(escaped, backend.basePath) {
		t.Fatalf("path traversal escaped the base directory: %s", escaped)
	}
}
