package fileutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shader.vert")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadFileMissing(t *testing.T) {
	buf, err := ReadFile(filepath.Join(t.TempDir(), "does-not-exist.frag"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
	if buf != nil || len(buf) != 0 {
		t.Errorf("expected nil buffer, got %d bytes", len(buf))
	}
}

func TestReadFileEmpty(t *testing.T) {
	buf, err := ReadFile(writeTemp(t, nil))
	if !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
	if buf != nil {
		t.Errorf("expected nil buffer, got %d bytes", len(buf))
	}
}

func TestReadFileSizes(t *testing.T) {
	// 4096 is the usual stdio block size; the boundaries around it and its
	// multiples must come back intact.
	sizes := []int{1, 2, 511, 512, 513, 4095, 4096, 4097, 8192, 3 * 4096}
	for _, n := range sizes {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte('a' + i%26)
		}
		buf, err := ReadFile(writeTemp(t, data))
		if err != nil {
			t.Fatalf("size %d: unexpected error %v", n, err)
		}
		if len(buf) != n+1 {
			t.Fatalf("size %d: got length %d, want %d", n, len(buf), n+1)
		}
		if !bytes.Equal(buf[:n], data) {
			t.Errorf("size %d: content mismatch", n)
		}
		if buf[n] != 0 {
			t.Errorf("size %d: last byte = %q, want null terminator", n, buf[n])
		}
	}
}

func TestReadStringShaderSource(t *testing.T) {
	src := "#version 410 core\nvoid main() {}\n"
	s, err := ReadString(writeTemp(t, []byte(src)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(s, "\x00") {
		t.Fatalf("expected null-terminated string, got %q", s)
	}
	if strings.TrimSuffix(s, "\x00") != src {
		t.Errorf("got %q, want %q", s, src)
	}
}

func BenchmarkReadFile(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.frag")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 16*1024), 0o644); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ReadFile(path); err != nil {
			b.Fatal(err)
		}
	}
}
