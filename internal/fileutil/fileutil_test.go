package fileutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeBytes(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadTextDecodesByteOrderMarks(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"plain", []byte("1\n你好"), "1\n你好"},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, []byte("1\nHi")...), "1\nHi"},
		{"utf16 le", []byte{0xFF, 0xFE, '1', 0x00, '\n', 0x00, 0x60, 0x4F}, "1\n你"},
		{"utf16 be", []byte{0xFE, 0xFF, 0x00, '1', 0x00, '\n', 0x4F, 0x60}, "1\n你"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeBytes(t, "sub.srt", tt.data)
			got, err := ReadText(context.Background(), path)
			if err != nil {
				t.Fatalf("ReadText: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ReadText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadTextKeepBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("1")...)
	path := writeBytes(t, "sub.srt", data)

	got, err := ReadText(context.Background(), path, KeepBOM())
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "\ufeff1" {
		t.Fatalf("ReadText = %q", got)
	}
}

func TestReadTextMissingFile(t *testing.T) {
	_, err := ReadText(context.Background(), filepath.Join(t.TempDir(), "none.srt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadTextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadText(ctx, "ignored"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "nested", "out.srt")

	if err := WriteFileAtomic(dst, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	if err := WriteFileAtomic(dst, []byte("second"), 0o600); err != nil {
		t.Fatalf("WriteFileAtomic overwrite: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("content = %q", got)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %o", info.Mode().Perm())
	}
	entries, err := os.ReadDir(filepath.Dir(dst))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}
