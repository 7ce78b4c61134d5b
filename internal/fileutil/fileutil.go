package fileutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type readOptions struct {
	keepBOM bool
}

// ReadOption adjusts ReadText.
type ReadOption func(*readOptions)

// KeepBOM returns the file bytes as-is instead of decoding byte order marks.
func KeepBOM() ReadOption {
	return func(o *readOptions) { o.keepBOM = true }
}

// ReadText reads a whole text file. By default a UTF-8 byte order mark is
// dropped and UTF-16 files with a BOM are decoded to UTF-8.
func ReadText(ctx context.Context, path string, opts ...ReadOption) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var options readOptions
	for _, opt := range opts {
		opt(&options)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var reader io.Reader = file
	if !options.keepBOM {
		reader = transform.NewReader(file, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFileAtomic writes data to a temp file beside dst and renames it into
// place so readers never observe a partial file.
func WriteFileAtomic(dst string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	written, err := tmp.Write(data)
	if err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if written != len(data) {
		_ = tmp.Close()
		return fmt.Errorf("write size mismatch: expected %d bytes, wrote %d bytes", len(data), written)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod %s: %w", dst, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return fmt.Errorf("rename into %s: %w", dst, err)
	}
	return nil
}
