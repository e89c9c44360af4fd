package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"uitext-generator/internal/diagnostic"
)

const filePerm = 0o644

// Writer persists rendered headers.
type Writer struct {
	fs billy.Filesystem
}

// NewWriter returns a Writer on fs.
func NewWriter(fs billy.Filesystem) *Writer {
	return &Writer{fs: fs}
}

// WriteFile replaces path with content. The content is written to a
// temporary sibling and renamed over path, so readers see either the old or
// the new header. The parent directory must already exist.
func (w *Writer) WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)

	info, err := w.fs.Stat(dir)
	if err != nil {
		return diagnostic.IO(path, fmt.Errorf("output directory: %w", err))
	}

	if !info.IsDir() {
		return diagnostic.IO(path, fmt.Errorf("output directory %s is not a directory", dir))
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+".tmp")

	if err := w.writeTemp(tmpPath, content); err != nil {
		_ = w.fs.Remove(tmpPath)
		return diagnostic.IO(path, fmt.Errorf("writing temporary file: %w", err))
	}

	if err := w.fs.Rename(tmpPath, path); err != nil {
		_ = w.fs.Remove(tmpPath)
		return diagnostic.IO(path, fmt.Errorf("replacing file: %w", err))
	}

	return nil
}

func (w *Writer) writeTemp(path string, content []byte) error {
	f, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}
