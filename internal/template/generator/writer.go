package generator

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tacogips/create-bun-stack/internal/debug"
)

const (
	dirMode  os.FileMode = 0755
	fileMode os.FileMode = 0644
)

// Writer writes files into a target filesystem.
type Writer interface {
	// WriteFile writes content to a file, replacing any existing file.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CopyFrom streams the bytes of src (on the source filesystem) into path.
	CopyFrom(src afero.Fs, srcPath, path string, mode os.FileMode) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer on top of an afero filesystem.
// Errors from the filesystem are returned as-is.
type FileWriter struct {
	fs afero.Fs
}

// NewFileWriter creates a new FileWriter for fs.
func NewFileWriter(fs afero.Fs) *FileWriter {
	return &FileWriter{fs: fs}
}

// WriteFile writes content to path. Parent directories are created first.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[generator] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	if err := w.CreateDir(filepath.Dir(path)); err != nil {
		return err
	}

	return afero.WriteFile(w.fs, path, content, mode)
}

// CopyFrom copies srcPath from src into path without any transformation.
func (w *FileWriter) CopyFrom(src afero.Fs, srcPath, path string, mode os.FileMode) error {
	debug.Debug("[generator] Copying bytes: %s -> %s", srcPath, path)

	if err := w.CreateDir(filepath.Dir(path)); err != nil {
		return err
	}

	in, err := src.Open(srcPath)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// CreateDir creates a directory and any necessary parent directories.
// It succeeds if the directory already exists.
func (w *FileWriter) CreateDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return w.fs.MkdirAll(path, dirMode)
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := w.fs.Stat(path)
	return err == nil
}
