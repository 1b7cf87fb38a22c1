// Package atomicfile writes files through a temp file in the destination
// directory followed by a rename, so readers never observe a partially
// written file.
package atomicfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// osRename is a variable to allow testing of rename errors.
var osRename = os.Rename

// tempFileWrite is a function variable for writing to temp files (for testing).
var tempFileWrite = func(f *os.File, data []byte) (int, error) {
	return f.Write(data)
}

// tempFileClose is a function variable for closing temp files (for testing).
var tempFileClose = func(f io.Closer) error {
	return f.Close()
}

// WriteFile writes data to path atomically. The file ends up with mode perm.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	tempPath, err := stage(filepath.Dir(path), filepath.Base(path), data, perm)
	if err != nil {
		return err
	}

	if err := osRename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Batch stages several files and moves them into place together.
// Nothing is visible at the final paths until Commit.
type Batch struct {
	perm   os.FileMode
	staged []stagedFile
}

type stagedFile struct {
	temp  string
	final string
}

// NewBatch returns an empty batch whose files will have mode perm.
func NewBatch(perm os.FileMode) *Batch {
	return &Batch{perm: perm}
}

// Add writes data to a temp file next to path. On error every file staged so
// far is removed.
func (b *Batch) Add(path string, data []byte) error {
	tempPath, err := stage(filepath.Dir(path), filepath.Base(path), data, b.perm)
	if err != nil {
		b.Abort()
		return err
	}
	b.staged = append(b.staged, stagedFile{temp: tempPath, final: path})
	return nil
}

// Commit renames every staged file to its final path and returns the paths in
// the order they were added.
func (b *Batch) Commit() ([]string, error) {
	paths := make([]string, 0, len(b.staged))
	for i, s := range b.staged {
		if err := osRename(s.temp, s.final); err != nil {
			for _, rest := range b.staged[i:] {
				_ = os.Remove(rest.temp)
			}
			b.staged = nil
			return paths, fmt.Errorf("failed to rename %s: %w", filepath.Base(s.final), err)
		}
		paths = append(paths, s.final)
	}
	b.staged = nil
	return paths, nil
}

// Abort removes all staged temp files.
func (b *Batch) Abort() {
	for _, s := range b.staged {
		_ = os.Remove(s.temp)
	}
	b.staged = nil
}

func stage(dir, name string, data []byte, perm os.FileMode) (string, error) {
	tempFile, err := os.CreateTemp(dir, "."+name+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFileWrite(tempFile, data); err != nil {
		_ = tempFileClose(tempFile)
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := tempFileClose(tempFile); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	// CreateTemp always uses 0600
	if err := os.Chmod(tempPath, perm); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("failed to set mode on %s: %w", name, err)
	}

	return tempPath, nil
}
