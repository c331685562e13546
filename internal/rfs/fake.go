package rfs

import (
	"bytes"
	"io"
	"os"
	"time"
)

// Fake is an in-memory [FS] for tests. No disk, no oracle binary required.
type Fake struct {
	files map[string][]byte
}

// NewFake returns an empty in-memory filesystem.
func NewFake() *Fake {
	return &Fake{files: map[string][]byte{}}
}

// Seed pre-populates a file, as if it had been written before the test
// began.
func (f *Fake) Seed(path string, data []byte) {
	f.files[path] = append([]byte(nil), data...)
}

type fakeFile struct {
	*bytes.Reader
	name string
	size int
}

func (f *fakeFile) Close() error { return nil }

func (f *fakeFile) Write(_ []byte) (int, error) {
	return 0, os.ErrPermission // Fake files opened via Open are read-only, like os.Open.
}

func (f *fakeFile) Stat() (os.FileInfo, error) {
	return fakeFileInfo{name: f.name, size: f.size}, nil
}

type fakeFileInfo struct {
	name string
	size int
}

func (i fakeFileInfo) Name() string       { return i.name }
func (i fakeFileInfo) Size() int64        { return int64(i.size) }
func (i fakeFileInfo) Mode() os.FileMode  { return 0o644 }
func (i fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (i fakeFileInfo) IsDir() bool        { return false }
func (i fakeFileInfo) Sys() any           { return nil }

func (f *Fake) Open(path string) (File, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	return &fakeFile{Reader: bytes.NewReader(data), name: path, size: len(data)}, nil
}

func (f *Fake) ReadFile(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	return append([]byte(nil), data...), nil
}

func (f *Fake) WriteFile(path string, data []byte, _ os.FileMode) error {
	f.files[path] = append([]byte(nil), data...)
	return nil
}

func (f *Fake) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return f.WriteFile(path, data, perm)
}

func (f *Fake) Exists(path string) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

func (f *Fake) Stat(path string) (os.FileInfo, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}

	return fakeFileInfo{name: path, size: len(data)}, nil
}

func (f *Fake) Remove(path string) error {
	delete(f.files, path)
	return nil
}

// Compile-time interface check.
var _ FS = (*Fake)(nil)
var _ io.ReadWriteCloser = (*fakeFile)(nil)
