// Package rfs provides the filesystem abstraction the reduction engine uses
// to read the source under reduction and to manage its working/backup/orig
// copies.
//
// The main types are:
//   - [FS]: interface for filesystem operations
//   - [File]: interface for open files (satisfied by [os.File])
//   - [Real]: production implementation using the [os] package
//
// Example usage:
//
//	fsys := rfs.NewReal()
//	f, err := fsys.Open("prog.c")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
package rfs

import (
	"io"
	"os"
)

// File represents an open file descriptor.
//
// This interface is satisfied by [os.File] and can be used with all
// standard library functions that accept [io.Reader], [io.Writer], or
// [io.Closer].
type File interface {
	io.ReadWriteCloser

	// Stat returns the [os.FileInfo] for this file. See [os.File.Stat].
	Stat() (os.FileInfo, error)
}

// FS defines the filesystem operations the reducer needs: reading the
// source under test, and atomically maintaining its working/backup/orig
// copies.
//
// [Real] is the production implementation, wrapping [os]. Tests use an
// in-memory [Fake] so no oracle script or real disk is required.
type FS interface {
	// Open opens a file for reading. See [os.Open].
	Open(path string) (File, error)

	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating or truncating it. See
	// [os.WriteFile]. Not atomic; callers that need crash-safety for a
	// file that must never be observed half-written (the backup) should
	// use [FS.WriteFileAtomic] instead.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// WriteFileAtomic writes data to a file atomically (temp file +
	// rename), so a crash mid-write never leaves a torn file. Used for
	// <cfile>.bak and <cfile>.orig, whose invariant (oracle succeeds on
	// this exact content) must never be observed broken.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// Exists reports whether a file exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)

	// Stat returns file info. See [os.Stat].
	Stat(path string) (os.FileInfo, error)

	// Remove deletes a file. See [os.Remove]. No error if the path
	// doesn't exist.
	Remove(path string) error
}

// Compile-time interface check.
var _ File = (*os.File)(nil)
