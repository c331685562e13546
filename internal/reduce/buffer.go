// Package reduce implements the C-aware reduction engine: the program
// Buffer, the pattern library, the transformation catalogue, the oracle
// harness, and the fixpoint driver that ties them together.
package reduce

import (
	"creduce/internal/rfs"
)

// sentinelSpace is the ASCII space byte guaranteed present at both ends of
// a loaded [Buffer]. It lets border-delimited patterns match at the
// logical start/end of the file without special-casing the boundary.
const sentinelSpace = ' '

// Buffer is the mutable program text under reduction: a flat byte sequence
// with sentinel spaces at both ends.
//
// Buffer is not safe for concurrent use; the engine is single-threaded by
// design.
type Buffer struct {
	data []byte
}

// NewBuffer wraps data in a [Buffer], adding sentinel spaces at either end
// if not already present.
func NewBuffer(data []byte) *Buffer {
	b := &Buffer{data: append([]byte(nil), data...)}
	b.ensureSentinels()

	return b
}

func (b *Buffer) ensureSentinels() {
	if len(b.data) == 0 || b.data[0] != sentinelSpace {
		b.data = append([]byte{sentinelSpace}, b.data...)
	}

	if b.data[len(b.data)-1] != sentinelSpace {
		b.data = append(b.data, sentinelSpace)
	}
}

// LoadBuffer reads path and returns its content as a [Buffer] with
// sentinel spaces ensured.
func LoadBuffer(fsys rfs.FS, path string) (*Buffer, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return NewBuffer(data), nil
}

// Save writes the full buffer content to path.
func (b *Buffer) Save(fsys rfs.FS, path string) error {
	return fsys.WriteFile(path, b.data, 0o644)
}

// Len returns the number of bytes currently in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// At returns the byte at index i. Callers must ensure 0 <= i < Len().
func (b *Buffer) At(i int) byte {
	return b.data[i]
}

// Slice returns the bytes in [i, j) as a string. Callers must ensure
// 0 <= i <= j <= Len().
func (b *Buffer) Slice(i, j int) string {
	return string(b.data[i:j])
}

// Bytes returns the buffer's backing bytes. Callers must not retain or
// mutate the returned slice across a subsequent [Buffer.Splice] call.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns the full buffer content.
func (b *Buffer) String() string {
	return string(b.data)
}

// Splice replaces the bytes in [i, j) with repl. Callers must ensure
// 0 <= i <= j <= Len().
func (b *Buffer) Splice(i, j int, repl string) {
	tail := append([]byte(nil), b.data[j:]...)
	b.data = append(b.data[:i:i], repl...)
	b.data = append(b.data, tail...)
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{data: append([]byte(nil), b.data...)}
}

// Reset replaces the buffer's content wholesale (used when the harness
// reloads from the backup file after a rejected trial).
func (b *Buffer) Reset(data []byte) {
	b.data = append([]byte(nil), data...)
	b.ensureSentinels()
}
