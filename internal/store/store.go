// Package store provides document sources that can be read and atomically
// replaced. A staged replacement is invisible until its writer is closed
// successfully; cleaning up an unclosed writer leaves the prior content
// untouched.
package store

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/google/renameio"
)

var (
	// ErrNotExists is returned by Open when the document has no content yet.
	ErrNotExists = errors.New("document does not exist")

	errBufferClosed = errors.New("write to closed buffer")
)

// Store is a document that can be read and replaced.
type Store interface {
	Open() (io.ReadCloser, error)

	// Update stages a replacement: content written to the returned writer
	// becomes the document only on a successful Close. Cleanup discards an
	// unclosed staging; after a successful Close it is a no-op.
	Update() (PendingWriter, error)
}

// PendingWriter is a staged document replacement.
type PendingWriter interface {
	io.WriteCloser
	Cleanup() error
}

// File is a Store backed by a filesystem path. Updates are staged in a
// temporary file and renamed over the path on Close, so a reader of the same
// path never observes a partial rewrite.
type File struct {
	Path string
}

func (f *File) Open() (io.ReadCloser, error) {
	r, err := os.Open(f.Path)
	if os.IsNotExist(err) {
		return nil, ErrNotExists
	}
	return r, err
}

func (f *File) Update() (PendingWriter, error) {
	t, err := renameio.TempFile("", f.Path)
	if err != nil {
		return nil, err
	}
	return &pendingFile{t: t}, nil
}

type pendingFile struct {
	t      *renameio.PendingFile
	closed bool
}

func (pf *pendingFile) Write(p []byte) (int, error) {
	if pf.closed {
		return 0, errBufferClosed
	}
	return pf.t.Write(p)
}

func (pf *pendingFile) Close() error {
	if pf.closed {
		return nil
	}
	err := pf.t.CloseAtomicallyReplace()
	pf.closed = err == nil
	return err
}

func (pf *pendingFile) Cleanup() error {
	if pf.closed {
		return nil
	}
	pf.closed = true
	return pf.t.Cleanup()
}

// Mem is an in-memory Store for tests and dry runs.
type Mem struct {
	cur     string
	defined bool
}

// NewMem returns a Mem holding the given content.
func NewMem(content string) *Mem {
	return &Mem{cur: content, defined: true}
}

// String returns the current content.
func (m *Mem) String() string { return m.cur }

func (m *Mem) Open() (io.ReadCloser, error) {
	if !m.defined {
		return nil, ErrNotExists
	}
	return io.NopCloser(strings.NewReader(m.cur)), nil
}

func (m *Mem) Update() (PendingWriter, error) {
	const minSize = 1024
	pb := &pendingBuffer{sink: m.set}
	if n := len(m.cur); n > minSize {
		pb.buf.Grow(n)
	} else {
		pb.buf.Grow(minSize)
	}
	return pb, nil
}

func (m *Mem) set(content string) error {
	m.cur = content
	m.defined = true
	return nil
}

type pendingBuffer struct {
	buf    bytes.Buffer
	closed bool
	sink   func(string) error
}

func (pb *pendingBuffer) Write(p []byte) (int, error) {
	if pb.closed {
		return 0, errBufferClosed
	}
	return pb.buf.Write(p)
}

func (pb *pendingBuffer) Close() error {
	if !pb.closed {
		pb.closed = true
		return pb.sink(pb.buf.String())
	}
	return nil
}

func (pb *pendingBuffer) Cleanup() error {
	if !pb.closed {
		// discarded
		pb.closed = true
	}
	return nil
}
