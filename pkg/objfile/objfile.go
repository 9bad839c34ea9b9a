// Package objfile loads object files into memory for inspection. The
// decoder itself never touches the filesystem; this package supplies it
// the raw byte buffer.
package objfile

import (
	"fmt"
	"io"
	"os"

	bufra "github.com/avvmoto/buf-readerat"
	"golang.org/x/sys/unix"
)

const readChunk = 4 * 0x1000

// File holds the raw bytes of an object file. The buffer must be
// treated as read-only; with the mmap path it is backed by the mapping
// and mutating it would fault.
type File struct {
	path   string
	data   []byte
	mapped bool
}

// Open reads the file at path wholly into memory. Regular files are
// mapped read-only; anything mmap refuses (pipes, empty files) is read
// through a buffered ReaderAt instead.
func Open(path string) (*File, error) {
	fd, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open object file: %w", err)
	}
	defer fd.Close()

	st, err := fd.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if size := int(st.Size()); size > 0 {
		if data, err := unix.Mmap(int(fd.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE); err == nil {
			return &File{path: path, data: data, mapped: true}, nil
		}
	}

	data, err := readAll(fd, int(st.Size()))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &File{path: path, data: data}, nil
}

func readAll(fd *os.File, size int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	r := bufra.NewBufReaderAt(fd, readChunk)
	data := make([]byte, size)
	if n, err := r.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, err
	} else if n != size {
		return nil, io.ErrUnexpectedEOF
	}
	return data, nil
}

// Bytes returns the file contents. The slice stays valid until Close.
func (f *File) Bytes() []byte { return f.data }

func (f *File) Path() string { return f.path }

func (f *File) Close() error {
	if f == nil || f.data == nil {
		return nil
	}
	data := f.data
	f.data = nil
	if f.mapped {
		return unix.Munmap(data)
	}
	return nil
}
