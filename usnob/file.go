package usnob

import (
	"bufio"
	"io"
	"os"
)

// File owns a USNO-B .cat file's handle for scoped, buffered streaming
// reads. No header or footer frames the record stream: it is simply a
// sequence of fixed 80-byte records.
type File struct {
	path string
	f    *os.File
	size int64
}

// Open opens path for reading and reports its size so that Len is cheap.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{path: path, f: f, size: info.Size()}, nil
}

// Close releases the underlying file handle.
func (fl *File) Close() error {
	return fl.f.Close()
}

// Len reports the number of 80-byte records the file holds.
func (fl *File) Len() int64 {
	return fl.size / recordSize
}

// Iter returns a fresh iterator over the file's records, starting at the
// beginning of the file regardless of the handle's current offset.
func (fl *File) Iter() (*Iterator, error) {
	if _, err := fl.f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return &Iterator{r: bufio.NewReader(fl.f)}, nil
}

// Iterator yields decoded Stars in file order. Records that fail to
// decode are skipped silently, matching the source behavior; end of file
// terminates iteration without error.
type Iterator struct {
	r     *bufio.Reader
	index int
}

// Next returns the next successfully decoded Star, or (nil, false) once
// the file is exhausted. Malformed records are skipped internally and do
// not surface as a stopping condition.
func (it *Iterator) Next() (*Star, bool) {
	buf := make([]byte, recordSize)
	for {
		it.index++
		_, err := io.ReadFull(it.r, buf)
		if err != nil {
			return nil, false
		}
		star, err := Decode(buf, it.index)
		if err != nil {
			continue
		}
		return star, true
	}
}

// All drains the iterator into a slice, for callers that don't need
// streaming behavior.
func (fl *File) All() ([]*Star, error) {
	it, err := fl.Iter()
	if err != nil {
		return nil, err
	}
	var stars []*Star
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		stars = append(stars, s)
	}
	return stars, nil
}
