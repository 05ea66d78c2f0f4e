// Package input opens the file to scan and exposes it as one read-only
// byte slice, memory-mapped where the platform allows it.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	ErrNotFound   = errors.New("file does not exist")
	ErrNotRegular = errors.New("not a regular file")
	ErrEmpty      = errors.New("file is empty")
)

// Options controls how a file is opened.
type Options struct {
	// Decompress inflates zstd, gzip and LZ4-frame inputs, detected by
	// their magic bytes. Offsets then refer to the decompressed stream.
	Decompress bool
}

// Source is an opened input. Data must not be modified and is invalid
// after Close.
type Source struct {
	Path        string
	Data        []byte
	FileSize    int64  // size on disk
	Compression string // "" when Data is the file itself
	Mapped      bool   // Data is a memory map

	release func() error
}

// Open validates path and maps it into memory.
func Open(path string, opts Options) (*Source, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	if st.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}

	data, mapped, release, err := mapFile(path, st.Size())
	if err != nil {
		return nil, err
	}
	src := &Source{Path: path, Data: data, FileSize: st.Size(), Mapped: mapped, release: release}

	if !opts.Decompress {
		return src, nil
	}
	kind := detectCompression(data)
	if kind == "" {
		return src, nil
	}
	plain, err := inflate(data, kind)
	// The compressed mapping is no longer needed either way.
	if cerr := src.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("decompress %s (%s): %w", path, kind, err)
	}
	if len(plain) == 0 {
		return nil, fmt.Errorf("%s: decompressed %s stream: %w", path, kind, ErrEmpty)
	}
	return &Source{Path: path, Data: plain, FileSize: st.Size(), Compression: kind}, nil
}

// Close releases the mapping. It is safe to call more than once.
func (s *Source) Close() error {
	if s == nil || s.release == nil {
		return nil
	}
	rel := s.release
	s.release = nil
	s.Data = nil
	return rel()
}
