package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open returns a reader over path. "-" is stdin. Gzip input is recognised by
// its magic bytes, so compressed stdin works too.
func Open(path string) (io.ReadCloser, error) {
	src := io.NopCloser(os.Stdin)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}

	br := bufio.NewReaderSize(src, 1<<16)
	magic, _ := br.Peek(2)
	if len(magic) < 2 || magic[0] != 0x1f || magic[1] != 0x8b {
		return &readCloser{Reader: br, closers: []io.Closer{src}}, nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return &readCloser{Reader: gz, closers: []io.Closer{gz, src}}, nil
}
