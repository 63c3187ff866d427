// core/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
)

var gzipMagic = []byte{0x1f, 0x8b}

// source is an opened input: a buffered (possibly decompressing) reader
// plus the cleanup for everything under it.
type source struct {
	io.Reader
	close func() error
}

func (s *source) Close() error { return s.close() }

// openReader opens path for reading. "-" is stdin, which is never closed.
// Compression is detected from the content, so gzipped stdin and .gz files
// without the suffix both work.
func openReader(path string) (io.ReadCloser, error) {
	f := os.Stdin
	closeFile := func() error { return nil }
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		f, closeFile = fh, fh.Close
	}

	br := bufio.NewReaderSize(f, 64<<10)
	magic, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(magic, gzipMagic) {
		return &source{Reader: br, close: closeFile}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = closeFile()
		return nil, err
	}
	return &source{Reader: gr, close: func() error {
		return errors.Join(gr.Close(), closeFile())
	}}, nil
}
