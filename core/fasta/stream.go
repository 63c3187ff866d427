// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// ReadCtx parses r and emits one Record per sequence.
//
// FASTA input ('>' headers, wrapped sequence lines) is emitted per record.
// Input without any header is read as plain text: every non-empty line is a
// record named "<name>:<line>". Sequence bytes are passed through verbatim
// apart from surrounding whitespace; case carries meaning downstream.
//
// It is cancelable: returning promptly when ctx is Done.
func ReadCtx(ctx context.Context, r io.Reader, name string, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id     string
		seq    = make([]byte, 0, 1<<12)
		header bool
		ln     int
	)

	flush := func() error {
		if id == "" {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		ln++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			header = true
			id = parseHeaderID(line[1:])
			if id == "" {
				id = fmt.Sprintf("%s:%d", name, ln)
			}
			continue
		}
		if !header {
			if err := emit(Record{ID: fmt.Sprintf("%s:%d", name, ln), Seq: append([]byte(nil), line...)}); err != nil {
				return err
			}
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
