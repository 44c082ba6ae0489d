// Package fasta reads multi-record FASTA into whole, uppercased records.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed marks input that is not a usable FASTA stream.
var ErrMalformed = errors.New("malformed fasta")

// Record is one parsed sequence. Seq is uppercased and owned by the receiver.
type Record struct {
	ID  string
	Seq []byte
}

// Len is the number of bases in the record.
func (r Record) Len() int { return len(r.Seq) }

// StreamCtx parses FASTA from r and calls emit once per record, in file order.
//
// Sequence data before the first header, a header without an identifier and a
// record without bases are reported as ErrMalformed. A non-nil error from emit
// stops the scan and is returned unchanged. ctx is checked between lines.
// Lines have no length limit; whole chromosomes on one line are fine.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	br := bufio.NewReaderSize(r, 1<<20)

	var (
		id     string
		hdr    []byte
		seq    = make([]byte, 0, 1<<20)
		lineNo int
		hdrAt  int
		open   bool

		fresh = true // at the start of a line
		kind  byte   // 0 undecided, '>' header, 's' sequence
	)

	flush := func() error {
		if !open {
			return nil
		}
		if len(seq) == 0 {
			return fmt.Errorf("%w: record %q (line %d) has no sequence", ErrMalformed, id, hdrAt)
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for {
		frag, rerr := br.ReadSlice('\n')
		if rerr != nil && rerr != bufio.ErrBufferFull && rerr != io.EOF {
			return fmt.Errorf("fasta read: %w", rerr)
		}
		if fresh && len(frag) > 0 {
			fresh = false
			lineNo++
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		eol := len(frag) > 0 && frag[len(frag)-1] == '\n'
		if eol {
			frag = frag[:len(frag)-1]
		}

		if kind == 0 {
			frag = bytes.TrimLeft(frag, " \t\r")
			if len(frag) > 0 {
				if frag[0] == '>' {
					kind = '>'
					hdr = hdr[:0]
					frag = frag[1:]
				} else {
					if !open {
						return fmt.Errorf("%w: line %d: sequence data before the first header", ErrMalformed, lineNo)
					}
					kind = 's'
				}
			}
		}
		switch kind {
		case '>':
			hdr = append(hdr, frag...)
		case 's':
			seq = appendBases(seq, frag)
		}

		if eol || rerr == io.EOF {
			if kind == '>' {
				if err := flush(); err != nil {
					return err
				}
				id = parseHeaderID(hdr)
				if id == "" {
					return fmt.Errorf("%w: line %d: header without identifier", ErrMalformed, lineNo)
				}
				seq = seq[:0]
				hdrAt = lineNo
				open = true
			}
			fresh, kind = true, 0
		}
		if rerr == io.EOF {
			return flush()
		}
	}
}

// appendBases appends src to dst uppercased, dropping blanks and carriage returns.
func appendBases(dst, src []byte) []byte {
	for _, c := range src {
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			continue
		case 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}

// StreamPathCtx opens path (gzip and "-" aware) and streams its records.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
