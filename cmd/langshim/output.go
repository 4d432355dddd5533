package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	perr "langshim/internal/platform/errors"
)

// recordWriter renders one record per input
type recordWriter interface {
	write(fileResult) error
	flush() error
}

func newWriter(format string, w io.Writer) (recordWriter, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return &textWriter{w: bufio.NewWriter(w)}, nil
	case "json":
		bw := bufio.NewWriter(w)
		return &encWriter{enc: json.NewEncoder(bw), bw: bw}, nil
	case "msgpack":
		bw := bufio.NewWriter(w)
		return &encWriter{enc: msgpack.NewEncoder(bw), bw: bw}, nil
	default:
		return nil, perr.InvalidArgf("unknown format %q (text|json|msgpack)", format)
	}
}

// encWriter streams records through json or msgpack: one value per record
type encWriter struct {
	enc interface{ Encode(any) error }
	bw  *bufio.Writer
}

func (e *encWriter) write(r fileResult) error { return e.enc.Encode(r) }
func (e *encWriter) flush() error            { return e.bw.Flush() }

type textWriter struct{ w *bufio.Writer }

func (t *textWriter) write(r fileResult) error {
	d := r.Detection
	fmt.Fprintf(t.w, "%s: %s (%s) reliable=%t text_bytes=%d\n", r.File, d.ResultName, d.ResultCode, d.Reliable, d.TextBytes)
	for _, top := range d.Top {
		if top.Percent == 0 {
			continue
		}
		fmt.Fprintf(t.w, "  %-12s %-6s %3d%%  score=%.1f\n", top.Name, top.Code, top.Percent, top.Score)
	}
	for _, c := range d.Chunks {
		fmt.Fprintf(t.w, "  chunk offset=%d bytes=%d lang=%s\n", c.Offset, c.Bytes, c.Code)
	}
	return nil
}

func (t *textWriter) flush() error { return t.w.Flush() }
