package internal

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
)

const (
	gzipMagic  = "\x1f\x8b"
	b2zipMagic = "BZh"
)

// Decompressor sniffs the stream and transparently unwraps gzip and bzip2.
func Decompressor(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	buf, err := br.Peek(3)
	if err != nil {
		return nil, err
	}
	switch {
	case bytes.Equal(buf[:2], []byte(gzipMagic)):
		return gzip.NewReader(br)
	case bytes.Equal(buf[:3], []byte(b2zipMagic)):
		return bzip2.NewReader(br), nil
	default:
		return br, nil
	}
}

type quadReadCloser struct {
	quad.ReadCloser
	c io.Closer
}

func (r quadReadCloser) Close() error {
	err := r.ReadCloser.Close()
	if r.c != nil {
		if cerr := r.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// QuadReaderFor opens a quad reader over the file, URL or stdin ("-") at
// path. The format is picked by typ when given, otherwise by the file
// extension, defaulting to nquads. Compressed input (".gz", ".bz2") is
// unwrapped before decoding.
func QuadReaderFor(path, typ string) (quad.ReadCloser, error) {
	var (
		r io.Reader
		c io.Closer
	)
	switch u, err := url.Parse(path); {
	case path == "-":
		r = os.Stdin
	case err == nil && (u.Scheme == "http" || u.Scheme == "https"):
		res, err := http.Get(path)
		if err != nil {
			return nil, fmt.Errorf("could not get resource <%s>: %v", path, err)
		}
		r, c = res.Body, res.Body
	default:
		if err == nil && u.Scheme == "file" {
			// Recovery heuristic for mistyping "file://path/to/file".
			path = filepath.Join(u.Host, u.Path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open file %q: %v", path, err)
		}
		r, c = f, f
	}

	r, err := Decompressor(r)
	if err != nil {
		if c != nil {
			c.Close()
		}
		if err == io.EOF {
			return quadReadCloser{ReadCloser: emptyReader{}}, nil
		}
		return nil, err
	}

	format := formatFor(path, typ)
	if format == nil {
		if c != nil {
			c.Close()
		}
		return nil, fmt.Errorf("unknown quad format %q", typ)
	} else if format.Reader == nil {
		if c != nil {
			c.Close()
		}
		return nil, fmt.Errorf("decoding of %q is not supported", format.Name)
	}
	return quadReadCloser{ReadCloser: format.Reader(r), c: c}, nil
}

func formatFor(path, typ string) *quad.Format {
	if typ != "" {
		return quad.FormatByName(typ)
	}
	ext := filepath.Ext(path)
	switch ext {
	case ".gz", ".bz2":
		ext = filepath.Ext(strings.TrimSuffix(path, ext))
	}
	if f := quad.FormatByExt(ext); f != nil {
		return f
	}
	return quad.FormatByName("nquads")
}

type emptyReader struct{}

func (emptyReader) ReadQuad() (quad.Quad, error) { return quad.Quad{}, io.EOF }
func (emptyReader) Close() error                 { return nil }
