package command

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/spf13/cobra"

	"github.com/cayleygraph/skos/clog"
	"github.com/cayleygraph/skos/graph"
	"github.com/cayleygraph/skos/internal"
)

const (
	flagLoad       = "load"
	flagLoadFormat = "load_format"
	flagDump       = "dump"
	flagDumpFormat = "dump_format"

	flagLang  = "lang"
	flagDepth = "depth"
	flagFlat  = "flat"
)

func registerLoadFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagLoad, "i", "", `quad file to load (".gz" supported, "-" for stdin)`)
	var names []string
	for _, f := range quad.Formats() {
		if f.Reader != nil {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	cmd.Flags().String(flagLoadFormat, "", `quad file format to use for loading instead of auto-detection ("`+strings.Join(names, `", "`)+`")`)
}

func registerDumpFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagDump, "o", "", `quad file to write to (".gz" supported, "-" for stdout)`)
	var names []string
	for _, f := range quad.Formats() {
		if f.Writer != nil {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	cmd.Flags().String(flagDumpFormat, "", `quad file format to use instead of auto-detection ("`+strings.Join(names, `", "`)+`")`)
}

func registerLoaderFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagLang, "", `language filter for labels ("@none" for untagged literals only)`)
	cmd.Flags().Int(flagDepth, 0, "resolve external references over HTTP up to this depth")
	cmd.Flags().Bool(flagFlat, false, "restrict output to entities present in the input, hiding resolved ones")
}

func newLazyReader(open func() (quad.ReadCloser, error)) quad.ReadCloser {
	return &lazyReader{open: open}
}

type lazyReader struct {
	rc   quad.ReadCloser
	open func() (quad.ReadCloser, error)
}

func (r *lazyReader) ReadQuad() (quad.Quad, error) {
	if r.rc == nil {
		rc, err := r.open()
		if err != nil {
			return quad.Quad{}, err
		}
		r.rc = rc
	}
	return r.rc.ReadQuad()
}

func (r *lazyReader) Close() (err error) {
	if r.rc != nil {
		err = r.rc.Close()
	}
	return
}

type multiReader struct {
	rc []quad.ReadCloser
	i  int
}

func (r *multiReader) ReadQuad() (quad.Quad, error) {
	for {
		if r.i >= len(r.rc) {
			return quad.Quad{}, io.EOF
		}
		rc := r.rc[r.i]
		q, err := rc.ReadQuad()
		if err == io.EOF {
			rc.Close()
			r.i++
			continue
		}
		return q, err
	}
}

func (r *multiReader) Close() error {
	var first error
	for _, rc := range r.rc[r.i:] {
		if err := rc.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// readerForInputs builds a reader over the -i flag and positional file
// arguments, opened lazily in order.
func readerForInputs(cmd *cobra.Command, args []string) (quad.ReadCloser, error) {
	var files []string
	if load, _ := cmd.Flags().GetString(flagLoad); load != "" {
		files = append(files, load)
	}
	files = append(files, args...)
	if len(files) == 0 {
		return nil, fmt.Errorf("at least one input file must be specified")
	}
	loadf, _ := cmd.Flags().GetString(flagLoadFormat)
	var multi multiReader
	for _, path := range files {
		path := path
		multi.rc = append(multi.rc, newLazyReader(func() (quad.ReadCloser, error) {
			clog.Infof("reading %q", path)
			return internal.QuadReaderFor(path, loadf)
		}))
	}
	return &multi, nil
}

// loadGraph reads all inputs into a fresh in-memory graph.
func loadGraph(cmd *cobra.Command, args []string) (*graph.Graph, error) {
	qr, err := readerForInputs(cmd, args)
	if err != nil {
		return nil, err
	}
	defer qr.Close()
	g := graph.New()
	if _, err := quad.Copy(g, qr); err != nil {
		return nil, err
	}
	return g, nil
}

func writerQuadsTo(path string, typ string, qr quad.Reader) error {
	var f *os.File
	if path == "-" {
		f = os.Stdout
		clog.Infof("writing quads to stdout")
	} else {
		var err error
		f, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create file %q: %v", path, err)
		}
		defer f.Close()
		fmt.Printf("writing quads to file %q\n", path)
	}

	var w io.Writer = f
	ext := filepath.Ext(path)
	if ext == ".gz" {
		ext = filepath.Ext(strings.TrimSuffix(path, ext))
		gzip := gzip.NewWriter(f)
		defer gzip.Close()
		w = gzip
	}
	var format *quad.Format
	if typ == "" {
		format = quad.FormatByExt(ext)
		if format == nil {
			typ = "nquads"
		}
	}
	if format == nil {
		format = quad.FormatByName(typ)
	}
	if format == nil {
		return fmt.Errorf("unsupported format: %q", typ)
	} else if format.Writer == nil {
		return fmt.Errorf("encoding in %s format is not supported", typ)
	}
	qw := format.Writer(w)
	defer qw.Close()

	n, err := quad.Copy(qw, qr)
	if err != nil {
		return err
	} else if err = qw.Close(); err != nil {
		return err
	}
	if path != "-" {
		fmt.Printf("%d entries were written\n", n)
	}
	return nil
}
