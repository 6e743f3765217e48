package cnparse

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jgbaldwinbrown/csvh"
)

// ListCnFiles enumerates the regular files of dir in name order. No
// recursion into subdirectories.
func ListCnFiles(dir string) ([]string, error) {
	ents, e := os.ReadDir(dir)
	if e != nil {
		return nil, e
	}
	var paths []string
	for _, ent := range ents {
		if ent.Type().IsRegular() {
			paths = append(paths, filepath.Join(dir, ent.Name()))
		}
	}
	return paths, nil
}

// ReportPath parses one file and writes its report section to w,
// reporting whether any block came out. The input may be gzipped.
func ReportPath(w io.Writer, path string, targets []string) (wrote bool, err error) {
	h := handle(path + ": %w")
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return false, h(e)
	}
	defer func() { csvh.DeferE(&err, r.Close()) }()

	frags, e := CollectFragments(ParseCn(r), targets)
	if e != nil {
		return false, h(e)
	}
	wrote, e = FprintFileReport(w, filepath.Base(path), targets, frags)
	if e != nil {
		return wrote, h(e)
	}
	return wrote, nil
}

// RunDir reports on every regular file of dir, file sections separated
// by two blank lines. Files that are not Copy Number Data get a stderr
// warning and are skipped; anything else that goes wrong fails the run.
// Each file's section is buffered so a skipped or empty file leaves no
// trace in the output.
func RunDir(w io.Writer, dir string, targets []string) error {
	paths, e := ListCnFiles(dir)
	if e != nil {
		return e
	}
	var buf bytes.Buffer
	wroteAny := false
	for _, path := range paths {
		buf.Reset()
		wrote, e := ReportPath(&buf, path, targets)
		if e != nil {
			var nc NotCnDataError
			if errors.As(e, &nc) {
				log.Printf("warning: %v; skipping", e)
				continue
			}
			return e
		}
		if !wrote {
			continue
		}
		if wroteAny {
			if _, e := io.WriteString(w, "\n\n"); e != nil {
				return e
			}
		}
		if _, e := buf.WriteTo(w); e != nil {
			return e
		}
		wroteAny = true
	}
	return nil
}

// OpenOut opens the report sink: the named file (gzipped if the name
// ends in .gz) or buffered stdout. The returned func flushes and closes.
func OpenOut(path string) (io.Writer, func() error, error) {
	if path == "" {
		bw := bufio.NewWriter(os.Stdout)
		return bw, bw.Flush, nil
	}
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return nil, nil, e
	}
	bw := bufio.NewWriter(w)
	done := func() error {
		if e := bw.Flush(); e != nil {
			w.Close()
			return e
		}
		return w.Close()
	}
	return bw, done, nil
}

// Run wires the whole pipeline: chromosome selection, input reading,
// fragment grouping, and report writing.
func Run(f Flags) (err error) {
	targets, e := ChrSet(f.Chr)
	if e != nil {
		return e
	}

	w, done, e := OpenOut(f.Out)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, done()) }()

	if f.Infile != "" {
		_, e := ReportPath(w, f.Infile, targets)
		return e
	}
	return RunDir(w, f.Dir, targets)
}
