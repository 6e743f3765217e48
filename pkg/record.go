package cnparse

import (
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fastats/pkg"
	"github.com/jgbaldwinbrown/fasttsv"
	"github.com/jgbaldwinbrown/iter"
)

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

// CnEntry is one data row of a Copy Number Data file: a chromosome span
// plus the copy number called for it.
type CnEntry = fastats.BedEntry[float64]

// Cols holds the positions of the required columns, resolved from the
// header line of each file. Extra columns and any column order are fine.
type Cols struct {
	Chrom int
	Start int
	End   int
	Cn    int
}

func (c Cols) max() int {
	m := c.Chrom
	for _, i := range []int{c.Start, c.End, c.Cn} {
		if i > m {
			m = i
		}
	}
	return m
}

// NotCnDataError marks a file whose header line is missing one of the
// required column names.
type NotCnDataError struct {
	Missing string
}

func (e NotCnDataError) Error() string {
	return fmt.Sprintf("not a Copy Number Data file: no %v column", e.Missing)
}

// MalformedRowError marks a data row that failed structural parsing.
// LineNum counts from 1, header included.
type MalformedRowError struct {
	LineNum int
	Err     error
}

func (e MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at line %v: %v", e.LineNum, e.Err)
}

func (e MalformedRowError) Unwrap() error { return e.Err }

func findCol(header []string, name string) (int, error) {
	for i, field := range header {
		if field == name {
			return i, nil
		}
	}
	return 0, NotCnDataError{Missing: name}
}

// ResolveCols locates the Chromosome, Start, End, and Cn columns in a
// header line.
func ResolveCols(header []string) (Cols, error) {
	var c Cols
	var e error
	if c.Chrom, e = findCol(header, "Chromosome"); e != nil {
		return c, e
	}
	if c.Start, e = findCol(header, "Start"); e != nil {
		return c, e
	}
	if c.End, e = findCol(header, "End"); e != nil {
		return c, e
	}
	if c.Cn, e = findCol(header, "Cn"); e != nil {
		return c, e
	}
	return c, nil
}

// ParseRow converts one data row into a CnEntry using the resolved
// column positions.
func ParseRow(c Cols, line []string) (CnEntry, error) {
	var ent CnEntry
	if len(line) <= c.max() {
		return ent, fmt.Errorf("%v columns, need at least %v", len(line), c.max()+1)
	}
	_, e := csvh.Scan(
		[]string{line[c.Chrom], line[c.Start], line[c.End], line[c.Cn]},
		&ent.Chr, &ent.Start, &ent.End, &ent.Fields,
	)
	return ent, e
}

func isEmptyLine(line []string) bool {
	return len(line) == 0 || (len(line) == 1 && line[0] == "")
}

// ParseCn lazily parses the data rows of one Copy Number Data file.
// The header is read on first iteration to resolve column positions; a
// header missing a required column yields a NotCnDataError before any
// row is produced. Structurally broken rows fail the whole iteration
// with a MalformedRowError.
func ParseCn(r io.Reader) *iter.Iterator[CnEntry] {
	return &iter.Iterator[CnEntry]{Iteratef: func(yield func(CnEntry) error) error {
		s := fasttsv.NewScanner(r)
		if !s.Scan() {
			return NotCnDataError{Missing: "Chromosome"}
		}
		cols, e := ResolveCols(s.Line())
		if e != nil {
			return e
		}
		for lnum := 2; s.Scan(); lnum++ {
			if isEmptyLine(s.Line()) {
				continue
			}
			ent, e := ParseRow(cols, s.Line())
			if e != nil {
				return MalformedRowError{LineNum: lnum, Err: e}
			}
			if e := yield(ent); e != nil {
				return e
			}
		}
		return nil
	}}
}
