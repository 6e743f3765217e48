package cnparse

import (
	"fmt"
	"io"
)

// FprintChromBlock writes one chromosome's block: a header line naming
// the file, chromosome, and fragment count, then the fragments in
// position order with the gaps between them interleaved. Nothing is
// written for an empty fragment list.
func FprintChromBlock(w io.Writer, fname, chrom string, frags []CnEntry) error {
	if len(frags) == 0 {
		return nil
	}
	h := handle("FprintChromBlock: %w")

	if _, e := fmt.Fprintf(w, "%v %v %v\n", fname, chrom, len(frags)); e != nil {
		return h(e)
	}
	for i, f := range frags {
		if i > 0 {
			if g, ok := GapBetween(frags[i-1], f); ok {
				if _, e := fmt.Fprintf(w, "Gap position [%v-%v] %v\n", g.Start, g.End, g.Length()); e != nil {
					return h(e)
				}
			}
		}
		if _, e := fmt.Fprintf(w, "Fragment position [%v-%v] %v\n", f.Start, f.End, f.Fields); e != nil {
			return h(e)
		}
	}
	return nil
}

// FprintFileReport writes every chromosome block for one file in target
// order, blocks separated by one blank line. It reports whether any
// block was written; a file with no fragments on any target chromosome
// produces nothing, not even a header.
func FprintFileReport(w io.Writer, fname string, targets []string, frags map[string][]CnEntry) (bool, error) {
	wrote := false
	for _, chrom := range targets {
		fs := frags[chrom]
		if len(fs) == 0 {
			continue
		}
		if wrote {
			if _, e := fmt.Fprintln(w); e != nil {
				return wrote, e
			}
		}
		if e := FprintChromBlock(w, fname, chrom, fs); e != nil {
			return wrote, e
		}
		wrote = true
	}
	return wrote, nil
}
