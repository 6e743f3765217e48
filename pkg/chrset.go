package cnparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jgbaldwinbrown/lscan/pkg"
)

// Ranks for the non-numeric chromosomes. Numeric chromosomes rank as
// their own number, so chr22 < chrX < chrY < chrM.
const (
	rankX = 23
	rankY = 24
	rankM = 25
)

// InvalidRangeError marks a chromosome range whose endpoints cannot be
// ordered.
type InvalidRangeError struct {
	Spec   string
	Reason string
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid chromosome range %q: %v", e.Spec, e.Reason)
}

// ChrRank maps a chromosome name to its position in the standard order:
// numeric chromosomes numerically, then X, Y, M.
func ChrRank(name string) (int, error) {
	if !strings.HasPrefix(name, "chr") {
		return 0, fmt.Errorf("chromosome %q: missing chr prefix", name)
	}
	switch suf := name[len("chr"):]; suf {
	case "X":
		return rankX, nil
	case "Y":
		return rankY, nil
	case "M", "MT":
		return rankM, nil
	default:
		n, e := strconv.Atoi(suf)
		if e != nil || n < 1 {
			return 0, fmt.Errorf("chromosome %q: unrecognized name", name)
		}
		return n, nil
	}
}

// ChrName is the inverse of ChrRank.
func ChrName(rank int) string {
	switch rank {
	case rankX:
		return "chrX"
	case rankY:
		return "chrY"
	case rankM:
		return "chrM"
	}
	return "chr" + strconv.Itoa(rank)
}

var (
	commaSplit = lscan.ByByte(',')
	colonSplit = lscan.ByByte(':')
)

// ChrSet expands a chromosome specification into an ordered set of
// chromosome names with duplicates removed. The specification is a
// comma-separated list whose elements are either single names (chr7,
// chrX) or inclusive chrA:chrB ranges expanded in ChrRank order. Single
// names are taken as given; only range endpoints must be rankable.
func ChrSet(spec string) ([]string, error) {
	var set []string
	seen := make(map[string]bool)
	add := func(chrom string) {
		if !seen[chrom] {
			seen[chrom] = true
			set = append(set, chrom)
		}
	}

	var toks, ends []string
	toks = lscan.SplitByFunc(toks, spec, commaSplit)
	for _, tok := range toks {
		if !strings.Contains(tok, ":") {
			add(tok)
			continue
		}
		ends = lscan.SplitByFunc(ends[:0], tok, colonSplit)
		if len(ends) != 2 {
			return nil, InvalidRangeError{tok, "need exactly two endpoints"}
		}
		lo, e := ChrRank(ends[0])
		if e != nil {
			return nil, InvalidRangeError{tok, e.Error()}
		}
		hi, e := ChrRank(ends[1])
		if e != nil {
			return nil, InvalidRangeError{tok, e.Error()}
		}
		if lo > hi {
			return nil, InvalidRangeError{tok, "start sorts after end"}
		}
		for i := lo; i <= hi; i++ {
			add(ChrName(i))
		}
	}
	return set, nil
}
