package cnparse

import (
	"sort"

	"github.com/jgbaldwinbrown/fastats/pkg"
	"github.com/jgbaldwinbrown/iter"
)

func sortFrags(frags []CnEntry) {
	sort.SliceStable(frags, func(i, j int) bool {
		return frags[i].Start < frags[j].Start
	})
}

// Fragments filters entries down to one chromosome and sorts them
// ascending by start position. An empty result means the chromosome has
// no fragments and gets no report block.
func Fragments(it iter.Iter[CnEntry], chrom string) ([]CnEntry, error) {
	var frags []CnEntry
	e := it.Iterate(func(ent CnEntry) error {
		if ent.Chr == chrom {
			frags = append(frags, ent)
		}
		return nil
	})
	if e != nil {
		return nil, e
	}
	sortFrags(frags)
	return frags, nil
}

// CollectFragments reads a record sequence once and groups the records
// matching any target chromosome, each group sorted by start position.
// One pass, so it works on the lazy single-use iterator ParseCn returns.
func CollectFragments(it iter.Iter[CnEntry], targets []string) (map[string][]CnEntry, error) {
	want := make(map[string]bool, len(targets))
	for _, t := range targets {
		want[t] = true
	}
	m := make(map[string][]CnEntry)
	e := it.Iterate(func(ent CnEntry) error {
		if want[ent.Chr] {
			m[ent.Chr] = append(m[ent.Chr], ent)
		}
		return nil
	})
	if e != nil {
		return nil, e
	}
	for _, frags := range m {
		sortFrags(frags)
	}
	return m, nil
}

// Gap is the uncovered span between two consecutive fragments on the
// same chromosome.
type Gap struct {
	fastats.ChrSpan
}

func (g Gap) Length() int64 {
	return g.End - g.Start
}

// GapBetween returns the gap between two position-sorted neighboring
// fragments. Contiguous or overlapping neighbors have none.
func GapBetween(prev, next CnEntry) (Gap, bool) {
	if next.Start <= prev.End {
		return Gap{}, false
	}
	return Gap{fastats.ChrSpan{
		Chr:  prev.Chr,
		Span: fastats.Span{Start: prev.End, End: next.Start},
	}}, true
}

// Gaps returns every gap between consecutive fragments of a sorted
// fragment list. No gap before the first fragment or after the last.
func Gaps(frags []CnEntry) []Gap {
	var gaps []Gap
	for i := 1; i < len(frags); i++ {
		if g, ok := GapBetween(frags[i-1], frags[i]); ok {
			gaps = append(gaps, g)
		}
	}
	return gaps
}
