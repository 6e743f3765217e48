package cnparse

import (
	"errors"
	"strings"
	"testing"
)

type ChrSetCase struct {
	Name string
	Spec string
	Want []string
}

func TestChrSet(t *testing.T) {
	tests := []ChrSetCase{
		{"single", "chr1", []string{"chr1"}},
		{"single_sex", "chrX", []string{"chrX"}},
		{"list", "chr1,chr3,chrX", []string{"chr1", "chr3", "chrX"}},
		{"list_order_kept", "chr3,chr1", []string{"chr3", "chr1"}},
		{"list_dedup", "chr1,chr1,chr2", []string{"chr1", "chr2"}},
		{"range", "chr1:chr5", []string{"chr1", "chr2", "chr3", "chr4", "chr5"}},
		{"range_one", "chr7:chr7", []string{"chr7"}},
		{"range_into_sex", "chr21:chrM", []string{"chr21", "chr22", "chrX", "chrY", "chrM"}},
		{"range_sex_only", "chrX:chrY", []string{"chrX", "chrY"}},
		{"list_with_range", "chr1,chr5:chr7,chrY", []string{"chr1", "chr5", "chr6", "chr7", "chrY"}},
		{"range_overlap_dedup", "chr2:chr4,chr3:chr5", []string{"chr2", "chr3", "chr4", "chr5"}},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			set, e := ChrSet(test.Spec)
			if e != nil {
				t.Fatalf("ChrSet(%q): %v", test.Spec, e)
			}
			if strings.Join(set, ",") != strings.Join(test.Want, ",") {
				t.Errorf("ChrSet(%q) = %v; want %v", test.Spec, set, test.Want)
			}
		})
	}
}

func TestChrSetBadRange(t *testing.T) {
	tests := []string{
		"chr5:chr2",
		"chrY:chrX",
		"chrX:chr9",
		"chr1:chrFoo",
		"banana:chr3",
		"chr1:chr2:chr3",
	}
	for _, spec := range tests {
		t.Run(spec, func(t *testing.T) {
			_, e := ChrSet(spec)
			if e == nil {
				t.Fatalf("ChrSet(%q): expected error", spec)
			}
			var ir InvalidRangeError
			if !errors.As(e, &ir) {
				t.Errorf("ChrSet(%q): error %v is not an InvalidRangeError", spec, e)
			}
		})
	}
}

func TestChrRankOrder(t *testing.T) {
	order := []string{"chr1", "chr2", "chr10", "chr22", "chrX", "chrY", "chrM"}
	prev := -1
	for _, name := range order {
		rank, e := ChrRank(name)
		if e != nil {
			t.Fatalf("ChrRank(%q): %v", name, e)
		}
		if rank <= prev {
			t.Errorf("ChrRank(%q) = %v; want > %v", name, rank, prev)
		}
		if ChrName(rank) != name {
			t.Errorf("ChrName(%v) = %q; want %q", rank, ChrName(rank), name)
		}
		prev = rank
	}
}
