package cnparse

import (
	"errors"
	"flag"
	"fmt"
)

// ErrUsage marks command-line validation failures.
var ErrUsage = errors.New("usage error")

type Flags struct {
	Infile string
	Dir    string
	Chr    string
	Out    string
}

// SetFlags registers the options on fs, each with a long and a short
// spelling.
func SetFlags(fs *flag.FlagSet, f *Flags) {
	fs.StringVar(&f.Infile, "infile", "", "Single Copy Number Data file to read.")
	fs.StringVar(&f.Infile, "i", "", "Short for -infile.")
	fs.StringVar(&f.Dir, "dir", "", "Directory of Copy Number Data files to read (mutually exclusive with -infile).")
	fs.StringVar(&f.Dir, "d", "", "Short for -dir.")
	fs.StringVar(&f.Chr, "chr", "", "Target chromosome(s): a name like chr7, a comma-separated list, and/or inclusive chrA:chrB ranges (required).")
	fs.StringVar(&f.Chr, "c", "", "Short for -chr.")
	fs.StringVar(&f.Out, "out", "", "Output path (default stdout).")
	fs.StringVar(&f.Out, "o", "", "Short for -out.")
}

// Validate applies the mutual-exclusivity and required-argument rules.
func (f Flags) Validate() error {
	if f.Infile != "" && f.Dir != "" {
		return fmt.Errorf("%w: -infile conflicts with -dir", ErrUsage)
	}
	if f.Infile == "" && f.Dir == "" {
		return fmt.Errorf("%w: provide -infile or -dir", ErrUsage)
	}
	if f.Chr == "" {
		return fmt.Errorf("%w: -chr is required", ErrUsage)
	}
	return nil
}

// GetFlags parses and validates the command line.
func GetFlags() (Flags, error) {
	var f Flags
	SetFlags(flag.CommandLine, &f)
	flag.Parse()
	if e := f.Validate(); e != nil {
		return f, e
	}
	return f, nil
}
