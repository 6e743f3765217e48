package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jgbaldwinbrown/cnparse/pkg"
)

func main() {
	log.SetFlags(0)
	f, e := cnparse.GetFlags()
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		flag.Usage()
		os.Exit(2)
	}
	if e := cnparse.Run(f); e != nil {
		log.Fatal(e)
	}
}
