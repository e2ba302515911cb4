package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/samber/lo"

	"github.com/ciricc/go-lifebench/internal/styles"
	"github.com/ciricc/go-lifebench/internal/timing"
)

func main() {
	var (
		withIO     = flag.Bool("io", false, "rank the runs that include frame I/O instead of the no-I/O runs")
		maxResults = flag.Int("n", 3, "number of top configurations to print per size")
	)
	flag.Parse()

	if *maxResults <= 0 {
		*maxResults = 1
	}

	catalog, err := timing.Builtin()
	if err != nil {
		fatalf("load tables: %v", err)
	}

	tables := lo.Filter(catalog.Tables(), func(t *timing.Table, _ int) bool {
		return t.NoIO() != *withIO
	})
	if len(tables) == 0 {
		fatalf("no tables to rank")
	}

	variant := "without I/O"
	if *withIO {
		variant = "with I/O"
	}
	styles.Fprintf(os.Stdout, styles.Info, "Fastest %d configurations per size, %s", *maxResults, variant)

	ranked := timing.FastestBySize(tables, *maxResults)
	fmt.Println(styles.Table(styles.CandidateHeaders, styles.CandidateRows(ranked)))
}

func fatalf(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
