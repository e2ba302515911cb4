package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ciricc/go-lifebench/internal/timing"
	"github.com/ciricc/go-lifebench/pkg/benchreport"
)

func main() {
	outPath := flag.String("out", "", "optional path to write JSON report (defaults to stdout)")
	flag.Parse()

	catalog, err := timing.Builtin()
	if err != nil {
		fatalf("load tables: %v", err)
	}
	if err := catalog.CheckSizes(timing.StandardSizes); err != nil {
		fatalf("check tables: %v", err)
	}

	report, err := benchreport.New(catalog, benchreport.DefaultPairs, time.Now())
	if err != nil {
		fatalf("build report: %v", err)
	}

	if *outPath == "" {
		if err := benchreport.WriteJSON(os.Stdout, report); err != nil {
			fatalf("write report: %v", err)
		}
		return
	}
	if err := benchreport.WriteFile(*outPath, report); err != nil {
		fatalf("write report: %v", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "report written to %s\n", *outPath)
}

func fatalf(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
