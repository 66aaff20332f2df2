// Command httable extracts HTML tables from a URL, file, or literal HTML
// string and prints them as CSV or indented HTML.
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/dpotapov/htmltable"
)

func main() {
	var (
		match         = flag.String("match", "", "only tables whose text matches this substring")
		matchRegexp   = flag.String("match-regexp", "", "only tables whose text matches this regular expression")
		displayedOnly = flag.Bool("displayed-only", false, "elide display:none tables, rows, and cells")
		extractLinks  = flag.String("extract-links", "", "row group to extract links from: thead, tbody, tfoot, all")
		format        = flag.String("format", "csv", "output format: csv or html")
		indent        = flag.Int("indent", 4, "indentation width for -format html")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: httable [flags] <url|file|html>")
		os.Exit(2)
	}

	var opts []htmltable.Option
	switch {
	case *matchRegexp != "":
		re, err := compileMatch(*matchRegexp)
		if err != nil {
			fmt.Fprintln(os.Stderr, "httable:", err)
			os.Exit(1)
		}
		opts = append(opts, htmltable.WithMatch(re))
	case *match != "":
		opts = append(opts, htmltable.WithMatch(htmltable.Literal(*match)))
	}
	if *displayedOnly {
		opts = append(opts, htmltable.WithDisplayedOnly(true))
	}
	if *extractLinks != "" {
		opts = append(opts, htmltable.WithExtractLinks(htmltable.LinkExtraction(*extractLinks)))
	}

	tables, err := htmltable.ParseHTML(flag.Arg(0), opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "httable:", err)
		os.Exit(1)
	}

	for _, t := range tables {
		switch *format {
		case "html":
			fmt.Println(t.ToHTML(*indent))
		default:
			fmt.Print(t.ToCSV())
		}
	}
}

func compileMatch(pattern string) (htmltable.Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return htmltable.Pattern{Re: re}, nil
}
