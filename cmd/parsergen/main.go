// Command parsergen sequences a parser-spec source file, cross-checks it,
// and reports its LR(0) canonical collection and FIRST sets.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/ATSOTECK/yalex/pkg/lexpar"
)

func main() {
	output := flag.String("o", "", "write the FIRST-set and item-set report to this path instead of stdout")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: parsergen [-o report.txt] <grammar.yapal>")
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", inputPath, err)
		os.Exit(1)
	}

	analysis, err := lexpar.CompileParserSpec(inputPath, string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
		os.Exit(1)
	}

	for _, w := range analysis.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	report := formatReport(analysis)

	if *output == "" {
		fmt.Print(report)
		return
	}
	if err := os.WriteFile(*output, []byte(report), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *output)
}

func formatReport(analysis *lexpar.ParserAnalysis) string {
	out := fmt.Sprintf("%d item set(s), %d accepting\n", len(analysis.Sets), len(analysis.Accepting))

	var nonTerminals []string
	for nt := range analysis.Grammar.NonTerminals {
		nonTerminals = append(nonTerminals, nt)
	}
	sort.Strings(nonTerminals)

	for _, nt := range nonTerminals {
		var symbols []string
		for s := range analysis.First[nt] {
			symbols = append(symbols, s)
		}
		sort.Strings(symbols)
		out += fmt.Sprintf("FIRST(%s) = %v\n", nt, symbols)
	}
	return out
}
