// Command analyze loads a persisted analyzer artifact and runs it over an
// input file, or drives it interactively one line at a time.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ATSOTECK/yalex/pkg/lexpar"
)

func main() {
	analyzerPath := flag.String("analyzer", "", "path to a compiled analyzer artifact (see lexergen -o)")
	interactive := flag.Bool("i", false, "read source lines interactively instead of from a file")
	flag.Parse()

	if *analyzerPath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -analyzer out.lexa [-i] [input.txt]")
		os.Exit(1)
	}

	engine, err := lexpar.LoadAnalyzer(*analyzerPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading analyzer: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		runInteractive(engine)
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze -analyzer out.lexa <input.txt>")
		os.Exit(1)
	}
	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}
	runLine(engine, string(source))
}

func runInteractive(engine *lexpar.Analyzer) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		runBuffered(engine)
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error entering raw mode: %v\n", err)
		runBuffered(engine)
		return
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "analyze> ")

	for {
		line, err := t.ReadLine()
		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(t, "error: %v\r\n", err)
			}
			return
		}
		runLineTerm(t, engine, line)
	}
}

func runBuffered(engine *lexpar.Analyzer) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		runLine(engine, scanner.Text())
	}
}

func runLine(engine *lexpar.Analyzer, line string) {
	tokens, skipped := engine.ScanResilient([]byte(line))
	for _, off := range skipped {
		fmt.Printf("no match at offset %d, skipping\n", off)
	}
	for _, tok := range tokens {
		fmt.Printf("[%d:%d] %s -> %q (action: %q)\n", tok.Offset, tok.Offset+len(tok.Text), tok.Name, tok.Text, tok.Action)
	}
}

func runLineTerm(w io.Writer, engine *lexpar.Analyzer, line string) {
	tokens, skipped := engine.ScanResilient([]byte(line))
	for _, off := range skipped {
		fmt.Fprintf(w, "no match at offset %d, skipping\r\n", off)
	}
	for _, tok := range tokens {
		fmt.Fprintf(w, "[%d:%d] %s -> %q (action: %q)\r\n", tok.Offset, tok.Offset+len(tok.Text), tok.Name, tok.Text, tok.Action)
	}
}
