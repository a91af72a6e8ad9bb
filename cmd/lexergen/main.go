// Command lexergen compiles a lex-spec source file into a persisted
// analyzer artifact.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ATSOTECK/yalex/pkg/lexpar"
)

func main() {
	output := flag.String("o", "", "output path for the compiled analyzer artifact")
	drawTree := flag.Bool("draw-tree", false, "render the AST (not part of this build)")
	drawAutomata := flag.Bool("draw-automata", false, "render the DFA (not part of this build)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: lexergen [-o out.lexa] <spec.yal>")
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	if *drawTree || *drawAutomata {
		fmt.Fprintln(os.Stderr, "rendering is not part of this build")
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", inputPath, err)
		os.Exit(1)
	}

	engine, err := lexpar.CompileLexSpec(inputPath, string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("compiled %d branch(es): %v\n", len(engine.Actions()), branchNames(engine))

	if *output == "" {
		return
	}
	if err := engine.Save(*output); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *output)
}

func branchNames(engine *lexpar.Analyzer) []string {
	names := make([]string, 0, len(engine.Actions()))
	for name := range engine.Actions() {
		names = append(names, name)
	}
	return names
}
