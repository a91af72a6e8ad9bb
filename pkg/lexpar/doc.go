/*
Package lexpar provides a public API for embedding this toolchain's lexer
and parser generators in Go applications.

# Compiling and Scanning a Lex Spec

	engine, err := lexpar.CompileLexSpec("digits.yal", `
	    let digit = ['0'-'9']
	    rule num = digit+ { return INT }
	`)
	if err != nil {
	    log.Fatal(err)
	}

	tokens, err := engine.Scan([]byte("42 7"))
	for _, tok := range tokens {
	    fmt.Println(tok.Name, tok.Text, tok.Action)
	}

# Persisting a Compiled Analyzer

	if err := engine.Save("digits.lexa"); err != nil {
	    log.Fatal(err)
	}

	reloaded, err := lexpar.LoadAnalyzer("digits.lexa")
	if err != nil {
	    log.Fatal(err)
	}
	tokens, err := reloaded.Scan([]byte("42"))

# Analyzing a Parser Spec

	analysis, err := lexpar.CompileParserSpec("grammar.yapal", `
	    %token ID PLUS
	    %%
	    e : e PLUS t | t ;
	    t : ID ;
	`)
	if err != nil {
	    log.Fatal(err)
	}

	fmt.Println(analysis.First["e"])
	fmt.Println(len(analysis.Sets), "item sets")

Check warnings (declared-but-unused terminals) are returned in
analysis.Warnings rather than failing CompileParserSpec; a TokenMismatch
between a parser spec's terminals and a lex spec's rule names only
surfaces when CheckAgainstLexSpec is called explicitly.
*/
package lexpar
