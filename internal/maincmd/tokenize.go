package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/mna/postl/lang/scanner"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(stdio, args...)
}

// TokenizeFiles reads each of files (or stdin for "-") in turn and prints
// the token stream produced by lang/scanner, one token per line, stopping
// at the first error.
func TokenizeFiles(stdio mainer.Stdio, files ...string) error {
	for _, f := range files {
		src, err := readSource(stdio, f)
		if err != nil {
			return printError(stdio, err)
		}
		toks, err := scanner.Tokenize(src)
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%s: %s\n", tok.Kind, tok)
		}
		if err != nil {
			return printError(stdio, err)
		}
	}
	return nil
}
