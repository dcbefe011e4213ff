package maincmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/mna/mainer"

	"github.com/mna/postl/lang/program"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RunFiles(ctx, stdio, c.MaxSteps, args...)
}

// RunFiles tokenizes and evaluates each of files (or stdin for "-") in
// turn, each against its own fresh Program, stopping and printing a red
// diagnostic to stdio.Stderr at the first error.
func RunFiles(ctx context.Context, stdio mainer.Stdio, maxSteps uint64, files ...string) error {
	diag := color.New(color.FgRed)
	for _, f := range files {
		src, err := readSource(stdio, f)
		if err != nil {
			diag.Fprintf(stdio.Stderr, "%s: %s\n", f, err)
			return err
		}

		p := program.New(program.WithStdout(stdio.Stdout), program.WithStderr(stdio.Stderr), program.WithMaxSteps(maxSteps))
		if err := p.RunSource(ctx, src); err != nil {
			diag.Fprintf(stdio.Stderr, "%s: %s\n", f, err)
			return fmt.Errorf("%s: %w", f, err)
		}
	}
	return nil
}
