package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/mna/postl/lang/program"
)

func main() {
	os.Exit(run())
}

func run() int {
	p := program.New(program.WithStdout(os.Stdout), program.WithStderr(os.Stderr))
	diag := color.New(color.Bold)

	hist := loadHistory()
	defer saveHistory(hist)

	ctx := context.Background()
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprintf(os.Stdout, "(%d)> ", p.StackSize())
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := p.RunSource(ctx, line); err != nil {
			diag.Fprintf(os.Stderr, "%s\n", err)
			hist.LastError = err.Error()
			continue
		}
		hist.LastSource = line
	}

	hist.FinalStackSize = p.StackSize()
	if err := sc.Err(); err != nil {
		diag.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	return 0
}

// session is the best-effort, human-editable record of the most recent
// REPL session, read on startup and rewritten on exit. A missing or
// unreadable file is silent: the history is a diagnostic convenience,
// never load-bearing for evaluation.
type session struct {
	LastSource     string `yaml:"last_source"`
	LastError      string `yaml:"last_error,omitempty"`
	FinalStackSize int    `yaml:"final_stack_size"`
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".postl_history.yaml")
}
