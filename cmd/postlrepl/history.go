package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// loadHistory reads the previous session's record, if any. Any failure
// (missing file, bad YAML) yields a zero-value session rather than an
// error: the REPL always starts, history or not.
func loadHistory() *session {
	b, err := os.ReadFile(historyPath())
	if err != nil {
		return &session{}
	}
	var s session
	if err := yaml.Unmarshal(b, &s); err != nil {
		return &session{}
	}
	return &s
}

// saveHistory best-effort writes s to the history file. Errors are
// swallowed: losing the session record never fails the REPL on exit.
func saveHistory(s *session) {
	path := historyPath()
	if path == "" {
		return
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return
	}
	_ = os.WriteFile(path, b, 0o600)
}
