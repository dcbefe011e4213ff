package maincmd

import (
	"io"
	"os"

	"github.com/mna/mainer"
)

// readSource reads path's contents, or stdio.Stdin's if path is "-".
func readSource(stdio mainer.Stdio, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdio.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
