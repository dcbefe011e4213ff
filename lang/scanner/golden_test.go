package scanner_test

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/postl/internal/filetest"
	"github.com/mna/postl/lang/scanner"
)

var testUpdateScannerTests = flag.Bool("test.update-scanner-tests", false, "If set, replace expected scanner golden results with actual results.")

func TestTokenizeGolden(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".postl") {
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(srcDir, fi.Name()))
			if err != nil {
				t.Fatal(err)
			}

			var out strings.Builder
			toks, err := scanner.Tokenize(string(src))
			if err != nil {
				t.Fatal(err)
			}
			for _, tok := range toks {
				fmt.Fprintf(&out, "%s: %s\n", tok.Kind, tok)
			}

			filetest.DiffOutput(t, fi, out.String(), resultDir, testUpdateScannerTests)
		})
	}
}
