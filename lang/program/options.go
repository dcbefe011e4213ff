package program

import "io"

// Option configures a Program at construction time.
type Option func(*Program)

// WithStdout sets where print/lf/stackdump write. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(p *Program) { p.stdout = w }
}

// WithStderr sets the stream a host's own diagnostics (not the
// evaluator's, which never writes to stderr) should use. Defaults to
// os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(p *Program) { p.stderr = w }
}

// WithMaxSteps bounds the number of tokens RunSource will dispatch
// before failing with a step-budget error. Overrides the
// POSTL_MAX_STEPS environment default; zero means unbounded.
func WithMaxSteps(n uint64) Option {
	return func(p *Program) { p.maxSteps = n; p.maxStepsSet = true }
}
