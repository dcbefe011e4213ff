package program

import "github.com/caarlos0/env/v6"

// config holds the environment-tunable defaults a Program is constructed
// with when the embedder doesn't override them via an Option. MaxSteps
// bounds RunSource's dispatch loop so a host can cap a misbehaving or
// adversarial script without the language itself growing a cancellation
// primitive.
type config struct {
	MaxSteps uint64 `env:"POSTL_MAX_STEPS" envDefault:"0"`
}

// loadConfig reads defaults from the environment. A zero MaxSteps means
// unbounded, matching the interpreter's single-threaded, run-to-completion
// model when the host hasn't asked for a budget.
func loadConfig() config {
	var c config
	// Parse fails when POSTL_MAX_STEPS is set to something that is not an
	// unsigned integer; that error is ignored here.
	_ = env.Parse(&c)
	return c
}
