package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/postl/lang/machine"
	"github.com/mna/postl/lang/scanner"
)

func TestRoll(t *testing.T) {
	_, out := run(t, "1 2 3 4 1 roll stackdump")
	assert.Equal(t, "3  2  1  4\n", out)
}

func TestRollNoOpOnSingleItem(t *testing.T) {
	_, out := run(t, "5 1 roll stackdump")
	assert.Equal(t, "5\n", out)
}

func TestRollNoOpOnEmptyStack(t *testing.T) {
	_, out := run(t, "0 roll stackdump")
	assert.Equal(t, "\n", out)
}

// TestRotate exercises rotate's documented two-pop arity (length then
// amount) against a stack large enough that popping both operands still
// leaves a real window to rotate. See DESIGN.md for why a three-token
// worked example cannot be reproduced under this arity.
func TestRotate(t *testing.T) {
	_, out := run(t, "10 20 30 40 50 1 3 rotate stackdump")
	assert.Equal(t, "40  30  50  20  10\n", out)
}

func TestRotateLengthOutOfRange(t *testing.T) {
	toks, err := scanner.Tokenize("10 5 rotate")
	require.NoError(t, err)
	p := machine.New()
	require.Error(t, machine.RunTokens(p, toks))
}

func TestRotateRequiresIntegralArgs(t *testing.T) {
	toks, err := scanner.Tokenize("1 2 3 1.5 1 rotate")
	require.NoError(t, err)
	p := machine.New()
	require.Error(t, machine.RunTokens(p, toks))
}

func TestRollRequiresIntegralArgument(t *testing.T) {
	toks, err := scanner.Tokenize("1 2 3 0.5 roll")
	require.NoError(t, err)
	p := machine.New()
	require.Error(t, machine.RunTokens(p, toks))
}
