package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/postl/lang/scope"
)

func TestLeaveEmpty(t *testing.T) {
	var s scope.Stack
	_, err := s.Leave()
	require.Error(t, err)
}

func TestRecordAndLeave(t *testing.T) {
	var s scope.Stack
	s.Enter()
	assert.False(t, s.TopContains("x"))
	s.Record("x")
	assert.True(t, s.TopContains("x"))
	s.Record("x") // idempotent, set semantics

	names, err := s.Leave()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x"}, names)
	assert.True(t, s.Empty())
}

func TestNestedFrames(t *testing.T) {
	var s scope.Stack
	s.Enter()
	s.Record("outer")
	s.Enter()
	s.Record("inner")

	assert.True(t, s.TopContains("inner"))
	assert.False(t, s.TopContains("outer"))

	names, err := s.Leave()
	require.NoError(t, err)
	assert.Equal(t, []string{"inner"}, names)
	assert.Equal(t, 1, s.Depth())

	names, err = s.Leave()
	require.NoError(t, err)
	assert.Equal(t, []string{"outer"}, names)
	assert.True(t, s.Empty())
}

func TestRecordOnEmptyIsNoop(t *testing.T) {
	var s scope.Stack
	s.Record("x") // no panic, no effect
	assert.True(t, s.Empty())
}
