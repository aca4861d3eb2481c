package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write refused")
}

//
// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

// TestRun_PrintsSummary verifies run prints exactly one line and exits 0.
func TestRun_PrintsSummary(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Equal(t, "User summary: johndoe (john@example.com)\n", stdout.String())
	assert.Equal(t, 1, strings.Count(stdout.String(), "\n"))
	assert.Empty(t, stderr.String())
}

// TestRun_Repeatable verifies no state leaks between invocations.
func TestRun_Repeatable(t *testing.T) {
	t.Parallel()

	var first, second, stderr bytes.Buffer
	require.Equal(t, 0, run(&first, &stderr))
	require.Equal(t, 0, run(&second, &stderr))

	assert.Equal(t, first.String(), second.String())
}

// TestRun_WriteFailure verifies a refused stdout write is reported on stderr with exit code 1.
func TestRun_WriteFailure(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	code := run(failingWriter{}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "write refused")
}
