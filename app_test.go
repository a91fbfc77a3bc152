package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2EPixelsScript exercises the full pipeline: script source →
// engine → canvas → PPM. This is the same path the Wails Evaluate
// binding takes, but without the Wails runtime.
func TestE2EPixelsScript(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/scripts/pixels.lisp")
	require.NoError(t, err, "failed to read pixels.lisp")

	result := app.Evaluate(string(source))
	require.Empty(t, result.Errors, "eval errors: %v", result.Errors)

	assert.Equal(t, 5, result.Width)
	assert.Equal(t, 3, result.Height)

	want := "P3\n" +
		"5 3\n" +
		"255\n" +
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255\n"
	assert.Equal(t, want, result.PPM)
}

func TestE2EDotScript(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/scripts/dot.lisp")
	require.NoError(t, err, "failed to read dot.lisp")

	result := app.Evaluate(string(source))
	require.Empty(t, result.Errors, "eval errors: %v", result.Errors)

	assert.Equal(t, 160, result.Width)
	assert.Equal(t, 120, result.Height)
	assert.True(t, strings.HasPrefix(result.PPM, "P3\n160 120\n255\n"))
}

func TestEvaluateEmptySource(t *testing.T) {
	app := NewApp()

	result := app.Evaluate("")
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.PPM)
	assert.Zero(t, result.Width)
	assert.Zero(t, result.Height)
}

func TestEvaluateReportsErrors(t *testing.T) {
	app := NewApp()

	result := app.Evaluate("(canvas 3 3")
	require.NotEmpty(t, result.Errors)
	assert.Empty(t, result.PPM)
	assert.NotEmpty(t, result.Errors[0].Message)
}

func TestEvaluateSequentialCalls(t *testing.T) {
	app := NewApp()

	first := app.Evaluate("(canvas 2 2)")
	require.Empty(t, first.Errors)
	assert.Equal(t, 2, first.Width)

	second := app.Evaluate("(canvas 4 4)")
	require.Empty(t, second.Errors)
	assert.Equal(t, 4, second.Width)
}
