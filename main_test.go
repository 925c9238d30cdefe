package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "15", "--base", "10", "--places", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "1 <- 10")
	assert.Contains(t, out, "Value: 15")
	assert.Contains(t, out, "[0 1 5]")
}

func TestShowNegative(t *testing.T) {
	out, err := run(t, "show", "--base", "8", "--places", "2", "--", "-9")
	require.NoError(t, err)
	assert.Contains(t, out, "[-1 -1]")
}

func TestExplode(t *testing.T) {
	out, err := run(t, "explode", "0", "0", "15", "--base", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "[0 0 15]")
	assert.Contains(t, out, "1 explosion(s)")
	assert.Contains(t, out, "[0 1 5]")
}

func TestUnexplode(t *testing.T) {
	out, err := run(t, "unexplode", "0", "8", "--base", "8", "--places", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "[0 8]")
	assert.Contains(t, out, "Value: 8")

	_, err = run(t, "unexplode", "1", "8", "--base", "8", "--places", "2")
	assert.Error(t, err)
}

func TestConfigFileAndValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: 2\nplaces: 4\n"), 0o644))
	out, err := run(t, "show", "5", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[0 1 0 1]")

	_, err = run(t, "show", "5", "--base", "1")
	assert.Error(t, err)
	_, err = run(t, "show", "five")
	assert.Error(t, err)
	_, err = run(t, "explode", "1", "x")
	assert.Error(t, err)
}
