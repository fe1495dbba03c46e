package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var arena = filepath.Join("..", "..", "internal", "world", "testdata", "arena.json")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"-q"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRayNearest(t *testing.T) {
	out, err := run(t, "ray", arena, "--from", "5,10,4", "--dir", "0,-1,0")
	require.NoError(t, err)
	assert.Contains(t, out, "hit post at (5.000, 4.000, 4.000)")

	out, err = run(t, "ray", arena, "--from", "5,10,4", "--mask", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "hit wall at (5.000, 2.000, 4.000)")
}

func TestRayAll(t *testing.T) {
	out, err := run(t, "ray", arena, "--from", "5,10,4", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "hit post")
	assert.Contains(t, out, "hit wall")
	assert.Contains(t, out, "hit floor")
}

func TestRayMiss(t *testing.T) {
	out, err := run(t, "ray", arena, "--from", "0,10,0", "--dir", "0,1,0")
	require.NoError(t, err)
	assert.Equal(t, "no hit\n", out)
}

func TestRayBadFlags(t *testing.T) {
	_, err := run(t, "ray", arena, "--from", "1,2")
	assert.ErrorContains(t, err, "--from needs three")

	_, err = run(t, "ray", arena, "--dir", "0,0,0")
	assert.Error(t, err)
}

func TestSphere(t *testing.T) {
	out, err := run(t, "sphere", arena, "--at", "0,0.4,3")
	require.NoError(t, err)
	assert.Contains(t, out, "contact floor")
	assert.Contains(t, out, "(ground)")
	assert.Contains(t, out, "resolved to (0.000, 0.500, 3.000)")

	out, err = run(t, "sphere", arena, "--at", "0,6,3")
	require.NoError(t, err)
	assert.Equal(t, "free at (0.000, 6.000, 3.000)\n", out)
}

func TestAltitude(t *testing.T) {
	out, err := run(t, "altitude", arena, "--at", "0,5,-8")
	require.NoError(t, err)
	assert.Contains(t, out, "altitude 2.000 above ledge")

	out, err = run(t, "altitude", arena, "--at", "50,5,0")
	require.NoError(t, err)
	assert.Contains(t, out, "no ground below")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", arena)
	require.NoError(t, err)
	assert.Contains(t, out, `scene "arena": 8 bodies`)
	assert.Contains(t, out, "shearedbox")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"bodies": [{"name": "a", "collider": {"shape": "torus"}}]}`), 0644))
	out, err = run(t, "check", arena, bad)
	assert.Error(t, err)
	assert.Contains(t, out, "unknown shape kind")
	assert.Contains(t, out, `scene "arena"`)
}
