package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestHeight(t *testing.T) {
	for _, order := range []string{"sorted", "reverse", "random"} {
		t.Run(order, func(t *testing.T) {
			out, err := execute(t, "height", "--n", "5000", "--order", order)
			require.NoError(t, err)
			assert.Contains(t, out, "5,000")
			assert.Contains(t, out, order)
		})
	}
}

func TestHeight_InvalidFlags(t *testing.T) {
	_, err := execute(t, "height", "--order", "shuffled")
	require.ErrorIs(t, err, ErrInvalidOrder)
	_, err = execute(t, "height", "--n", "0")
	require.ErrorIs(t, err, ErrInvalidN)
	_, err = execute(t, "height", "extra")
	require.Error(t, err)
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("MEASURE_ORDER", "bogus")
	_, err := execute(t, "height", "--n", "10")
	require.ErrorIs(t, err, ErrInvalidOrder)

	// flags win over the environment
	out, err := execute(t, "height", "--n", "10", "--order", "reverse")
	require.NoError(t, err)
	assert.Contains(t, out, "reverse")
}

func TestConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measure.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 1234\norder: reverse\n"), 0o600))
	out, err := execute(t, "height", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "reverse")

	_, err = execute(t, "height", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	for _, ops := range []string{"query", "insert", "remove"} {
		t.Run(ops, func(t *testing.T) {
			out, err := execute(t, "compare", "--n", "300", "--ops", ops, "--benchtime", "3x")
			require.NoError(t, err)
			for _, name := range []string{"avl", "btree", "llrb", "gods"} {
				assert.Contains(t, out, name)
			}
		})
	}
	_, err := execute(t, "compare", "--ops", "sort")
	require.ErrorIs(t, err, ErrInvalidOps)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "measure dev\n", out)
}

func TestGodsMatchesMultiset(t *testing.T) {
	all := []int{5, 1, 5, 3, 5, 1}
	a, g := &avl{hint: 8}, &gods{}
	a.reset()
	g.reset()
	a.insert(all)
	g.insert(all)
	assert.Equal(t, a.query(all), g.query(all))
	a.remove(all[:3])
	g.remove(all[:3])
	assert.Equal(t, uint32(3), a.t.Size())
	assert.Equal(t, 3, g.t.Size())
	cnt, ok := g.t.Get(5)
	require.True(t, ok)
	assert.Equal(t, 1, cnt)
	assert.Equal(t, uint32(1), a.t.Count(5))
}
