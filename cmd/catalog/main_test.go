package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearch(t *testing.T) {
	out, err := execute(t, "search", "--author", "a-verne")
	require.NoError(t, err)
	assert.Contains(t, out, "Twenty Thousand Leagues Under the Seas")
	assert.Contains(t, out, "Journey to the Center of the Earth")
	assert.NotContains(t, out, "Dracula")
	assert.Contains(t, out, "Show more (0)")
}

func TestSearch_Pages(t *testing.T) {
	out, err := execute(t, "search", "--page-size", "2", "--pages", "2", "--genre", "g-horror")
	require.NoError(t, err)
	assert.Contains(t, out, "Frankenstein")
	assert.Contains(t, out, "Dracula")
	assert.Contains(t, out, "Show more (0)")
}

func TestSearch_Empty(t *testing.T) {
	out, err := execute(t, "search", "--title", "no such title anywhere")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found")
}

func TestSearch_BadFlags(t *testing.T) {
	_, err := execute(t, "search", "--theme", "dusk")
	assert.Error(t, err)

	_, err = execute(t, "search", "--pages", "0")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", "5f1f0a2e-1c3b-4a8e-9b61-0d1e4a7c2f07", "--theme", "night")
	require.NoError(t, err)
	assert.Contains(t, out, "Frankenstein")
	assert.Contains(t, out, "Mary Shelley (1818)")

	_, err = execute(t, "show", "missing-id")
	assert.ErrorContains(t, err, "missing-id")
}

func TestOptions(t *testing.T) {
	out, err := execute(t, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "All Authors")
	assert.Contains(t, out, "a-austen")
	assert.Contains(t, out, "g-scifi")
}
