package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDataset(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		ds, err := loadDataset("")
		require.NoError(t, err)
		assert.NotEmpty(t, ds.Books)
		_, err = ds.Catalog()
		assert.NoError(t, err)
	})

	t.Run("file", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "d.yaml")
		require.NoError(t, os.WriteFile(p, []byte("authors: [{id: a, name: A}]\ngenres: []\nbooks: [{id: b, title: B, author: a}]\n"), 0o644))
		ds, err := loadDataset(p)
		require.NoError(t, err)
		assert.Len(t, ds.Books, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadDataset(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
