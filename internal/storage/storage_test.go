package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both implementations must satisfy the same contract.
func TestStoreContract(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"mem": func(t *testing.T) Store { return NewMemStore() },
		"file": func(t *testing.T) Store {
			return NewFileStore(filepath.Join(t.TempDir(), "data"))
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)

			_, ok, err := s.Get("theme")
			require.NoError(t, err)
			assert.False(t, ok, "absent key should report not present")

			require.NoError(t, s.Set("theme", "dark"))
			v, ok, err := s.Get("theme")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "dark", v)

			// Set replaces the whole value.
			require.NoError(t, s.Set("theme", "light"))
			v, _, err = s.Get("theme")
			require.NoError(t, err)
			assert.Equal(t, "light", v)

			require.NoError(t, s.Remove("theme"))
			_, ok, err = s.Get("theme")
			require.NoError(t, err)
			assert.False(t, ok)

			// Removing an absent key is not an error.
			require.NoError(t, s.Remove("theme"))
		})
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	first := NewFileStore(dir)
	require.NoError(t, first.Set("calculationHistory", `[{"id":"a"}]`))

	second := NewFileStore(dir)
	v, ok, err := second.Get("calculationHistory")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)
}

func TestFileStoreCreatesDirOnFirstWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewFileStore(dir)

	// Reads before any write see an empty store, not an error.
	_, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("theme", "dark"))

	info, err := os.Stat(filepath.Join(dir, "theme"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
