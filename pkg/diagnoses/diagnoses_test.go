package diagnoses

import (
	"testing"

	"github.com/arthur-debert/bitdoctor/pkg/diagnoses/brokensymlinks"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistryDeps() Deps {
	return Deps{Root: brokensymlinks.StaticRoot("/ws/.bit/components"), FS: testutil.NewMemoryFS()}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry(newTestRegistryDeps())

	assert.Equal(t, []string{brokensymlinks.ID}, reg.List())
	d, err := reg.Get(brokensymlinks.ID)
	require.NoError(t, err)
	assert.Equal(t, brokensymlinks.Name, d.Info().Name)
}

func TestSelect(t *testing.T) {
	reg := NewRegistry(newTestRegistryDeps())

	t.Run("all by default", func(t *testing.T) {
		got, err := Select(reg, nil)
		require.NoError(t, err)
		assert.Len(t, got, reg.Count())
	})

	t.Run("by id", func(t *testing.T) {
		got, err := Select(reg, []string{"broken-symlinks"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "broken-symlinks", got[0].Info().ID)
	})

	t.Run("unknown with suggestion", func(t *testing.T) {
		_, err := Select(reg, []string{"broken-links"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDiagnosisNotFound))
		assert.Contains(t, err.Error(), "did you mean broken-symlinks?")
	})

	t.Run("unknown without suggestion", func(t *testing.T) {
		_, err := Select(reg, []string{"qqq"})
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "did you mean")
	})
}
