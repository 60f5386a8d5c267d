package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/flagstrip/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFeatureConfigAdapter_Load(t *testing.T) {
	adapter := NewLocalFeatureConfigAdapter()

	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := adapter.Load("")
		require.NoError(t, err)
		assert.Equal(t, m.DefaultFeatureConfig(), cfg)
		assert.Contains(t, cfg.Enabled, "ENABLE_UART")
		assert.Contains(t, cfg.Disabled, "ENABLE_NOAA")
	})

	t.Run("partial file falls back for scalars", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "features.yaml")
		writeTestFile(t, path, "enabled:\n  - FEAT_A\ndisabled: [FEAT_B]\nprefix: FEAT\n")

		cfg, err := adapter.Load(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, "FEAT", cfg.FeaturePrefix)
		assert.Equal(t, m.DefaultGuardSuffix, cfg.GuardSuffix)
		assert.Equal(t, m.DefaultExtensions, cfg.Extensions)
		assert.Equal(t, m.DefaultMaxPasses, cfg.MaxPasses)
		assert.Equal(t, []string{"FEAT_A"}, cfg.Enabled)
		assert.Equal(t, []string{"FEAT_B"}, cfg.Disabled)
	})

	t.Run("full file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "features.yaml")
		writeTestFile(t, path, `prefix: CONFIG
guard_suffix: _INCLUDED
extensions: [.cpp, .hpp]
max_passes: 4
enabled: [CONFIG_A]
disabled: [CONFIG_B]
`)

		cfg, err := adapter.Load(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, m.FeatureConfig{
			FeaturePrefix: "CONFIG",
			GuardSuffix:   "_INCLUDED",
			Extensions:    []string{".cpp", ".hpp"},
			MaxPasses:     4,
			Enabled:       []string{"CONFIG_A"},
			Disabled:      []string{"CONFIG_B"},
		}, cfg)
	})

	t.Run("no features listed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "features.yaml")
		writeTestFile(t, path, "prefix: ENABLE\n")

		_, err := adapter.Load(m.Path(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no enabled or disabled")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.Load(m.Path(filepath.Join(t.TempDir(), "nope.yaml")))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "features.yaml")
		writeTestFile(t, path, "enabled: [unclosed\n")

		_, err := adapter.Load(m.Path(path))
		assert.Error(t, err)
	})
}
