package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shadowcrawl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
	assert.Equal(t, 15, cfg.MaxRooms)
	assert.Equal(t, 0.7, cfg.ExploredShade)
	assert.Equal(t, 6, cfg.PlayerLightRadius)
	assert.True(t, cfg.PlayerLightGradient)
	assert.Equal(t, 9, cfg.InventorySlots)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
seed: 7
width: 30
explored_shade: 0.5
player_light_gradient: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 0.5, cfg.ExploredShade)
	assert.False(t, cfg.PlayerLightGradient)
	// Не указанные поля остаются по умолчанию
	assert.Equal(t, 40, cfg.Height)
	assert.Equal(t, 9, cfg.InventorySlots)

	settings := cfg.DungeonSettings()
	assert.Equal(t, 30, settings.Width)
	assert.Equal(t, 40, settings.Height)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "width: [1, 2"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "explored_shade: 1.5"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"tiny map", func(c *Config) { c.Width = 2 }},
		{"no rooms", func(c *Config) { c.MaxRooms = 0 }},
		{"inverted room sizes", func(c *Config) { c.MinRoomSize, c.MaxRoomSize = 8, 5 }},
		{"monster chance", func(c *Config) { c.MonsterChance = 101 }},
		{"door chance", func(c *Config) { c.DoorChance = -1 }},
		{"chase intensity", func(c *Config) { c.ChaseIntensity = -0.1 }},
		{"no light", func(c *Config) { c.PlayerLightRadius = 0 }},
		{"no slots", func(c *Config) { c.InventorySlots = 0 }},
		{"room does not fit", func(c *Config) { c.Width, c.Height = 6, 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
