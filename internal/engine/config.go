package engine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"shadowcrawl/internal/systems"
	"shadowcrawl/pkg/dungeon"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни:
	// Level N Seed = Seed + N (N - номер перезапуска)
	Seed int64 `yaml:"seed"`

	// Карта
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	MaxRooms       int     `yaml:"max_rooms"`
	MinRoomSize    int     `yaml:"min_room_size"`
	MaxRoomSize    int     `yaml:"max_room_size"`
	MonsterChance  int     `yaml:"monster_chance"`
	DoorChance     int     `yaml:"door_chance"`
	GrassThreshold float64 `yaml:"grass_threshold"`

	// Свет
	ExploredShade  float64 `yaml:"explored_shade"`  // затемнение исследованных клеток вне света
	ChaseIntensity float64 `yaml:"chase_intensity"` // враги действуют только на клетках ярче этого

	// Игрок
	PlayerLightRadius   int  `yaml:"player_light_radius"`
	PlayerLightGradient bool `yaml:"player_light_gradient"`
	InventorySlots      int  `yaml:"inventory_slots"`

	// MaxLogEntries - сколько последних строк лога хранит сессия
	MaxLogEntries int `yaml:"max_log_entries"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	player := dungeon.DefaultPlayerOptions()
	return Config{
		Seed:           time.Now().UnixNano(),
		Width:          dungeon.DefaultWidth,
		Height:         dungeon.DefaultHeight,
		MaxRooms:       dungeon.DefaultMaxRooms,
		MinRoomSize:    dungeon.DefaultMinRoomSize,
		MaxRoomSize:    dungeon.DefaultMaxRoomSize,
		MonsterChance:  dungeon.DefaultMonsterChance,
		DoorChance:     dungeon.DefaultDoorChance,
		GrassThreshold: dungeon.DefaultGrassThreshold,

		ExploredShade:  systems.DefaultExploredShade,
		ChaseIntensity: systems.DefaultExploredShade,

		PlayerLightRadius:   player.LightRadius,
		PlayerLightGradient: player.LightGradient,
		InventorySlots:      player.InventorySlots,

		MaxLogEntries: 100,
	}
}

// LoadConfig читает YAML поверх значений по умолчанию.
// Поля, отсутствующие в файле, остаются как в NewConfig.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	switch {
	case c.Width <= 2 || c.Height <= 2:
		return fmt.Errorf("%w: map size %dx%d is too small", ErrInvalidConfig, c.Width, c.Height)
	case c.MaxRooms <= 0:
		return fmt.Errorf("%w: max_rooms must be positive", ErrInvalidConfig)
	case c.MinRoomSize <= 0 || c.MaxRoomSize < c.MinRoomSize:
		return fmt.Errorf("%w: room size range %d..%d", ErrInvalidConfig, c.MinRoomSize, c.MaxRoomSize)
	case c.MinRoomSize+2 > c.Width || c.MinRoomSize+2 > c.Height:
		// Комната со стенами должна помещаться на карте хотя бы минимального размера
		return fmt.Errorf("%w: map %dx%d cannot fit a %d-tile room with walls", ErrInvalidConfig, c.Width, c.Height, c.MinRoomSize)
	case c.MonsterChance < 0 || c.MonsterChance > 100:
		return fmt.Errorf("%w: monster_chance must be within 0..100", ErrInvalidConfig)
	case c.DoorChance < 0 || c.DoorChance > 100:
		return fmt.Errorf("%w: door_chance must be within 0..100", ErrInvalidConfig)
	case c.ExploredShade < 0 || c.ExploredShade > 1:
		return fmt.Errorf("%w: explored_shade must be within 0..1", ErrInvalidConfig)
	case c.ChaseIntensity < 0 || c.ChaseIntensity > 1:
		return fmt.Errorf("%w: chase_intensity must be within 0..1", ErrInvalidConfig)
	case c.PlayerLightRadius <= 0:
		return fmt.Errorf("%w: player_light_radius must be positive", ErrInvalidConfig)
	case c.InventorySlots <= 0:
		return fmt.Errorf("%w: inventory_slots must be positive", ErrInvalidConfig)
	}
	return nil
}

// DungeonSettings - параметры генератора уровня
func (c Config) DungeonSettings() dungeon.Settings {
	s := dungeon.DefaultSettings()
	s.Width = c.Width
	s.Height = c.Height
	s.MaxRooms = c.MaxRooms
	s.MinRoomSize = c.MinRoomSize
	s.MaxRoomSize = c.MaxRoomSize
	s.MonsterChance = c.MonsterChance
	s.DoorChance = c.DoorChance
	s.GrassThreshold = c.GrassThreshold
	return s
}

func (c Config) PlayerOptions() dungeon.PlayerOptions {
	return dungeon.PlayerOptions{
		LightRadius:    c.PlayerLightRadius,
		LightGradient:  c.PlayerLightGradient,
		InventorySlots: c.InventorySlots,
	}
}
