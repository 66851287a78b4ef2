package dungeon

import (
	"math/rand"

	"shadowcrawl/internal/domain"
	"shadowcrawl/pkg/utils"
)

// Настройки карты по умолчанию
const (
	DefaultWidth       = 60
	DefaultHeight      = 40
	DefaultMaxRooms    = 15
	DefaultMinRoomSize = 5
	DefaultMaxRoomSize = 8

	// DefaultMonsterChance - шанс (в процентах) появления врага на каждой клетке пола комнаты
	DefaultMonsterChance = 10
	// DefaultDoorChance - шанс двери в проеме между коридором и комнатой
	DefaultDoorChance = 50

	DefaultGrassThreshold = 0.15
	DefaultGrassScale     = 0.15

	// maxHardRooms - сколько последних комнат заселяются скелетами
	maxHardRooms = 5
)

// Settings - параметры генерации уровня
type Settings struct {
	Width, Height int
	MaxRooms      int
	MinRoomSize   int
	MaxRoomSize   int

	MonsterChance int
	DoorChance    int

	// Трава растет там, где шум Перлина выше порога
	GrassThreshold float64
	GrassScale     float64
}

func DefaultSettings() Settings {
	return Settings{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		MaxRooms:       DefaultMaxRooms,
		MinRoomSize:    DefaultMinRoomSize,
		MaxRoomSize:    DefaultMaxRoomSize,
		MonsterChance:  DefaultMonsterChance,
		DoorChance:     DefaultDoorChance,
		GrassThreshold: DefaultGrassThreshold,
		GrassScale:     DefaultGrassScale,
	}
}

// Rect - внутренняя (полезная) площадь комнаты. Стены лежат на одну клетку снаружи.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects - комнаты пересекаются или стоят вплотную (общая стена допустима,
// общий пол - нет)
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Fits - комната вместе со стенами помещается в карту
func (r Rect) Fits(width, height int) bool {
	return r.X >= 1 && r.Y >= 1 && r.X+r.W <= width-1 && r.Y+r.H <= height-1
}

func (r Rect) Contains(p domain.Position) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// RandomPosition - случайная клетка пола комнаты
func (r Rect) RandomPosition(rng *rand.Rand) domain.Position {
	return domain.Position{
		X: utils.RandRange(rng, r.X, r.X+r.W-1),
		Y: utils.RandRange(rng, r.Y, r.Y+r.H-1),
	}
}

// Level - результат генерации: карта с расставленными сущностями (без игрока)
type Level struct {
	Map      *domain.GameMap
	Rooms    []Rect
	Entities []*domain.Entity
}

// Generate строит полный уровень. Одинаковый seed дает одинаковый уровень.
func Generate(settings Settings, seed int64) *Level {
	rng := rand.New(rand.NewSource(seed))

	return NewLevel(settings, rng).
		WithRooms().
		WithCorridors().
		WithDoors().
		WithStairs().
		WithMonsters().
		WithItems(Knife, ShortSword).
		WithGrass(seed).
		Build()
}
