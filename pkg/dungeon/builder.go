package dungeon

import (
	"math/rand"

	"shadowcrawl/internal/domain"
	"shadowcrawl/pkg/logger"
	"shadowcrawl/pkg/utils"

	"github.com/aquilax/go-perlin"
	"github.com/sirupsen/logrus"
)

// LevelBuilder предоставляет fluent API для создания уровней.
// Шаги применяются в порядке вызова; все случайности берутся из одного rng.
type LevelBuilder struct {
	settings Settings
	rng      *rand.Rand

	gameMap  *domain.GameMap
	rooms    []Rect
	entities []*domain.Entity

	// doorCandidates - клетки стен комнат, пробитые коридорами
	doorCandidates []domain.Position
}

// NewLevel создает новый builder для уровня
func NewLevel(settings Settings, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		settings: settings,
		rng:      rng,
		gameMap:  domain.NewGameMap(settings.Width, settings.Height),
	}
}

// WithRooms расставляет до MaxRooms комнат; не поместившиеся попытки отбрасываются
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	s := b.settings
	b.rooms = make([]Rect, 0, s.MaxRooms)

	for i := 0; i < s.MaxRooms; i++ {
		w := utils.RandRange(b.rng, s.MinRoomSize, s.MaxRoomSize)
		h := utils.RandRange(b.rng, s.MinRoomSize, s.MaxRoomSize)
		if w+2 > s.Width || h+2 > s.Height {
			continue
		}
		newRoom := Rect{
			X: utils.RandRange(b.rng, 1, s.Width-w-1),
			Y: utils.RandRange(b.rng, 1, s.Height-h-1),
			W: w,
			H: h,
		}

		if !newRoom.Fits(s.Width, s.Height) || b.overlaps(newRoom) {
			continue
		}

		b.carveRoom(newRoom, len(b.rooms))
		b.rooms = append(b.rooms, newRoom)
	}

	return b
}

func (b *LevelBuilder) overlaps(r Rect) bool {
	for _, other := range b.rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom: пол внутри, кольцо стен снаружи
func (b *LevelBuilder) carveRoom(r Rect, index int) {
	for y := r.Y - 1; y <= r.Y+r.H; y++ {
		for x := r.X - 1; x <= r.X+r.W; x++ {
			if r.Contains(domain.Position{X: x, Y: y}) {
				b.gameMap.SetType(x, y, domain.TileFloor)
				b.gameMap.At(x, y).Room = index
				continue
			}
			if b.gameMap.TypeAt(x, y) == domain.TileVoid {
				b.gameMap.SetType(x, y, domain.TileWall)
			}
		}
	}
}

// WithCorridors соединяет соседние по порядку комнаты L-образными коридорами
// и обносит коридоры стенами
func (b *LevelBuilder) WithCorridors() *LevelBuilder {
	for i := 1; i < len(b.rooms); i++ {
		prevX, prevY := b.rooms[i-1].Center()
		currX, currY := b.rooms[i].Center()

		if b.rng.Intn(2) == 0 {
			b.carveHCorridor(prevX, currX, prevY)
			b.carveVCorridor(prevY, currY, currX)
		} else {
			b.carveVCorridor(prevY, currY, prevX)
			b.carveHCorridor(prevX, currX, currY)
		}
	}

	b.wrapFloorWithWalls()
	return b
}

func (b *LevelBuilder) carveHCorridor(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.carveCorridorTile(x, y)
	}
}

func (b *LevelBuilder) carveVCorridor(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.carveCorridorTile(x, y)
	}
}

func (b *LevelBuilder) carveCorridorTile(x, y int) {
	switch b.gameMap.TypeAt(x, y) {
	case domain.TileFloor:
		return
	case domain.TileWall:
		// Коридор пробил стену комнаты - здесь может стоять дверь
		b.doorCandidates = append(b.doorCandidates, domain.Position{X: x, Y: y})
	}
	b.gameMap.SetType(x, y, domain.TileFloor)
}

func (b *LevelBuilder) wrapFloorWithWalls() {
	m := b.gameMap
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.TypeAt(x, y) != domain.TileFloor {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if m.InBounds(x+dx, y+dy) && m.TypeAt(x+dx, y+dy) == domain.TileVoid {
						m.SetType(x+dx, y+dy, domain.TileWall)
					}
				}
			}
		}
	}
}

// WithDoors ставит двери в проемы: стены по бокам, свободный пол спереди и сзади
func (b *LevelBuilder) WithDoors() *LevelBuilder {
	m := b.gameMap
	placed := 0

	for _, p := range b.doorCandidates {
		if m.TypeAt(p.X, p.Y) != domain.TileFloor || len(m.GetEntitiesAt(p.X, p.Y)) > 0 {
			continue
		}
		roll := utils.RandRange(b.rng, 0, 100)

		vertical := m.TypeAt(p.X-1, p.Y) == domain.TileWall && m.TypeAt(p.X+1, p.Y) == domain.TileWall &&
			b.freeFloor(p.X, p.Y-1) && b.freeFloor(p.X, p.Y+1)
		horizontal := m.TypeAt(p.X, p.Y-1) == domain.TileWall && m.TypeAt(p.X, p.Y+1) == domain.TileWall &&
			b.freeFloor(p.X-1, p.Y) && b.freeFloor(p.X+1, p.Y)

		if (vertical || horizontal) && roll > 100-b.settings.DoorChance {
			b.spawn(Door, p)
			// Закрытая дверь не пропускает свет, пока ее не откроют
			m.At(p.X, p.Y).BlockLight = true
			placed++
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "dungeon",
		"candidates": len(b.doorCandidates),
		"doors":      placed,
	}).Debug("Doors placed.")
	return b
}

func (b *LevelBuilder) freeFloor(x, y int) bool {
	return b.gameMap.TypeAt(x, y) == domain.TileFloor && len(b.gameMap.GetEntitiesAt(x, y)) == 0
}

// WithStairs - вход в случайной клетке первой комнаты, выход - последней
func (b *LevelBuilder) WithStairs() *LevelBuilder {
	if len(b.rooms) == 0 {
		return b
	}

	entrance := b.rooms[0].RandomPosition(b.rng)
	last := b.rooms[len(b.rooms)-1]
	exit := last.RandomPosition(b.rng)
	for attempt := 0; attempt < 20 && exit == entrance; attempt++ {
		exit = last.RandomPosition(b.rng)
	}

	b.gameMap.Entrance = entrance
	b.gameMap.Exit = exit
	b.spawn(Entrance, entrance)
	b.spawn(Exit, exit)
	return b
}

// WithMonsters заселяет комнаты после первой: пауки в средних, скелеты в последних (сложных)
func (b *LevelBuilder) WithMonsters() *LevelBuilder {
	if len(b.rooms) < 2 {
		return b
	}

	hard := min(maxHardRooms, (len(b.rooms)-1)/3)
	firstHard := len(b.rooms) - hard
	spawned := 0

	for i := 1; i < len(b.rooms); i++ {
		template := Spider
		if i >= firstHard {
			template = Skeleton
		}

		r := b.rooms[i]
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				if !b.freeFloor(x, y) {
					continue
				}
				if utils.Chance(b.rng, b.settings.MonsterChance) {
					b.spawn(template, domain.Position{X: x, Y: y})
					spawned++
				}
			}
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "dungeon",
		"hard_rooms": hard,
		"monsters":   spawned,
	}).Debug("Dungeon populated.")
	return b
}

// WithItems кладет по одному предмету каждого шаблона в случайную комнату
func (b *LevelBuilder) WithItems(templates ...EntityTemplate) *LevelBuilder {
	if len(b.rooms) == 0 {
		return b
	}

	for _, t := range templates {
		// Пробуем найти свободную клетку (макс 20 попыток)
		for attempt := 0; attempt < 20; attempt++ {
			room := b.rooms[b.rng.Intn(len(b.rooms))]
			pos := room.RandomPosition(b.rng)
			if b.freeFloor(pos.X, pos.Y) {
				b.spawn(t, pos)
				break
			}
		}
	}
	return b
}

// WithGrass раскладывает траву пятнами по шуму Перлина
func (b *LevelBuilder) WithGrass(seed int64) *LevelBuilder {
	noise := perlin.NewPerlin(2, 2, 3, seed)
	m := b.gameMap
	scale := b.settings.GrassScale

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.TypeAt(x, y) != domain.TileFloor {
				continue
			}
			if noise.Noise2D(float64(x)*scale, float64(y)*scale) <= b.settings.GrassThreshold {
				continue
			}
			if blocked(m.GetEntitiesAt(x, y)) {
				continue
			}
			b.spawn(Grass, domain.Position{X: x, Y: y})
		}
	}
	return b
}

func blocked(entities []*domain.Entity) bool {
	for _, e := range entities {
		if e.Blocks() {
			return true
		}
	}
	return false
}

func (b *LevelBuilder) spawn(t EntityTemplate, pos domain.Position) *domain.Entity {
	e := t.SpawnEntity(pos, b.rng)
	if err := b.gameMap.AddEntity(e); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "dungeon",
			"entity":    t.Name,
			"pos":       pos,
		}).WithError(err).Warn("Entity spawn skipped.")
		return nil
	}
	b.entities = append(b.entities, e)
	return e
}

// Build возвращает готовый уровень
func (b *LevelBuilder) Build() *Level {
	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"rooms":     len(b.rooms),
		"entities":  len(b.entities),
		"entrance":  b.gameMap.Entrance,
		"exit":      b.gameMap.Exit,
	}).Info("Level generated.")

	return &Level{
		Map:      b.gameMap,
		Rooms:    b.rooms,
		Entities: b.entities,
	}
}
