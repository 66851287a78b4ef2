package dungeon

import (
	"math/rand"
	"testing"

	"shadowcrawl/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	level := Generate(DefaultSettings(), 42)
	m := level.Map

	// 1. Проверка размеров мира
	if m.Width != DefaultWidth || m.Height != DefaultHeight {
		t.Errorf("Expected map size %dx%d, got %dx%d", DefaultWidth, DefaultHeight, m.Width, m.Height)
	}

	// 2. Комнаты помещаются в карту и не перекрываются
	require.NotEmpty(t, level.Rooms)
	for i, r := range level.Rooms {
		if !r.Fits(m.Width, m.Height) {
			t.Errorf("Room %d %+v does not fit the map", i, r)
		}
		for j := i + 1; j < len(level.Rooms); j++ {
			if r.Intersects(level.Rooms[j]) {
				t.Errorf("Rooms %d and %d overlap", i, j)
			}
		}
	}

	// 3. Вход и выход стоят на полу своих комнат
	if m.TypeAt(m.Entrance.X, m.Entrance.Y) != domain.TileFloor {
		t.Errorf("Entrance %v is not on the floor", m.Entrance)
	}
	if !level.Rooms[0].Contains(m.Entrance) {
		t.Errorf("Entrance %v is outside the first room", m.Entrance)
	}
	if !level.Rooms[len(level.Rooms)-1].Contains(m.Exit) {
		t.Errorf("Exit %v is outside the last room", m.Exit)
	}

	// 4. Краевые клетки карты никогда не бывают полом
	for x := 0; x < m.Width; x++ {
		assert.NotEqual(t, domain.TileFloor, m.TypeAt(x, 0))
		assert.NotEqual(t, domain.TileFloor, m.TypeAt(x, m.Height-1))
	}
	for y := 0; y < m.Height; y++ {
		assert.NotEqual(t, domain.TileFloor, m.TypeAt(0, y))
		assert.NotEqual(t, domain.TileFloor, m.TypeAt(m.Width-1, y))
	}
}

func TestGenerate_EntitiesRegistered(t *testing.T) {
	level := Generate(DefaultSettings(), 7)

	hasExit := false
	for _, e := range level.Entities {
		assert.Same(t, e, level.Map.GetEntity(e.ID))
		assert.Contains(t, level.Map.GetEntitiesAt(e.Pos.X, e.Pos.Y), e)
		if e.Name == Exit.Name {
			hasExit = true
			assert.Equal(t, level.Map.Exit, e.Pos)
		}
	}
	assert.True(t, hasExit, "Level exit (>) not found among entities")
}

func TestGenerate_IsDeterministic(t *testing.T) {
	a := Generate(DefaultSettings(), 1234)
	b := Generate(DefaultSettings(), 1234)

	assert.Equal(t, a.Rooms, b.Rooms)
	assert.Equal(t, a.Map.Tiles, b.Map.Tiles)
	require.Len(t, b.Entities, len(a.Entities))
	for i := range a.Entities {
		assert.Equal(t, a.Entities[i].ID, b.Entities[i].ID)
		assert.Equal(t, a.Entities[i].Pos, b.Entities[i].Pos)
	}

	c := Generate(DefaultSettings(), 4321)
	assert.NotEqual(t, a.Map.Tiles, c.Map.Tiles)
}

func TestWithDoors(t *testing.T) {
	settings := DefaultSettings()
	settings.DoorChance = 100

	level := NewLevel(settings, rand.New(rand.NewSource(3))).
		WithRooms().
		WithCorridors().
		WithDoors().
		Build()

	doors := 0
	for _, e := range level.Entities {
		if e.CanOpen == nil {
			continue
		}
		doors++
		tile := level.Map.TileAt(e.Pos)
		assert.Equal(t, domain.TileFloor, tile.Type)
		assert.True(t, tile.BlockLight, "closed door at %v must block light", e.Pos)
		assert.True(t, e.Blocks())
	}
	assert.Positive(t, doors)
}

func TestWithMonsters(t *testing.T) {
	settings := DefaultSettings()
	settings.MonsterChance = 100

	level := NewLevel(settings, rand.New(rand.NewSource(5))).
		WithRooms().
		WithMonsters().
		Build()
	require.Greater(t, len(level.Rooms), 1)

	first := level.Rooms[0]
	last := level.Rooms[len(level.Rooms)-1]
	for _, e := range level.Entities {
		require.NotNil(t, e.Behaviour)
		assert.False(t, first.Contains(e.Pos), "monster %s spawned in the first room", e.Name)
		if last.Contains(e.Pos) && len(level.Rooms) > 3 {
			assert.Equal(t, domain.KindUndead, e.Kind)
		}
	}

	// Каждая клетка пола занята не больше чем одним врагом
	seen := make(map[domain.Position]bool)
	for _, e := range level.Entities {
		assert.False(t, seen[e.Pos], "two monsters at %v", e.Pos)
		seen[e.Pos] = true
	}
}

func TestWithGrass(t *testing.T) {
	settings := DefaultSettings()
	settings.GrassThreshold = -2 // шум всегда выше - трава на каждой свободной клетке

	level := NewLevel(settings, rand.New(rand.NewSource(9))).
		WithRooms().
		WithGrass(9).
		Build()

	floor := 0
	for _, tile := range level.Map.Tiles {
		if tile.Type == domain.TileFloor {
			floor++
		}
	}
	assert.Len(t, level.Entities, floor)
	for _, e := range level.Entities {
		assert.Equal(t, domain.KindDecoration, e.Kind)
		assert.False(t, e.Blocks())
	}
}

func TestRect(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10} // Пересекается
	r3 := Rect{20, 20, 5, 5} // Не пересекается

	if !r1.Intersects(r2) {
		t.Error("Rects should intersect")
	}
	if r1.Intersects(r3) {
		t.Error("Rects should NOT intersect")
	}

	assert.False(t, r1.Fits(60, 40), "room touching the border leaves no room for walls")
	assert.True(t, Rect{1, 1, 5, 5}.Fits(7, 7))
	assert.False(t, Rect{1, 1, 5, 5}.Fits(6, 7))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		assert.True(t, r3.Contains(r3.RandomPosition(rng)))
	}
}

func TestCreatePlayer(t *testing.T) {
	pos := domain.Position{X: 3, Y: 4}
	p := CreatePlayer(pos, DefaultPlayerOptions(), rand.New(rand.NewSource(1)))

	assert.Equal(t, pos, p.Pos)
	assert.True(t, p.IsPlayerControlled())
	assert.Equal(t, float64(domain.DefaultSpeed), p.Speed)
	assert.Equal(t, 100, p.Health.HP)
	assert.Equal(t, 1, p.Weapon.Damage)
	assert.Equal(t, domain.LightSourceComponent{Radius: 6, Gradient: true}, *p.LightSource)
	assert.Equal(t, 9, p.Inventory.MaxSlots)
	assert.NotNil(t, p.Status.Find(domain.StatusFire), "player starts on fire")
	assert.Empty(t, p.CanFight.Targets)
}

func TestSpawnEntity_ComponentsAreCopied(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := Spider.SpawnEntity(domain.Position{}, rng)
	b := Spider.SpawnEntity(domain.Position{}, rng)

	assert.NotEqual(t, a.ID, b.ID)
	a.CanFight.Targets[0] = domain.KindUndead
	assert.Equal(t, domain.KindPlayer, b.CanFight.Targets[0])
	assert.Equal(t, domain.KindPlayer, Spider.FightWith[0])

	door := Door.SpawnEntity(domain.Position{}, rng)
	assert.Equal(t, domain.StateClosed, door.CanOpen.State)
	assert.Nil(t, door.Health)
	assert.Nil(t, door.Behaviour)
}
