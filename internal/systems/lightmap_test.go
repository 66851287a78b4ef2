package systems

import (
	"testing"

	"shadowcrawl/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floorMap - карта без стен, вся из пола
func floorMap(w, h int) *domain.GameMap {
	m := domain.NewGameMap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetType(x, y, domain.TileFloor)
		}
	}
	return m
}

func litIndex(tiles []LitTile) map[domain.Position]float64 {
	out := make(map[domain.Position]float64, len(tiles))
	for _, t := range tiles {
		out[domain.Position{X: t.X, Y: t.Y}] = t.Intensity
	}
	return out
}

func TestCastLight_OpenRoomRadius3(t *testing.T) {
	m := floorMap(11, 11)
	origin := domain.Position{X: 5, Y: 5}

	tiles := CastLight(m, origin, domain.LightSourceComponent{Radius: 3})
	lit := litIndex(tiles)

	require.Len(t, tiles, 29, "no duplicates, exactly the disc of squared radius 9")
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			p := domain.Position{X: x, Y: y}
			intensity, ok := lit[p]
			if p.DistanceSquaredTo(origin) <= 9 {
				assert.True(t, ok, "tile %v should be lit", p)
				assert.Equal(t, 1.0, intensity)
			} else {
				assert.False(t, ok, "tile %v should stay dark", p)
			}
		}
	}
}

func TestCastLight_Gradient(t *testing.T) {
	m := floorMap(11, 11)
	origin := domain.Position{X: 5, Y: 5}

	lit := litIndex(CastLight(m, origin, domain.LightSourceComponent{Radius: 3, Gradient: true}))

	assert.Equal(t, 1.0, lit[origin])
	assert.InDelta(t, 1-1.0/9, lit[domain.Position{X: 6, Y: 5}], 1e-9)
	assert.InDelta(t, 1-5.0/9, lit[domain.Position{X: 6, Y: 7}], 1e-9)
	assert.InDelta(t, 0.0, lit[domain.Position{X: 8, Y: 5}], 1e-9)
}

func TestCastLight_AdjacentBlocker(t *testing.T) {
	origin := domain.Position{X: 5, Y: 5}
	light := domain.LightSourceComponent{Radius: 3}

	open := litIndex(CastLight(floorMap(11, 11), origin, light))

	m := floorMap(11, 11)
	m.SetType(6, 5, domain.TileWall)
	blocked := litIndex(CastLight(m, origin, light))

	// сама стена освещена, за ней по лучу - тень
	assert.Contains(t, blocked, domain.Position{X: 6, Y: 5})
	assert.NotContains(t, blocked, domain.Position{X: 7, Y: 5})
	assert.NotContains(t, blocked, domain.Position{X: 8, Y: 5})
	assert.Len(t, blocked, 27)

	// с другой стороны от источника ничего не изменилось
	for p, intensity := range open {
		if p.X <= origin.X {
			assert.Equal(t, intensity, blocked[p], "tile %v", p)
		}
	}
}

func TestCastLight_ClipsAtMapEdge(t *testing.T) {
	m := floorMap(4, 4)

	tiles := CastLight(m, domain.Position{X: 0, Y: 0}, domain.LightSourceComponent{Radius: 6})

	for _, tile := range tiles {
		assert.True(t, m.InBounds(tile.X, tile.Y), "tile %+v out of bounds", tile)
	}
	assert.Len(t, tiles, 16)
}

func TestCastLight_SourceAlwaysLit(t *testing.T) {
	m := domain.NewGameMap(3, 3) // одна пустота, все блокирует свет

	tiles := CastLight(m, domain.Position{X: 1, Y: 1}, domain.LightSourceComponent{Radius: 0})

	require.Len(t, tiles, 1)
	assert.Equal(t, LitTile{X: 1, Y: 1, Intensity: 1}, tiles[0])
}

func TestCastLight_WallsStopLight(t *testing.T) {
	// 7x7: комната 3x3 в центре, обнесенная стенами
	m := domain.NewGameMap(7, 7)
	for y := 1; y <= 5; y++ {
		for x := 1; x <= 5; x++ {
			m.SetType(x, y, domain.TileWall)
		}
	}
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			m.SetType(x, y, domain.TileFloor)
		}
	}

	lit := litIndex(CastLight(m, domain.Position{X: 3, Y: 3}, domain.LightSourceComponent{Radius: 6}))

	for p := range lit {
		assert.True(t, p.X >= 1 && p.X <= 5 && p.Y >= 1 && p.Y <= 5, "light leaked to %v", p)
	}
	assert.Contains(t, lit, domain.Position{X: 1, Y: 3})
}

func TestLightMap_Idempotent(t *testing.T) {
	m := floorMap(15, 15)
	m.SetType(7, 5, domain.TileWall)
	lm := NewLightMap(m, m, DefaultExploredShade)
	sources := []LightSource{{ID: "p", Pos: domain.Position{X: 7, Y: 7}, Light: domain.LightSourceComponent{Radius: 5, Gradient: true}}}

	// первый проход открывает клетки; дальше карта уже не меняется
	lm.Update(sources)

	first := lm.Update(sources)
	shades := make([]float64, len(m.Tiles))
	for i := range m.Tiles {
		shades[i] = m.Tiles[i].Shade
	}

	second := lm.Update(sources)

	assert.Equal(t, first, second)
	for i := range m.Tiles {
		assert.Equal(t, shades[i], m.Tiles[i].Shade)
	}
}

func TestLightMap_ExploredFloor(t *testing.T) {
	m := floorMap(30, 5)
	lm := NewLightMap(m, m, DefaultExploredShade)
	light := domain.LightSourceComponent{Radius: 3}

	lm.Update([]LightSource{{ID: "p", Pos: domain.Position{X: 3, Y: 2}, Light: light}})

	seen := m.At(5, 2)
	require.True(t, seen.Explored)
	assert.Equal(t, 0.0, seen.Shade)

	unseen := m.At(20, 2)
	assert.False(t, unseen.Explored)
	assert.Equal(t, 1.0, unseen.Shade)

	// источник ушел далеко: клетка помнится, но тусклой
	lm.Update([]LightSource{{ID: "p", Pos: domain.Position{X: 25, Y: 2}, Light: light}})

	assert.True(t, seen.Explored)
	assert.Equal(t, DefaultExploredShade, seen.Shade)
	assert.False(t, unseen.Explored)

	lit := m.At(25, 2)
	assert.True(t, lit.Explored)
	assert.Equal(t, 0.0, lit.Shade)
}

func TestLightMap_ExploredTileDimLightIsCapped(t *testing.T) {
	m := floorMap(20, 3)
	lm := NewLightMap(m, m, DefaultExploredShade)
	light := domain.LightSourceComponent{Radius: 4, Gradient: true}

	// клетка на краю радиуса: яркость 1 - 16/16 = 0, затемнение 1
	lm.Update([]LightSource{{ID: "p", Pos: domain.Position{X: 2, Y: 1}, Light: light}})
	edge := m.At(6, 1)
	require.True(t, edge.Explored)
	assert.Equal(t, 1.0, edge.Shade, "first sight keeps the computed shade")

	lm.Update([]LightSource{{ID: "p", Pos: domain.Position{X: 2, Y: 1}, Light: light}})
	assert.Equal(t, DefaultExploredShade, edge.Shade, "explored tiles never get darker than the floor")

	near := m.At(3, 1)
	assert.InDelta(t, 1.0/16, near.Shade, 1e-9)
}

func TestLightMap_MultipleSourcesTakeBrightest(t *testing.T) {
	m := floorMap(20, 3)
	lm := NewLightMap(m, m, DefaultExploredShade)

	tiles := lm.Update([]LightSource{
		{ID: "a", Pos: domain.Position{X: 2, Y: 1}, Light: domain.LightSourceComponent{Radius: 4, Gradient: true}},
		{ID: "b", Pos: domain.Position{X: 5, Y: 1}, Light: domain.LightSourceComponent{Radius: 4, Gradient: true}},
	})
	lit := litIndex(tiles)

	// (4,1): от a - 1-4/16, от b - 1-1/16
	assert.InDelta(t, 1-1.0/16, lit[domain.Position{X: 4, Y: 1}], 1e-9)
	assert.Len(t, tiles, len(litIndex(tiles)))
}

func TestLightMap_Clear(t *testing.T) {
	m := floorMap(10, 10)
	lm := NewLightMap(m, m, DefaultExploredShade)
	lit := lm.Update([]LightSource{{ID: "p", Pos: domain.Position{X: 5, Y: 5}, Light: domain.LightSourceComponent{Radius: 2}}})
	require.NotEmpty(t, lit)

	cleared := lm.Clear()

	assert.Len(t, cleared, len(lit))
	for _, tile := range cleared {
		assert.Zero(t, tile.Intensity)
	}
	assert.Empty(t, lm.Lit())
	// возвращенный раньше результат не портится
	assert.Equal(t, 1.0, litIndex(lit)[domain.Position{X: 5, Y: 5}])
}
