package systems

import (
	"shadowcrawl/internal/domain"
	"shadowcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// DefaultExploredShade - затемнение уже исследованных клеток вне света
const DefaultExploredShade = 0.7

// LightGrid - то, что освещению нужно читать из карты.
type LightGrid interface {
	Bounds() (width, height int)
	BlocksLight(x, y int) bool
}

// TileMemory - то, что освещение пишет в карту: исследованность и затемнение.
type TileMemory interface {
	Explored(x, y int) bool
	MarkExplored(x, y int)
	SetShade(x, y int, shade float64)
}

// LitTile - освещенная клетка. Intensity: 1 - полный свет, 0 - темнота.
type LitTile struct {
	X         int
	Y         int
	Intensity float64
}

// LightSource - источник света на карте
type LightSource struct {
	ID    domain.EntityID
	Pos   domain.Position
	Light domain.LightSourceComponent
}

// litSet собирает освещенные клетки без повторов (в порядке обнаружения).
// При повторе остается максимальная яркость.
type litSet struct {
	width int
	tiles []LitTile
	index map[int]int
}

func newLitSet(width int) *litSet {
	return &litSet{width: width, index: make(map[int]int)}
}

func (s *litSet) add(x, y int, intensity float64) {
	key := y*s.width + x
	if i, ok := s.index[key]; ok {
		if intensity > s.tiles[i].Intensity {
			s.tiles[i].Intensity = intensity
		}
		return
	}
	s.index[key] = len(s.tiles)
	s.tiles = append(s.tiles, LitTile{X: x, Y: y, Intensity: intensity})
}

// CastLight считает освещение от одного источника рекурсивным shadowcasting по 8 октантам.
// Клетка источника всегда освещена полностью.
func CastLight(grid LightGrid, origin domain.Position, light domain.LightSourceComponent) []LitTile {
	width, _ := grid.Bounds()
	set := newLitSet(width)
	castInto(grid, set, origin, light)
	return set.tiles
}

func castInto(grid LightGrid, set *litSet, origin domain.Position, light domain.LightSourceComponent) {
	width, height := grid.Bounds()
	if origin.X < 0 || origin.Y < 0 || origin.X >= width || origin.Y >= height {
		return
	}

	if light.Radius > 0 {
		for i := 0; i < 8; i++ {
			castOctant(grid, set, origin.X, origin.Y, 1, 1.0, 0.0, light,
				multipliers[0][i], multipliers[1][i],
				multipliers[2][i], multipliers[3][i])
		}
	}

	set.add(origin.X, origin.Y, 1)
}

func castOctant(grid LightGrid, set *litSet, cx, cy, row int, start, end float64, light domain.LightSourceComponent, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	width, height := grid.Bounds()
	radius := light.Radius
	radiusSq := radius * radius
	newStart := 0.0

	for i := row; i <= radius; i++ {
		dx, dy := -i-1, -i
		blocked := false

		for dx <= 0 {
			dx++

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			// За пределами карты клетку пропускаем, скан продолжается
			if X < 0 || Y < 0 || X >= width || Y >= height {
				continue
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if distSq := dx*dx + dy*dy; distSq <= radiusSq {
				intensity := 1.0
				if light.Gradient {
					intensity = 1 - float64(distSq)/float64(radiusSq)
				}
				set.add(X, Y, intensity)
			}

			// Логика теней
			if blocked {
				// Мы идем вдоль стены...
				if grid.BlocksLight(X, Y) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else if grid.BlocksLight(X, Y) && i < radius {
				// Мы шли по пустоте и наткнулись на стену
				blocked = true
				castOctant(grid, set, cx, cy, i+1, start, lSlope, light, xx, xy, yx, yy)
				newStart = rSlope
			}
		}

		if blocked {
			break
		}
	}
}

// LightMap держит список клеток, освещенных на прошлом проходе, и переносит
// результат в память карты: исследованность и затемнение.
type LightMap struct {
	grid          LightGrid
	memory        TileMemory
	exploredShade float64

	lit []LitTile
	log *logrus.Entry
}

func NewLightMap(grid LightGrid, memory TileMemory, exploredShade float64) *LightMap {
	return &LightMap{
		grid:          grid,
		memory:        memory,
		exploredShade: exploredShade,
		log:           logger.Log.WithField("component", "lightmap_system"),
	}
}

// Clear забывает прошлый проход и возвращает его клетки с нулевой яркостью.
func (lm *LightMap) Clear() []LitTile {
	old := make([]LitTile, len(lm.lit))
	for i, t := range lm.lit {
		old[i] = LitTile{X: t.X, Y: t.Y}
	}
	lm.lit = nil
	return old
}

// Update пересчитывает свет от всех источников (яркость - максимум по источникам).
// Клетки, погасшие с прошлого прохода, уходят в затемнение исследованных.
// Возвращает клетки, освещенные сейчас.
func (lm *LightMap) Update(sources []LightSource) []LitTile {
	width, _ := lm.grid.Bounds()
	set := newLitSet(width)
	for _, src := range sources {
		castInto(lm.grid, set, src.Pos, src.Light)
	}

	for _, t := range lm.Clear() {
		if _, stillLit := set.index[t.Y*width+t.X]; !stillLit {
			lm.apply(t)
		}
	}
	for _, t := range set.tiles {
		lm.apply(t)
	}

	lm.lit = set.tiles

	lm.log.WithFields(logrus.Fields{
		"sources":   len(sources),
		"lit_tiles": len(set.tiles),
	}).Debug("Light map updated.")

	return set.tiles
}

// Lit - клетки последнего прохода
func (lm *LightMap) Lit() []LitTile {
	return lm.lit
}

// apply переносит яркость в память карты.
// Неисследованная клетка становится исследованной и получает затемнение как есть;
// исследованная не темнеет сильнее exploredShade.
func (lm *LightMap) apply(t LitTile) {
	shade := 1 - t.Intensity

	if !lm.memory.Explored(t.X, t.Y) {
		lm.memory.MarkExplored(t.X, t.Y)
		lm.memory.SetShade(t.X, t.Y, shade)
		return
	}

	if shade < lm.exploredShade {
		lm.memory.SetShade(t.X, t.Y, shade)
	} else {
		lm.memory.SetShade(t.X, t.Y, lm.exploredShade)
	}
}
