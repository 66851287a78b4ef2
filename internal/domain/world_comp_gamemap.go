package domain

import (
	"errors"
	"slices"
)

var ErrOutOfBounds = errors.New("out of bounds")

func (m *GameMap) GetIndex(x, y int) int {
	return y*m.Width + x
}

// InBounds проверяет 0 <= x < Width и 0 <= y < Height.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At возвращает клетку по координатам или nil за пределами карты.
func (m *GameMap) At(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return nil
	}
	return &m.Tiles[m.GetIndex(x, y)]
}

// TileAt - то же, что At, но для Position
func (m *GameMap) TileAt(p Position) *Tile {
	return m.At(p.X, p.Y)
}

// SetType меняет тип клетки и пересчитывает BlockLight.
func (m *GameMap) SetType(x, y int, t TileType) {
	tile := m.At(x, y)
	if tile == nil {
		return
	}
	tile.Type = t
	tile.BlockLight = t != TileFloor
}

// TypeAt возвращает тип клетки; за пределами карты - пустота.
func (m *GameMap) TypeAt(x, y int) TileType {
	tile := m.At(x, y)
	if tile == nil {
		return TileVoid
	}
	return tile.Type
}

// --- Контракт для системы освещения ---

func (m *GameMap) Bounds() (int, int) {
	return m.Width, m.Height
}

// BlocksLight - клетки за пределами карты считаются непрозрачными
func (m *GameMap) BlocksLight(x, y int) bool {
	tile := m.At(x, y)
	return tile == nil || tile.BlockLight
}

func (m *GameMap) Explored(x, y int) bool {
	tile := m.At(x, y)
	return tile != nil && tile.Explored
}

func (m *GameMap) MarkExplored(x, y int) {
	if tile := m.At(x, y); tile != nil {
		tile.Explored = true
	}
}

func (m *GameMap) SetShade(x, y int, shade float64) {
	if tile := m.At(x, y); tile != nil {
		tile.Shade = shade
	}
}

// LightIntensity - яркость клетки (инверсия затемнения)
func (m *GameMap) LightIntensity(x, y int) float64 {
	tile := m.At(x, y)
	if tile == nil {
		return 0
	}
	return 1 - tile.Shade
}

// --- Сущности ---

// GetEntitiesAt возвращает список сущностей в конкретной клетке (быстро!)
func (m *GameMap) GetEntitiesAt(x, y int) []*Entity {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.SpatialHash[m.GetIndex(x, y)]
}

// GetEntity ищет сущность по ID
func (m *GameMap) GetEntity(id EntityID) *Entity {
	if m.EntityRegistry == nil {
		return nil
	}
	return m.EntityRegistry[id]
}

// AddEntity регистрирует сущность и кладет ее в индекс по ее позиции
func (m *GameMap) AddEntity(e *Entity) error {
	if !m.InBounds(e.Pos.X, e.Pos.Y) {
		return ErrOutOfBounds
	}
	if m.EntityRegistry == nil {
		m.EntityRegistry = make(map[EntityID]*Entity)
	}
	if m.SpatialHash == nil {
		m.SpatialHash = make(map[int][]*Entity)
	}
	m.EntityRegistry[e.ID] = e
	idx := m.GetIndex(e.Pos.X, e.Pos.Y)
	m.SpatialHash[idx] = append(m.SpatialHash[idx], e)
	return nil
}

// RemoveEntity удаляет сущность из индекса и реестра (смерть, подбор предмета)
func (m *GameMap) RemoveEntity(e *Entity) bool {
	delete(m.EntityRegistry, e.ID)
	return m.unlink(e)
}

// unlink убирает сущность из клетки, сохраняя порядок остальных
func (m *GameMap) unlink(e *Entity) bool {
	idx := m.GetIndex(e.Pos.X, e.Pos.Y)
	entities := m.SpatialHash[idx]

	i := slices.Index(entities, e)
	if i == -1 {
		return false
	}
	entities = slices.Delete(entities, i, i+1)
	if len(entities) == 0 {
		delete(m.SpatialHash, idx)
	} else {
		m.SpatialHash[idx] = entities
	}
	return true
}

// MoveEntity перемещает сущность в индексе
func (m *GameMap) MoveEntity(e *Entity, to Position) error {
	// 1. Проверка границ (на всякий случай)
	if !m.InBounds(to.X, to.Y) {
		return ErrOutOfBounds
	}

	// 2. Удаляем из старой позиции
	m.unlink(e)

	// 3. Обновляем координаты в сущности
	e.Pos = to

	// 4. Добавляем в новую позицию
	idx := m.GetIndex(to.X, to.Y)
	m.SpatialHash[idx] = append(m.SpatialHash[idx], e)
	return nil
}
