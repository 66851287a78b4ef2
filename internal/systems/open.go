package systems

import "shadowcrawl/internal/domain"

// OpenDoor открывает дверь: она перестает занимать клетку и пропускает свет.
// Возвращает false, если открывать нечего или дверь уже открыта.
func OpenDoor(m *domain.GameMap, door *domain.Entity) bool {
	if door.CanOpen == nil || door.CanOpen.State == domain.StateOpen {
		return false
	}

	door.CanOpen.State = domain.StateOpen
	if door.Collide != nil {
		door.Collide.Collide = false
	}
	if door.Tooltip != nil {
		door.Tooltip.Type = "Open"
	}
	if door.Render != nil {
		door.Render.Glyph = '\''
	}
	if tile := m.TileAt(door.Pos); tile != nil {
		tile.BlockLight = false
	}
	return true
}
