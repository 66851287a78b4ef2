package engine

import (
	"slices"

	"shadowcrawl/internal/domain"
	"shadowcrawl/pkg/api"
)

// Порядок отрисовки по видам сущностей: больше - выше
var drawLayers = map[domain.EntityKind]int{
	domain.KindDecoration: 0,
	domain.KindProp:       1,
	domain.KindItem:       2,
	domain.KindArachnid:   3,
	domain.KindUndead:     3,
	domain.KindPlayer:     4,
}

// Snapshot создает "снимок" мира, видимый игроку
func (g *Game) Snapshot() *api.Snapshot {
	m := g.Map()

	// 1. Освещенные сейчас клетки (поле зрения).
	// Край градиента имеет нулевую яркость и остается темным.
	visible := make(map[int]bool, len(g.lights.Lit()))
	for _, t := range g.lights.Lit() {
		if t.Intensity > 0 {
			visible[m.GetIndex(t.X, t.Y)] = true
		}
	}

	// 2. Формирование карты: только исследованные тайлы
	var mapDTO []api.TileView
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.At(x, y)
			if !tile.Explored {
				continue
			}
			tView := api.TileView{
				X: x, Y: y,
				Symbol:    ".",
				Shade:     tile.Shade,
				IsVisible: visible[m.GetIndex(x, y)],
			}
			switch tile.Type {
			case domain.TileWall:
				tView.Symbol = "#"
				tView.IsWall = true
			case domain.TileVoid:
				tView.Symbol = " "
			}
			mapDTO = append(mapDTO, tView)
		}
	}

	// 3. Сущности на освещенных клетках, в порядке появления на клетке
	var viewEntities []api.EntityView
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			for _, e := range m.GetEntitiesAt(x, y) {
				if e == g.player || visible[m.GetIndex(x, y)] {
					viewEntities = append(viewEntities, g.toEntityView(e))
				}
			}
		}
	}
	slices.SortStableFunc(viewEntities, func(a, b api.EntityView) int {
		return drawLayers[domain.EntityKind(a.Kind)] - drawLayers[domain.EntityKind(b.Kind)]
	})

	logs := make([]api.LogEntry, len(g.logs))
	for i, l := range g.logs {
		logs[i] = api.LogEntry{Tick: l.Tick, Text: l.Text, Type: l.Type}
	}

	snap := &api.Snapshot{
		Tick:          g.scheduler.Time(),
		Depth:         g.restarts,
		AwaitingInput: g.awaitingInput,
		Grid:          api.GridMeta{Width: m.Width, Height: m.Height},
		Map:           mapDTO,
		Entities:      viewEntities,
		Logs:          logs,
	}
	if g.player != nil {
		snap.PlayerID = string(g.player.ID)
	}
	return snap
}

// toEntityView конвертирует доменную сущность в DTO для отрисовки.
func (g *Game) toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   string(e.ID),
		Kind: string(e.Kind),
		Name: e.Name,
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y

	if e.Render != nil {
		view.Render.Symbol = string(e.Render.Glyph)
		view.Render.Color = e.Render.Color
	} else {
		view.Render.Symbol = "?"
		view.Render.Color = "#ffffff"
	}

	if e.Health != nil {
		view.Stats = &api.StatsView{
			HP:     e.Health.HP,
			MaxHP:  e.Health.MaxHP,
			IsDead: e.IsDead(),
		}
		if e.Weapon != nil {
			view.Stats.Damage = e.Weapon.Damage
		}
	}

	if e.Status != nil {
		for _, eff := range e.Status.Effects {
			view.Effects = append(view.Effects, eff.Name)
		}
	}

	// Инвентарь виден только у игрока
	if e == g.player && e.Inventory != nil {
		inv := &api.InventoryView{
			Items:    make([]api.ItemView, 0, len(e.Inventory.Slots)),
			MaxSlots: e.Inventory.MaxSlots,
			Active:   e.Inventory.IndexOf(e.Inventory.Active),
		}
		for _, item := range e.Inventory.Slots {
			iv := api.ItemView{ID: string(item.ID), Name: item.Name}
			if item.Render != nil {
				iv.Symbol = string(item.Render.Glyph)
				iv.Color = item.Render.Color
			}
			if item.Weapon != nil {
				iv.Damage = item.Weapon.Damage
			}
			inv.Items = append(inv.Items, iv)
		}
		view.Inventory = inv
	}

	return view
}
