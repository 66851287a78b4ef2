package dungeon

import (
	"math/rand"
	"slices"

	"shadowcrawl/internal/domain"
	"shadowcrawl/pkg/utils"
)

// EntityTemplate определяет шаблон для создания сущности.
// Нулевые значения компонентов означают, что компонента у сущности не будет.
type EntityTemplate struct {
	Name    string
	Kind    domain.EntityKind
	Speed   float64
	Render  domain.RenderComponent
	Tooltip domain.TooltipComponent

	HP        int
	Damage    int
	Collide   bool
	Walks     bool
	FightWith []domain.EntityKind // nil - не дерется
	Openable  bool
	PickUpBy  []domain.EntityKind // nil - не подбирается
}

// SpawnEntity создает сущность из шаблона на заданной позиции
func (t EntityTemplate) SpawnEntity(pos domain.Position, rng *rand.Rand) *domain.Entity {
	e := &domain.Entity{
		ID:     domain.EntityID(utils.NewEntityID(rng)),
		Kind:   t.Kind,
		Name:   t.Name,
		Speed:  t.Speed,
		Pos:    pos,
		Render: &domain.RenderComponent{Glyph: t.Render.Glyph, Color: t.Render.Color},
	}
	if e.Speed <= 0 {
		e.Speed = domain.DefaultSpeed
	}

	if t.Tooltip.Title != "" {
		tooltip := t.Tooltip
		e.Tooltip = &tooltip
	}
	if t.HP > 0 {
		e.Health = &domain.HealthComponent{HP: t.HP, MaxHP: t.HP}
	}
	if t.Damage > 0 {
		e.Weapon = &domain.WeaponComponent{Damage: t.Damage}
	}
	if t.Collide {
		e.Collide = &domain.CollideComponent{Collide: true}
	}
	if t.Walks {
		e.Behaviour = &domain.BehaviourComponent{
			Kind:       domain.BehaviourWalk,
			Acceptable: []domain.TileType{domain.TileFloor},
		}
	}
	if t.FightWith != nil {
		e.CanFight = &domain.CanFightComponent{Targets: slices.Clone(t.FightWith)}
	}
	if t.Openable {
		e.CanOpen = &domain.CanOpenComponent{State: domain.StateClosed}
	}
	if t.PickUpBy != nil {
		e.CanPickUp = &domain.CanPickUpComponent{By: slices.Clone(t.PickUpBy)}
	}

	return e
}

// --- ВРАГИ ---

var Spider = EntityTemplate{
	Name:   "Quick Spider",
	Kind:   domain.KindArachnid,
	Speed:  2000,
	Render: domain.RenderComponent{Glyph: 's', Color: "#A3A3A3"},
	Tooltip: domain.TooltipComponent{
		Title:       "Quick Spider",
		Type:        "Arachnid Enemy",
		Description: "The quick spider is twice as fast as you and will definitely attack you.",
	},
	HP:        20,
	Damage:    4,
	Collide:   true,
	Walks:     true,
	FightWith: []domain.EntityKind{domain.KindPlayer},
}

var Skeleton = EntityTemplate{
	Name:   "Skeleton",
	Kind:   domain.KindUndead,
	Speed:  1000,
	Render: domain.RenderComponent{Glyph: 'S', Color: "#E5E5E5"},
	Tooltip: domain.TooltipComponent{
		Title:       "Skeleton",
		Type:        "Undead Enemy",
		Description: "A very dangerous but unstable enemy. Stab just right and the bones collapse.",
	},
	HP:        50,
	Damage:    10,
	Collide:   true,
	Walks:     true,
	FightWith: []domain.EntityKind{domain.KindPlayer},
}

// --- ПРЕДМЕТЫ ---

var Knife = EntityTemplate{
	Name:     "Knife",
	Kind:     domain.KindItem,
	Render:   domain.RenderComponent{Glyph: '/', Color: "#94A3B8"},
	Tooltip:  domain.TooltipComponent{Title: "Knife", Type: "Item", Description: "Weapon"},
	Damage:   5,
	PickUpBy: []domain.EntityKind{domain.KindPlayer},
}

var ShortSword = EntityTemplate{
	Name:     "Short Sword",
	Kind:     domain.KindItem,
	Render:   domain.RenderComponent{Glyph: '|', Color: "#CBD5E1"},
	Tooltip:  domain.TooltipComponent{Title: "Short Sword", Type: "Item", Description: "Weapon"},
	Damage:   10,
	PickUpBy: []domain.EntityKind{domain.KindPlayer},
}

// --- ОКРУЖЕНИЕ ---

var Door = EntityTemplate{
	Name:     "Wooden Door",
	Kind:     domain.KindProp,
	Render:   domain.RenderComponent{Glyph: '+', Color: "#B45309"},
	Tooltip:  domain.TooltipComponent{Title: "Wooden Door", Type: "Closed"},
	Collide:  true,
	Openable: true,
}

var Entrance = EntityTemplate{
	Name:   "Entrance",
	Kind:   domain.KindProp,
	Render: domain.RenderComponent{Glyph: '<', Color: "#FFFFFF"},
}

var Exit = EntityTemplate{
	Name:   "Exit",
	Kind:   domain.KindProp,
	Render: domain.RenderComponent{Glyph: '>', Color: "#FFFFFF"},
}

var Grass = EntityTemplate{
	Name:   "Grass",
	Kind:   domain.KindDecoration,
	Render: domain.RenderComponent{Glyph: '"', Color: "#15803D"},
}
