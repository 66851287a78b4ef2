package dungeon

import (
	"math/rand"

	"shadowcrawl/internal/domain"
	"shadowcrawl/pkg/utils"
)

// PlayerOptions - настраиваемые параметры героя
type PlayerOptions struct {
	LightRadius    int
	LightGradient  bool
	InventorySlots int
}

func DefaultPlayerOptions() PlayerOptions {
	return PlayerOptions{
		LightRadius:    6,
		LightGradient:  true,
		InventorySlots: 9,
	}
}

// CreatePlayer создает героя на заданной позиции со стартовым снаряжением.
// Герой начинает игру горящим.
func CreatePlayer(pos domain.Position, opts PlayerOptions, rng *rand.Rand) *domain.Entity {
	p := &domain.Entity{
		ID:     domain.EntityID(utils.NewEntityID(rng)),
		Kind:   domain.KindPlayer,
		Name:   "You",
		Speed:  domain.DefaultSpeed,
		Pos:    pos,
		Render: &domain.RenderComponent{Glyph: '@', Color: "#22D3EE"},
		Health: &domain.HealthComponent{HP: 100, MaxHP: 100},
		Weapon: &domain.WeaponComponent{Damage: 1},
		LightSource: &domain.LightSourceComponent{
			Radius:   opts.LightRadius,
			Gradient: opts.LightGradient,
		},
		Collide:    &domain.CollideComponent{Collide: true},
		Inventory:  &domain.InventoryComponent{MaxSlots: opts.InventorySlots},
		Status:     &domain.StatusEffectComponent{},
		Controller: &domain.ControllerComponent{},
		// Пустой список целей - на игрока может напасть кто угодно
		CanFight: &domain.CanFightComponent{},
		Tooltip:  &domain.TooltipComponent{Title: "You", Type: "Player"},
	}

	p.Status.Effects = append(p.Status.Effects, domain.NewFireEffect())
	return p
}
