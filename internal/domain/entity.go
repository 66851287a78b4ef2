package domain

import "slices"

type EntityID string

type Entity struct {
	// Идентификация
	ID   EntityID   `json:"id"`
	Kind EntityKind `json:"kind"`
	Name string     `json:"name"`

	// Speed - чем больше, тем чаще ходит (задержка = 1 / Speed)
	Speed float64 `json:"speed"`

	Pos Position `json:"pos"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Render      *RenderComponent       `json:"render,omitempty"`
	Health      *HealthComponent       `json:"health,omitempty"`
	Weapon      *WeaponComponent       `json:"weapon,omitempty"`
	LightSource *LightSourceComponent  `json:"lightSource,omitempty"`
	Collide     *CollideComponent      `json:"collide,omitempty"`
	Inventory   *InventoryComponent    `json:"inventory,omitempty"`
	Status      *StatusEffectComponent `json:"status,omitempty"`
	Controller  *ControllerComponent   `json:"controller,omitempty"`
	Behaviour   *BehaviourComponent    `json:"behaviour,omitempty"`
	CanFight    *CanFightComponent     `json:"canFight,omitempty"`
	CanOpen     *CanOpenComponent      `json:"canOpen,omitempty"`
	CanPickUp   *CanPickUpComponent    `json:"canPickUp,omitempty"`
	Tooltip     *TooltipComponent      `json:"tooltip,omitempty"`
}

// IsPlayerControlled - сущность ждет ввода с клавиатуры в свой ход
func (e *Entity) IsPlayerControlled() bool {
	return e.Controller != nil
}

// IsActor - сущность участвует в очереди ходов
func (e *Entity) IsActor() bool {
	return e.Controller != nil || e.Behaviour != nil
}

// Blocks - клетку с этой сущностью нельзя занять
func (e *Entity) Blocks() bool {
	return e.Collide != nil && e.Collide.Collide
}

// IsDead - у сущности есть здоровье и оно исчерпано
func (e *Entity) IsDead() bool {
	return e.Health != nil && e.Health.IsDead()
}

// CanBeAttackedBy проверяет фильтр CanFight против вида нападающего.
func (e *Entity) CanBeAttackedBy(attacker *Entity) bool {
	if e.CanFight == nil {
		return false
	}
	return len(e.CanFight.Targets) == 0 || slices.Contains(e.CanFight.Targets, attacker.Kind)
}

// CanBePickedUpBy проверяет фильтр CanPickUp.
func (e *Entity) CanBePickedUpBy(picker *Entity) bool {
	if e.CanPickUp == nil {
		return false
	}
	return len(e.CanPickUp.By) == 0 || slices.Contains(e.CanPickUp.By, picker.Kind)
}
