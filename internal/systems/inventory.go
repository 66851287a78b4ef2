package systems

import (
	"errors"
	"fmt"

	"shadowcrawl/internal/domain"
)

var (
	ErrNoInventory   = errors.New("entity has no inventory")
	ErrInventoryFull = errors.New("inventory is full")
	ErrNothingHere   = errors.New("nothing to pick up here")
	ErrNoActiveItem  = errors.New("no item selected")
	ErrEmptySlot     = errors.New("slot is empty")
)

// --- PICKUP ---

// PickUp поднимает предметы с клетки, на которой стоит actor: первый или все (multiple).
// Возвращает строки для лога.
func PickUp(m *domain.GameMap, actor *domain.Entity, multiple bool) ([]string, error) {
	if actor.Inventory == nil {
		return nil, ErrNoInventory
	}
	if actor.Inventory.IsFull() {
		return nil, ErrInventoryFull
	}

	var pickups []*domain.Entity
	for _, e := range m.GetEntitiesAt(actor.Pos.X, actor.Pos.Y) {
		if e != actor && e.CanBePickedUpBy(actor) {
			pickups = append(pickups, e)
		}
	}
	if len(pickups) == 0 {
		return nil, ErrNothingHere
	}
	if !multiple {
		pickups = pickups[:1]
	}

	var msgs []string
	for _, item := range pickups {
		if err := pickUpOne(m, actor, item); err != nil {
			// Часть уже поднята - это не ошибка для игрока
			if len(msgs) > 0 {
				break
			}
			return nil, err
		}
		msgs = append(msgs, fmt.Sprintf("%s picked up a %s", actor.Name, item.Name))
	}
	return msgs, nil
}

func pickUpOne(m *domain.GameMap, actor, item *domain.Entity) error {
	if !actor.Inventory.Add(item) {
		return ErrInventoryFull
	}
	m.RemoveEntity(item)
	return nil
}

// PickUpItem - подбор конкретного предмета при столкновении (NPC)
func PickUpItem(m *domain.GameMap, actor, item *domain.Entity) (string, error) {
	if actor.Inventory == nil {
		return "", ErrNoInventory
	}
	if err := pickUpOne(m, actor, item); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s picked up a %s", actor.Name, item.Name), nil
}

// --- DROP ---

// Drop кладет выбранный предмет на клетку actor.
func Drop(m *domain.GameMap, actor *domain.Entity) (string, error) {
	if actor.Inventory == nil {
		return "", ErrNoInventory
	}
	item := actor.Inventory.Active
	if item == nil {
		return "", ErrNoActiveItem
	}

	index := actor.Inventory.IndexOf(item)
	actor.Inventory.Remove(index)

	item.Pos = actor.Pos
	if err := m.AddEntity(item); err != nil {
		return "", fmt.Errorf("drop %s: %w", item.Name, err)
	}

	return fmt.Sprintf("%s dropped a %s", actor.Name, item.Name), nil
}

// --- EQUIP ---

// Equip делает предмет из слота активным; урон оружия берется из предмета.
func Equip(actor *domain.Entity, index int) (string, error) {
	if actor.Inventory == nil {
		return "", ErrNoInventory
	}
	item := actor.Inventory.Get(index)
	if item == nil {
		return "", ErrEmptySlot
	}

	if item.Weapon != nil {
		if actor.Weapon == nil {
			actor.Weapon = &domain.WeaponComponent{}
		}
		actor.Weapon.Damage = item.Weapon.Damage
	}
	actor.Inventory.SetActive(index)

	return fmt.Sprintf("%s equipped a %s", actor.Name, item.Name), nil
}
