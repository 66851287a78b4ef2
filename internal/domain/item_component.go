package domain

import "slices"

// Add кладет предмет в следующий свободный слот.
// Возвращает false, если инвентарь полон.
func (inv *InventoryComponent) Add(item *Entity) bool {
	if inv == nil || item == nil || inv.IsFull() {
		return false
	}
	inv.Slots = append(inv.Slots, item)
	return true
}

// Remove вынимает предмет из слота. Слоты сдвигаются, выбор сбрасывается.
func (inv *InventoryComponent) Remove(index int) *Entity {
	if inv == nil || index < 0 || index >= len(inv.Slots) {
		return nil
	}
	item := inv.Slots[index]
	inv.Slots = slices.Delete(inv.Slots, index, index+1)
	inv.Active = nil
	return item
}

// IndexOf ищет предмет в слотах (-1 если его нет)
func (inv *InventoryComponent) IndexOf(item *Entity) int {
	if inv == nil {
		return -1
	}
	return slices.Index(inv.Slots, item)
}

// Get возвращает предмет из слота или nil для пустого слота
func (inv *InventoryComponent) Get(index int) *Entity {
	if inv == nil || index < 0 || index >= len(inv.Slots) {
		return nil
	}
	return inv.Slots[index]
}

func (inv *InventoryComponent) SetActive(index int) {
	inv.Active = inv.Get(index)
}

func (inv *InventoryComponent) IsFull() bool {
	return len(inv.Slots) >= inv.MaxSlots
}

func (inv *InventoryComponent) IsEmpty() bool {
	return len(inv.Slots) == 0
}
