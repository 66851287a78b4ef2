package domain

import "errors"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionWait
	ActionPickup
	ActionDrop
	ActionEquip
)

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:   "MOVE",
	ActionWait:   "WAIT",
	ActionPickup: "PICKUP",
	ActionDrop:   "DROP",
	ActionEquip:  "EQUIP",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Command - одно действие игрока (из клавиатуры или из теста)
type Command struct {
	Action   ActionType
	Dir      Position // для MOVE: смещение на одну клетку
	Slot     int      // для EQUIP: индекс слота
	Multiple bool     // для PICKUP: поднять все
}

var (
	ErrBadDirection = errors.New("direction must be a single orthogonal step")
	ErrBadSlot      = errors.New("slot index out of range")
)

// Validate проверяет полезную нагрузку команды
func (c Command) Validate() error {
	switch c.Action {
	case ActionMove:
		if abs(c.Dir.X)+abs(c.Dir.Y) != 1 {
			return ErrBadDirection
		}
	case ActionEquip:
		if c.Slot < 0 {
			return ErrBadSlot
		}
	}
	return nil
}
