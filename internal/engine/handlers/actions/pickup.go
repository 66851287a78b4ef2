package actions

import (
	"errors"
	"strings"

	"shadowcrawl/internal/domain"
	"shadowcrawl/internal/engine/handlers"
	"shadowcrawl/internal/systems"
)

// HandlePickup обрабатывает команду PICKUP - подбор предметов с клетки под ногами.
// Подбор не тратит ход.
func HandlePickup(ctx handlers.Context, multiple bool) (handlers.Result, error) {
	msgs, err := systems.PickUp(ctx.World.Map(), ctx.Actor, multiple)
	if err != nil {
		return refusal(err), nil
	}
	return handlers.Result{Msg: strings.Join(msgs, ". "), MsgType: domain.LogInfo}, nil
}

// refusal превращает отказ системы инвентаря в строку для игрока
func refusal(err error) handlers.Result {
	var msg string
	switch {
	case errors.Is(err, systems.ErrInventoryFull):
		msg = "Your inventory is full!"
	case errors.Is(err, systems.ErrNothingHere):
		msg = "There is nothing here..."
	case errors.Is(err, systems.ErrNoActiveItem):
		msg = "You have no selected item!"
	case errors.Is(err, systems.ErrEmptySlot):
		msg = "This slot is empty!"
	default:
		msg = err.Error()
	}
	return handlers.Refusal(msg)
}
