package actions

import (
	"shadowcrawl/internal/domain"
	"shadowcrawl/internal/engine/handlers"
	"shadowcrawl/internal/systems"
)

// HandleEquip обрабатывает команду EQUIP - выбор оружия из слота инвентаря
func HandleEquip(ctx handlers.Context, slot int) (handlers.Result, error) {
	msg, err := systems.Equip(ctx.Actor, slot)
	if err != nil {
		return refusal(err), nil
	}
	return handlers.Result{Msg: msg, MsgType: domain.LogInfo}, nil
}
