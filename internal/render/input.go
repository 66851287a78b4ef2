package render

import (
	"shadowcrawl/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// Input - что сделать с нажатой клавишей
type Input uint8

const (
	InputNone Input = iota
	InputCommand
	InputQuit
)

var runeDirections = map[rune]domain.Position{
	'w': {Y: -1},
	'a': {X: -1},
	's': {Y: 1},
	'd': {X: 1},
}

var keyDirections = map[tcell.Key]domain.Position{
	tcell.KeyUp:    {Y: -1},
	tcell.KeyLeft:  {X: -1},
	tcell.KeyDown:  {Y: 1},
	tcell.KeyRight: {X: 1},
}

// KeyToCommand переводит нажатие в команду игрока.
// WASD/стрелки - шаг, пробел - ждать, e - поднять (E - поднять все),
// r - выбросить выбранное, 1-9 - выбрать слот, q/Esc - выход.
func KeyToCommand(ev *tcell.EventKey) (domain.Command, Input) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.Command{}, InputQuit
	case tcell.KeyRune:
	default:
		if dir, ok := keyDirections[ev.Key()]; ok {
			return domain.Command{Action: domain.ActionMove, Dir: dir}, InputCommand
		}
		return domain.Command{}, InputNone
	}

	r := ev.Rune()
	if dir, ok := runeDirections[r]; ok {
		return domain.Command{Action: domain.ActionMove, Dir: dir}, InputCommand
	}

	switch {
	case r == 'q':
		return domain.Command{}, InputQuit
	case r == ' ':
		return domain.Command{Action: domain.ActionWait}, InputCommand
	case r == 'e':
		return domain.Command{Action: domain.ActionPickup}, InputCommand
	case r == 'E':
		return domain.Command{Action: domain.ActionPickup, Multiple: true}, InputCommand
	case r == 'r':
		return domain.Command{Action: domain.ActionDrop}, InputCommand
	case r >= '1' && r <= '9':
		return domain.Command{Action: domain.ActionEquip, Slot: int(r - '1')}, InputCommand
	}
	return domain.Command{}, InputNone
}
