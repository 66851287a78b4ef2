package render

import (
	"testing"

	"shadowcrawl/internal/domain"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyToCommand(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		cmd   domain.Command
		input Input
	}{
		{"w moves up", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), domain.Command{Action: domain.ActionMove, Dir: domain.Position{Y: -1}}, InputCommand},
		{"d moves right", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), domain.Command{Action: domain.ActionMove, Dir: domain.Position{X: 1}}, InputCommand},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), domain.Command{Action: domain.ActionMove, Dir: domain.Position{X: -1}}, InputCommand},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), domain.Command{Action: domain.ActionMove, Dir: domain.Position{Y: 1}}, InputCommand},
		{"space waits", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), domain.Command{Action: domain.ActionWait}, InputCommand},
		{"e picks up", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), domain.Command{Action: domain.ActionPickup}, InputCommand},
		{"E picks up all", tcell.NewEventKey(tcell.KeyRune, 'E', tcell.ModNone), domain.Command{Action: domain.ActionPickup, Multiple: true}, InputCommand},
		{"r drops", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), domain.Command{Action: domain.ActionDrop}, InputCommand},
		{"1 selects first slot", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), domain.Command{Action: domain.ActionEquip, Slot: 0}, InputCommand},
		{"9 selects last slot", tcell.NewEventKey(tcell.KeyRune, '9', tcell.ModNone), domain.Command{Action: domain.ActionEquip, Slot: 8}, InputCommand},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), domain.Command{}, InputQuit},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), domain.Command{}, InputQuit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), domain.Command{}, InputNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), domain.Command{}, InputNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, input := KeyToCommand(tt.ev)
			assert.Equal(t, tt.input, input)
			assert.Equal(t, tt.cmd, cmd)
		})
	}
}
