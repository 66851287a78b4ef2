package render

import (
	"fmt"
	"strings"

	"shadowcrawl/pkg/api"
	"shadowcrawl/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// DefaultLogLines - сколько последних строк лога видно под картой
const DefaultLogLines = 5

// Terminal рисует снимок мира в tcell.Screen.
// Снизу вверх: строки лога, строка статуса, остальное - карта.
type Terminal struct {
	screen   tcell.Screen
	logLines int
	log      *logrus.Entry
}

func NewTerminal(screen tcell.Screen, logLines int) *Terminal {
	if logLines < 0 {
		logLines = 0
	}
	return &Terminal{
		screen:   screen,
		logLines: logLines,
		log:      logger.Log.WithField("component", "terminal"),
	}
}

// Resize перерисовывает терминал под новый размер
func (t *Terminal) Resize() {
	t.screen.Sync()
	w, h := t.screen.Size()
	t.log.WithFields(logrus.Fields{"width": w, "height": h}).Debug("Screen resized.")
}

// Viewport - размер области карты на экране
func (t *Terminal) Viewport() (int, int) {
	w, h := t.screen.Size()
	return w, max(h-1-t.logLines, 0)
}

// Camera возвращает смещение карты так, чтобы игрок был в центре,
// но без выезда за края карты.
func Camera(playerX, playerY, viewW, viewH, gridW, gridH int) (int, int) {
	return cameraAxis(playerX, viewW, gridW), cameraAxis(playerY, viewH, gridH)
}

func cameraAxis(pos, view, grid int) int {
	if grid <= view {
		return 0
	}
	return min(max(pos-view/2, 0), grid-view)
}

// Draw перерисовывает экран целиком
func (t *Terminal) Draw(snap *api.Snapshot) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	t.screen.SetStyle(bg)
	t.screen.Clear()

	viewW, viewH := t.Viewport()
	camX, camY := 0, 0
	player := snap.Player()
	if player != nil {
		camX, camY = Camera(player.Pos.X, player.Pos.Y, viewW, viewH, snap.Grid.Width, snap.Grid.Height)
	}

	shades := t.drawMap(snap, camX, camY, viewW, viewH, bg)
	t.drawEntities(snap, shades, camX, camY, viewW, viewH, bg)
	t.drawStatus(snap, player, viewH)
	t.drawLog(snap, viewH+1, bg)

	t.screen.Show()
}

// drawMap рисует исследованные клетки; яркость = 1 - Shade.
// Возвращает затемнение по индексу клетки для отрисовки сущностей.
func (t *Terminal) drawMap(snap *api.Snapshot, camX, camY, viewW, viewH int, bg tcell.Style) map[int]float64 {
	shades := make(map[int]float64, len(snap.Map))
	for _, tile := range snap.Map {
		shades[tile.Y*snap.Grid.Width+tile.X] = tile.Shade

		sx, sy := tile.X-camX, tile.Y-camY
		if sx < 0 || sy < 0 || sx >= viewW || sy >= viewH {
			continue
		}
		base := RgbFloor
		if tile.IsWall {
			base = RgbWall
		}
		glyph := []rune(tile.Symbol)
		if len(glyph) == 0 {
			continue
		}
		t.screen.SetContent(sx, sy, glyph[0], nil, bg.Foreground(Dim(base, 1-tile.Shade)))
	}
	return shades
}

func (t *Terminal) drawEntities(snap *api.Snapshot, shades map[int]float64, camX, camY, viewW, viewH int, bg tcell.Style) {
	for _, e := range snap.Entities {
		sx, sy := e.Pos.X-camX, e.Pos.Y-camY
		if sx < 0 || sy < 0 || sx >= viewW || sy >= viewH {
			continue
		}
		glyph := []rune(e.Render.Symbol)
		if len(glyph) == 0 {
			continue
		}

		brightness := 1.0
		if e.ID != snap.PlayerID {
			shade, ok := shades[e.Pos.Y*snap.Grid.Width+e.Pos.X]
			if !ok {
				shade = 1
			}
			brightness = max(1-shade, minEntityBrightness)
		}
		t.screen.SetContent(sx, sy, glyph[0], nil, bg.Foreground(Dim(ParseColor(e.Render.Color), brightness)))
	}
}

// drawStatus - строка статуса: здоровье, урон, эффекты, инвентарь, время
func (t *Terminal) drawStatus(snap *api.Snapshot, player *api.EntityView, y int) {
	w, _ := t.screen.Size()
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusBar)
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}

	t.drawText(0, y, StatusLine(snap, player), style, w)

	if player != nil && player.Stats != nil && player.Stats.HP*4 <= player.Stats.MaxHP {
		// Здоровье на исходе - подсвечиваем первую часть строки
		t.drawText(0, y, fmt.Sprintf("HP %d/%d", player.Stats.HP, player.Stats.MaxHP), style.Foreground(RgbHealthLow), w)
	}
}

// StatusLine собирает текст строки статуса
func StatusLine(snap *api.Snapshot, player *api.EntityView) string {
	var b strings.Builder
	if player != nil && player.Stats != nil {
		fmt.Fprintf(&b, "HP %d/%d  DMG %d", player.Stats.HP, player.Stats.MaxHP, player.Stats.Damage)
	}
	if player != nil && len(player.Effects) > 0 {
		fmt.Fprintf(&b, "  [%s]", strings.Join(player.Effects, ","))
	}
	if player != nil && player.Inventory != nil {
		b.WriteString("  Inv")
		for i := 0; i < player.Inventory.MaxSlots; i++ {
			slot := "."
			if i < len(player.Inventory.Items) {
				slot = player.Inventory.Items[i].Symbol
			}
			if i == player.Inventory.Active {
				fmt.Fprintf(&b, " [%d:%s]", i+1, slot)
			} else {
				fmt.Fprintf(&b, " %d:%s", i+1, slot)
			}
		}
	}
	fmt.Fprintf(&b, "  Depth %d  T %.3f", snap.Depth, snap.Tick)
	return b.String()
}

func (t *Terminal) drawLog(snap *api.Snapshot, top int, bg tcell.Style) {
	w, _ := t.screen.Size()
	logs := snap.Logs
	if len(logs) > t.logLines {
		logs = logs[len(logs)-t.logLines:]
	}
	for i, entry := range logs {
		t.drawText(0, top+i, entry.Text, bg.Foreground(LogColor(entry.Type)), w)
	}
}

// drawText пишет строку слева направо, обрезая по ширине экрана
func (t *Terminal) drawText(x, y int, text string, style tcell.Style, width int) {
	for _, r := range text {
		if x >= width {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
