package render

import (
	"shadowcrawl/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// Палитра терминала
var (
	RgbBackground = tcell.NewRGBColor(12, 10, 9)
	RgbWall       = tcell.NewRGBColor(168, 162, 158)
	RgbFloor      = tcell.NewRGBColor(120, 113, 108)
	RgbStatusBar  = tcell.NewRGBColor(250, 250, 249)
	RgbStatusBg   = tcell.NewRGBColor(41, 37, 36)
	RgbHealthLow  = tcell.NewRGBColor(239, 68, 68)

	RgbLogInfo   = tcell.NewRGBColor(214, 211, 209)
	RgbLogCombat = tcell.NewRGBColor(248, 113, 113)
	RgbLogError  = tcell.NewRGBColor(250, 204, 21)

	RgbFallback = tcell.NewRGBColor(255, 255, 255)
)

// minEntityBrightness - сущности на краю света не растворяются в темноте
const minEntityBrightness = 0.4

// ParseColor переводит "#RRGGBB" или имя цвета в tcell.Color
func ParseColor(s string) tcell.Color {
	c := tcell.GetColor(s)
	if !c.Valid() {
		return RgbFallback
	}
	return c
}

// Dim затемняет цвет: brightness 1 - как есть, 0 - черный
func Dim(c tcell.Color, brightness float64) tcell.Color {
	brightness = min(max(brightness, 0), 1)
	r, g, b := c.RGB()
	if r < 0 {
		r, g, b = RgbFallback.RGB()
	}
	return tcell.NewRGBColor(
		int32(float64(r)*brightness),
		int32(float64(g)*brightness),
		int32(float64(b)*brightness),
	)
}

// LogColor - цвет строки лога по типу
func LogColor(logType string) tcell.Color {
	switch logType {
	case domain.LogCombat:
		return RgbLogCombat
	case domain.LogError:
		return RgbLogError
	default:
		return RgbLogInfo
	}
}
