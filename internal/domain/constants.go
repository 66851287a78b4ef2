package domain

// EntityKind - вид сущности; по нему работают фильтры CanFight / CanPickUp
type EntityKind string

const (
	KindPlayer     EntityKind = "Player"
	KindArachnid   EntityKind = "Arachnid"
	KindUndead     EntityKind = "Undead"
	KindItem       EntityKind = "Item"
	KindProp       EntityKind = "Prop"
	KindDecoration EntityKind = "Decoration"
)

// DefaultSpeed - скорость по умолчанию. Задержка хода = 1 / Speed,
// поэтому сущность со скоростью 2000 ходит вдвое чаще.
const DefaultSpeed = 1000

// Типы записей лога
const (
	LogInfo   = "INFO"
	LogCombat = "COMBAT"
	LogError  = "ERROR"
)
