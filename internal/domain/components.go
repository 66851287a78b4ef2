package domain

// --- КОМПОНЕНТЫ ---
// Если указатель в Entity равен nil - свойство отсутствует.

// RenderComponent - Визуализация (терминал)
type RenderComponent struct {
	Glyph rune   `json:"glyph"` // Символ отображения (s-паук, /-нож)
	Color string `json:"color"` // Имя цвета или #RRGGBB
}

// HealthComponent - Здоровье
type HealthComponent struct {
	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
}

// WeaponComponent - урон, который наносит сущность (или предмет, если его экипировать)
type WeaponComponent struct {
	Damage int `json:"damage"`
}

// LightSourceComponent - источник света, который несет сущность
type LightSourceComponent struct {
	Radius   int  `json:"radius"`
	Gradient bool `json:"gradient"` // true - свет затухает к краю радиуса
}

// CollideComponent - занимает ли сущность клетку целиком
type CollideComponent struct {
	Collide bool `json:"collide"`
}

// InventoryComponent хранит подобранные предметы.
type InventoryComponent struct {
	MaxSlots int       `json:"maxSlots"`
	Slots    []*Entity `json:"slots"`
	Active   *Entity   `json:"active,omitempty"` // выбранный (экипированный) предмет
}

// StatusEffectComponent - активные эффекты (горение и т.п.)
type StatusEffectComponent struct {
	Effects []*StatusEffect `json:"effects"`
}

// ControllerComponent - сущностью управляет игрок с клавиатуры.
// Такая сущность в свой ход блокирует планировщик до ввода.
type ControllerComponent struct{}

// BehaviourComponent - как NPC перемещается в свой ход
type BehaviourComponent struct {
	Kind       BehaviourKind `json:"kind"`
	Acceptable []TileType    `json:"acceptable"` // по каким клеткам можно идти
}

// CanFightComponent - при столкновении с сущностью происходит бой.
// Targets - виды сущностей, которые могут вступить в бой (пусто - любые).
type CanFightComponent struct {
	Targets []EntityKind `json:"targets"`
}

// CanOpenComponent - дверь или сундук
type CanOpenComponent struct {
	State OpenState `json:"state"`
}

// CanPickUpComponent - предмет можно подобрать.
// By - виды сущностей, которые могут его подобрать (пусто - любые).
type CanPickUpComponent struct {
	By []EntityKind `json:"by"`
}

// TooltipComponent - описание для осмотра
type TooltipComponent struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type BehaviourKind uint8

const (
	BehaviourWalk BehaviourKind = iota
	BehaviourFly
)

type OpenState uint8

const (
	StateClosed OpenState = iota
	StateOpen
)

func (s OpenState) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}
