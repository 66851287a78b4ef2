package api

// --- ДВИЖОК -> ОТРИСОВКА ---

// Snapshot это "снимок" мира, видимый игроку.
// Строится после каждого кадра; отрисовка работает только с ним и не трогает домен.
// Тот же снимок сериализуется в JSON для отладочного дампа (-dump).
type Snapshot struct {
	// Tick текущее игровое время планировщика.
	Tick float64 `json:"tick"`

	// Depth номер попытки (1 - первый уровень).
	Depth int `json:"depth"`

	// AwaitingInput true, если движок ждет команду игрока.
	AwaitingInput bool `json:"awaitingInput"`

	// PlayerID ID сущности игрока. Отрисовка центрирует камеру на ней.
	PlayerID string `json:"playerId"`

	// Grid метаданные о размере всей карты.
	Grid GridMeta `json:"grid"`

	// Map срез всех исследованных тайлов. Неисследованные не попадают в снимок.
	Map []TileView `json:"map,omitempty"`

	// Entities сущности на освещенных клетках (игрок всегда).
	// Порядок - порядок отрисовки: декорации внизу, игрок сверху.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs последние строки текстового лога.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol визуальное представление тайла ("#" для стены).
	Symbol string `json:"symbol"`

	// IsWall true, если тайл является непроходимым препятствием.
	IsWall bool `json:"isWall"`

	// Shade затемнение: 0 - полный свет, 1 - тьма.
	Shade float64 `json:"shade"`

	// IsVisible true, если тайл освещен прямо сейчас.
	// Если IsVisible=false, тайл рендерится тускло (память).
	IsVisible bool `json:"isVisible"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats характеристики сущности (только у тех, у кого есть здоровье).
	Stats *StatsView `json:"stats,omitempty"`

	// Inventory инвентарь (только для игрока)
	Inventory *InventoryView `json:"inventory,omitempty"`

	// Effects имена активных эффектов
	Effects []string `json:"effects,omitempty"`
}

// StatsView это DTO для характеристик сущности.
type StatsView struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	Damage int  `json:"damage"`
	IsDead bool `json:"isDead"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	Tick float64 `json:"tick"`
	Text string  `json:"text"`
	Type string  `json:"type"` // INFO, COMBAT, ERROR
}

// ItemView представляет предмет для отрисовки
type ItemView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Damage int    `json:"damage,omitempty"`
}

// InventoryView представляет инвентарь
type InventoryView struct {
	Items    []ItemView `json:"items"`
	MaxSlots int        `json:"maxSlots"`

	// Active индекс выбранного слота (-1 если ничего не выбрано)
	Active int `json:"active"`
}

// Player возвращает вид игрока из снимка
func (s *Snapshot) Player() *EntityView {
	for i := range s.Entities {
		if s.Entities[i].ID == s.PlayerID {
			return &s.Entities[i]
		}
	}
	return nil
}
