package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileType - вид клетки карты
type TileType uint8

const (
	TileVoid TileType = iota
	TileWall
	TileFloor
)

func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "void"
	}
}

type Tile struct {
	Type       TileType `json:"type"`
	BlockLight bool     `json:"blockLight"`

	// Shade - затемнение клетки: 1 = полная тьма, 0 = полностью освещена.
	// Отрисовщик использует его как альфу затемняющего слоя.
	Shade    float64 `json:"shade"`
	Explored bool    `json:"explored"`

	// Room - индекс комнаты, которой принадлежит клетка (-1 для коридоров и пустоты)
	Room int `json:"room"`
}

// NewTile создает клетку нужного типа; стены и пустота блокируют свет.
func NewTile(t TileType) Tile {
	return Tile{
		Type:       t,
		BlockLight: t != TileFloor,
		Shade:      1,
		Room:       -1,
	}
}

// GameMap - сетка клеток уровня вместе с пространственным индексом сущностей.
type GameMap struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tiles  []Tile `json:"tiles"` // Ключ: Y * Width + X

	Entrance Position `json:"entrance"`
	Exit     Position `json:"exit"`

	// SpatialHash: Индекс позиции -> Список сущностей (в порядке появления на клетке)
	SpatialHash    map[int][]*Entity    `json:"-"`
	EntityRegistry map[EntityID]*Entity `json:"-"`
}

// NewGameMap создает карту, заполненную пустотой.
func NewGameMap(width, height int) *GameMap {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = NewTile(TileVoid)
	}
	return &GameMap{
		Width:          width,
		Height:         height,
		Tiles:          tiles,
		SpatialHash:    make(map[int][]*Entity),
		EntityRegistry: make(map[EntityID]*Entity),
	}
}
