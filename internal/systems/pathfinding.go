package systems

import (
	"container/heap"
	"errors"
	"slices"

	"shadowcrawl/internal/domain"
)

var ErrNoPath = errors.New("no path")

// TypeGrid - карта типов клеток для поиска пути
type TypeGrid interface {
	Bounds() (width, height int)
	TypeAt(x, y int) domain.TileType
}

// --- A* pathfinding (4 соседа, без диагоналей) ---

type pathNode struct {
	pos    domain.Position
	g, h   int
	seq    int // порядок добавления - для стабильного выбора при равных f
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	fi, fj := ol[i].g+ol[i].h, ol[j].g+ol[j].h
	if fi != fj {
		return fi < fj
	}
	if ol[i].h != ol[j].h {
		return ol[i].h < ol[j].h
	}
	return ol[i].seq < ol[j].seq
}
func (ol openList) Swap(i, j int) { ol[i], ol[j] = ol[j], ol[i]; ol[i].index = i; ol[j].index = j }
func (ol *openList) Push(x interface{}) {
	n := x.(*pathNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// FindPath ищет путь от from до to по клеткам допустимых типов.
// Путь включает начальную и конечную клетки. Начальная клетка может быть любого типа.
func FindPath(grid TypeGrid, from, to domain.Position, acceptable []domain.TileType) ([]domain.Position, error) {
	width, height := grid.Bounds()
	walkable := func(p domain.Position) bool {
		if p.X < 0 || p.Y < 0 || p.X >= width || p.Y >= height {
			return false
		}
		return slices.Contains(acceptable, grid.TypeAt(p.X, p.Y))
	}

	if !walkable(to) {
		return nil, ErrNoPath
	}
	if from == to {
		return []domain.Position{from}, nil
	}

	key := func(p domain.Position) int { return p.Y*width + p.X }
	seq := 0

	start := &pathNode{pos: from, h: from.ManhattanTo(to)}
	ol := &openList{start}
	heap.Init(ol)

	closed := make(map[int]bool)
	best := map[int]*pathNode{key(from): start}

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.pos == to {
			return buildPath(cur), nil
		}
		k := key(cur.pos)
		if closed[k] {
			continue
		}
		closed[k] = true

		for _, next := range cur.pos.Neighbours4() {
			if !walkable(next) {
				continue
			}
			nk := key(next)
			if closed[nk] {
				continue
			}
			g := cur.g + 1
			if prev, ok := best[nk]; ok && g >= prev.g {
				continue
			}
			seq++
			node := &pathNode{pos: next, g: g, h: next.ManhattanTo(to), seq: seq, parent: cur}
			best[nk] = node
			heap.Push(ol, node)
		}
	}
	return nil, ErrNoPath
}

func buildPath(end *pathNode) []domain.Position {
	var path []domain.Position
	for n := end; n != nil; n = n.parent {
		path = append(path, n.pos)
	}
	slices.Reverse(path)
	return path
}
