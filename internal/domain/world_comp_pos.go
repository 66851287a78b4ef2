package domain

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// ManhattanTo - расстояние по сетке без диагоналей (эвристика для поиска пути)
func (p Position) ManhattanTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Shift возвращает новую позицию со смещением, не меняя текущую
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Neighbours4 - соседи по четырем сторонам (вверх, вправо, вниз, влево)
func (p Position) Neighbours4() [4]Position {
	return [4]Position{
		p.Shift(0, -1),
		p.Shift(1, 0),
		p.Shift(0, 1),
		p.Shift(-1, 0),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
