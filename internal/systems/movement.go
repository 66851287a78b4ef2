package systems

import (
	"slices"

	"shadowcrawl/internal/domain"
)

// BumpKind - реакция обитателя клетки на того, кто в нее входит
type BumpKind uint8

const (
	BumpAttack BumpKind = iota
	BumpOpen
	BumpPickup
)

func (k BumpKind) String() string {
	switch k {
	case BumpAttack:
		return "attack"
	case BumpOpen:
		return "open"
	case BumpPickup:
		return "pickup"
	}
	return "unknown"
}

// Bump - одно столкновение: кто стоит в клетке и как он реагирует
type Bump struct {
	Kind   BumpKind
	Target *domain.Entity
}

// MovementResult - результат вычисления движения
type MovementResult struct {
	From, To domain.Position
	IsWall   bool   // Клетка не является полом (или за пределами карты)
	Blocked  bool   // Кто-то из обитателей занимает клетку целиком
	Bumps    []Bump // В порядке обитателей клетки
}

// CanMove - клетку можно занять прямо сейчас
func (r MovementResult) CanMove() bool {
	return !r.IsWall && !r.Blocked
}

// ResolveMove вычисляет движение в соседнюю клетку. Не меняет состояние мира!
// Блокировка считается до реакций: дверь, которую открыли толчком, держит ход.
func ResolveMove(m *domain.GameMap, mover *domain.Entity, dest domain.Position) MovementResult {
	res := MovementResult{From: mover.Pos, To: dest}

	// 1. Только пол
	if m.TypeAt(dest.X, dest.Y) != domain.TileFloor {
		res.IsWall = true
		return res
	}

	// 2. Обитатели клетки. Копия: реакции могут удалять сущности из индекса.
	occupants := slices.Clone(m.GetEntitiesAt(dest.X, dest.Y))
	for _, other := range occupants {
		if other == mover {
			continue
		}
		if other.Blocks() {
			res.Blocked = true
		}
		res.Bumps = append(res.Bumps, bumpsFor(mover, other)...)
	}

	return res
}

// bumpsFor - реакции одного обитателя в фиксированном порядке: бой, открытие, подбор
func bumpsFor(mover, other *domain.Entity) []Bump {
	var bumps []Bump
	if other.CanBeAttackedBy(mover) {
		bumps = append(bumps, Bump{Kind: BumpAttack, Target: other})
	}
	if other.CanOpen != nil && other.CanOpen.State == domain.StateClosed {
		bumps = append(bumps, Bump{Kind: BumpOpen, Target: other})
	}
	// Игрок подбирает вещи клавишей, остальные - на ходу
	if other.CanBePickedUpBy(mover) && mover.Inventory != nil && !mover.IsPlayerControlled() {
		bumps = append(bumps, Bump{Kind: BumpPickup, Target: other})
	}
	return bumps
}

// ApplyMove переносит сущность, если клетку можно занять.
func ApplyMove(m *domain.GameMap, mover *domain.Entity, res MovementResult) bool {
	if !res.CanMove() {
		return false
	}
	return m.MoveEntity(mover, res.To) == nil
}
