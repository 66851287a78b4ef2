package systems

import (
	"testing"

	"shadowcrawl/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPath(t *testing.T) {
	floor := []domain.TileType{domain.TileFloor}

	t.Run("straight line", func(t *testing.T) {
		m := floorMap(6, 3)
		path, err := FindPath(m, domain.Position{X: 0, Y: 1}, domain.Position{X: 4, Y: 1}, floor)
		require.NoError(t, err)
		assert.Len(t, path, 5)
		assert.Equal(t, domain.Position{X: 0, Y: 1}, path[0])
		assert.Equal(t, domain.Position{X: 4, Y: 1}, path[4])
	})

	t.Run("no diagonals", func(t *testing.T) {
		m := floorMap(5, 5)
		path, err := FindPath(m, domain.Position{X: 0, Y: 0}, domain.Position{X: 3, Y: 3}, floor)
		require.NoError(t, err)
		assert.Len(t, path, 7)
		for i := 1; i < len(path); i++ {
			assert.Equal(t, 1, path[i].ManhattanTo(path[i-1]), "step %d", i)
		}
	})

	t.Run("around a wall", func(t *testing.T) {
		// #####
		// #.#.#
		// #.#.#
		// #...#
		// #####
		m := domain.NewGameMap(5, 5)
		for _, p := range []domain.Position{{1, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 3}, {3, 2}, {3, 1}} {
			m.SetType(p.X, p.Y, domain.TileFloor)
		}

		path, err := FindPath(m, domain.Position{X: 1, Y: 1}, domain.Position{X: 3, Y: 1}, floor)
		require.NoError(t, err)
		assert.Equal(t, []domain.Position{{1, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 3}, {3, 2}, {3, 1}}, path)
	})

	t.Run("unreachable", func(t *testing.T) {
		m := floorMap(5, 1)
		m.SetType(2, 0, domain.TileWall)
		_, err := FindPath(m, domain.Position{X: 0, Y: 0}, domain.Position{X: 4, Y: 0}, floor)
		assert.ErrorIs(t, err, ErrNoPath)
	})

	t.Run("target not walkable", func(t *testing.T) {
		m := floorMap(5, 1)
		m.SetType(4, 0, domain.TileWall)
		_, err := FindPath(m, domain.Position{X: 0, Y: 0}, domain.Position{X: 4, Y: 0}, floor)
		assert.ErrorIs(t, err, ErrNoPath)
	})

	t.Run("already there", func(t *testing.T) {
		m := floorMap(2, 2)
		path, err := FindPath(m, domain.Position{X: 1, Y: 1}, domain.Position{X: 1, Y: 1}, floor)
		require.NoError(t, err)
		assert.Equal(t, []domain.Position{{1, 1}}, path)
	})
}
