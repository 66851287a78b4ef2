package systems

import (
	"testing"

	"shadowcrawl/internal/domain"
)

func TestPlanChase(t *testing.T) {
	// Helper to reset state for each test
	setup := func() (*domain.GameMap, *domain.Entity, *domain.Entity) {
		m := floorMap(10, 10)
		player := newTestPlayer(domain.Position{X: 5, Y: 5})
		npc := newTestSpider("spider", domain.Position{X: 2, Y: 5})
		m.AddEntity(player)
		m.AddEntity(npc)
		return m, npc, player
	}

	t.Run("NPC in the dark should wait", func(t *testing.T) {
		m, npc, player := setup()

		if _, ok := PlanChase(m, npc, player, 0.7); ok {
			t.Error("NPC on an unlit tile should not act")
		}
	})

	t.Run("NPC in dim memory light should wait", func(t *testing.T) {
		m, npc, player := setup()
		m.SetShade(npc.Pos.X, npc.Pos.Y, 0.7)

		if _, ok := PlanChase(m, npc, player, 0.7); ok {
			t.Error("Intensity 0.3 is below the chase threshold")
		}
	})

	t.Run("Lit NPC steps towards target", func(t *testing.T) {
		m, npc, player := setup()
		m.SetShade(npc.Pos.X, npc.Pos.Y, 0)

		next, ok := PlanChase(m, npc, player, 0.7)
		if !ok {
			t.Fatal("Expected NPC to act")
		}
		if next != (domain.Position{X: 3, Y: 5}) {
			t.Errorf("Expected step to (3,5), got %v", next)
		}
	})

	t.Run("Adjacent NPC steps into target", func(t *testing.T) {
		m, npc, player := setup()
		m.MoveEntity(npc, domain.Position{X: 4, Y: 5})
		m.SetShade(npc.Pos.X, npc.Pos.Y, 0)

		next, ok := PlanChase(m, npc, player, 0.7)
		if !ok || next != player.Pos {
			t.Errorf("Expected step into the player at %v, got %v (ok=%t)", player.Pos, next, ok)
		}
	})

	t.Run("Walled off NPC should wait", func(t *testing.T) {
		m, npc, player := setup()
		for y := 0; y < 10; y++ {
			m.SetType(4, y, domain.TileWall)
		}
		m.SetShade(npc.Pos.X, npc.Pos.Y, 0)

		if _, ok := PlanChase(m, npc, player, 0.7); ok {
			t.Error("No path, NPC should not act")
		}
	})

	t.Run("Entity without behaviour never plans", func(t *testing.T) {
		m, _, player := setup()
		door := newTestDoor(domain.Position{X: 1, Y: 1})
		m.SetShade(1, 1, 0)

		if _, ok := PlanChase(m, door, player, 0.7); ok {
			t.Error("Props do not move")
		}
	})
}
