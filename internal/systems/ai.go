package systems

import (
	"shadowcrawl/internal/domain"
	"shadowcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

var walkableTiles = []domain.TileType{domain.TileFloor}

// PlanChase решает, куда NPC шагнуть в свой ход.
// NPC действует, только стоя в свете ярче minIntensity (его видно игроку);
// тогда он идет к цели по кратчайшему пути. Соседняя клетка с целью -
// это и есть шаг в цель, который движение превратит в атаку.
func PlanChase(m *domain.GameMap, npc, target *domain.Entity, minIntensity float64) (domain.Position, bool) {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc_id":    npc.ID,
		"npc_name":  npc.Name,
	})

	if npc.Behaviour == nil || target == nil {
		return domain.Position{}, false
	}

	intensity := m.LightIntensity(npc.Pos.X, npc.Pos.Y)
	if intensity <= minIntensity {
		aiLogger.WithField("intensity", intensity).Debug("NPC idles in the dark.")
		return domain.Position{}, false
	}

	acceptable := npc.Behaviour.Acceptable
	if len(acceptable) == 0 {
		acceptable = walkableTiles
	}

	path, err := FindPath(m, npc.Pos, target.Pos, acceptable)
	if err != nil || len(path) < 2 {
		aiLogger.WithField("target_pos", target.Pos).Debug("No path to target.")
		return domain.Position{}, false
	}

	aiLogger.WithFields(logrus.Fields{
		"path_len": len(path),
		"next":     path[1],
	}).Debug("NPC chases target.")
	return path[1], true
}
