package actions

import (
	"shadowcrawl/internal/domain"
	"shadowcrawl/internal/engine/handlers"
	"shadowcrawl/internal/systems"
	"shadowcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleMove - шаг на соседнюю клетку. Обитатели клетки реагируют на толчок
// (бой, дверь, подбор); занять клетку можно только если она не была заблокирована
// до реакций. Ход тратится всегда, даже об стену.
func HandleMove(ctx handlers.Context, dir domain.Position) (handlers.Result, error) {
	actor := ctx.Actor
	m := ctx.World.Map()

	res := systems.ResolveMove(m, actor, actor.Pos.Shift(dir.X, dir.Y))

	if res.IsWall {
		logger.Log.WithFields(logrus.Fields{
			"component": "move_handler",
			"actor_id":  actor.ID,
			"dest":      res.To,
		}).Debug("Bumped into a wall.")
		return handlers.EmptyResult(), nil
	}

bumps:
	for _, bump := range res.Bumps {
		switch bump.Kind {
		case systems.BumpAttack:
			msg, killed := systems.ApplyAttack(actor, bump.Target)
			if msg != "" {
				ctx.World.AddLog(msg, domain.LogCombat)
			}
			if killed {
				ctx.World.Kill(bump.Target)
				// Остальные реакции клетки в этот ход не срабатывают
				break bumps
			}

		case systems.BumpOpen:
			systems.OpenDoor(m, bump.Target)

		case systems.BumpPickup:
			msg, err := systems.PickUpItem(m, actor, bump.Target)
			if err != nil {
				continue
			}
			ctx.World.AddLog(msg, domain.LogInfo)
		}
	}

	systems.ApplyMove(m, actor, res)
	return handlers.EmptyResult(), nil
}
