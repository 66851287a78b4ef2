package actions

import (
	"shadowcrawl/internal/domain"
	"shadowcrawl/internal/engine/handlers"
	"shadowcrawl/internal/systems"
	"shadowcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleDrop обрабатывает команду DROP - выброс выбранного предмета на клетку под ногами
func HandleDrop(ctx handlers.Context) (handlers.Result, error) {
	msg, err := systems.Drop(ctx.World.Map(), ctx.Actor)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "drop_handler",
			"actor_id":  ctx.Actor.ID,
		}).WithError(err).Debug("Drop refused.")
		return refusal(err), nil
	}
	return handlers.Result{Msg: msg, MsgType: domain.LogInfo}, nil
}
