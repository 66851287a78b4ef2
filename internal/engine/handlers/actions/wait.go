package actions

import "shadowcrawl/internal/engine/handlers"

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
