package handlers

import (
	"fmt"

	"shadowcrawl/internal/domain"
)

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовым значением T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (WAIT, DROP)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя Validate и извлечение нужного поля команды.
func WithPayload[T any](extract func(domain.Command) T, handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, cmd domain.Command) (Result, error) {
		if err := cmd.Validate(); err != nil {
			return Result{}, fmt.Errorf("validation failed: %w", err)
		}
		return handler(ctx, extract(cmd))
	}
}

// WithEmptyPayload - обертка для команд без данных (WAIT, DROP)
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ domain.Command) (Result, error) {
		// Мы просто игнорируем поля команды, так как они не нужны логике.
		return handler(ctx)
	}
}

// Извлекатели полей команды для WithPayload

func Direction(cmd domain.Command) domain.Position { return cmd.Dir }

func Slot(cmd domain.Command) int { return cmd.Slot }

func Multiple(cmd domain.Command) bool { return cmd.Multiple }
