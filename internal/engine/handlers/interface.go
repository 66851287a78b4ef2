package handlers

import "shadowcrawl/internal/domain"

// World описывает сессию игры со стороны хендлера.
// Game неявно реализует этот интерфейс.
type World interface {
	Map() *domain.GameMap
	// AddLog пишет строку в текстовый лог игры
	AddLog(text, logType string)
	// Kill убирает погибшую сущность с карты и из очереди ходов
	Kill(e *domain.Entity)
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	World World
	Actor *domain.Entity // Тот, кто выполняет команду (Игрок или NPC)
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет итоговое сообщение в лог сам, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)

	// Consumed - действие потратило ход (движок снимает блокировку планировщика)
	Consumed bool
}

// HandlerFunc - это контракт для любой команды (MOVE, WAIT, etc).
type HandlerFunc func(ctx Context, cmd domain.Command) (Result, error)

// EmptyResult - вспомогательная функция для пустого ответа, потратившего ход
func EmptyResult() Result {
	return Result{Consumed: true}
}

// Refusal - действие не выполнено, ход не потрачен
func Refusal(msg string) Result {
	return Result{Msg: msg, MsgType: domain.LogError}
}
