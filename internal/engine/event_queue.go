package engine

import (
	"fmt"
	"slices"
)

// EventQueue - очередь событий, упорядоченная по времени.
// Задержки хранятся относительно текущего момента: при извлечении головы
// ее задержка вычитается из всех остальных и прибавляется к Time.
type EventQueue[T comparable] struct {
	items  []T
	delays []float64
	time   float64
}

func NewEventQueue[T comparable]() *EventQueue[T] {
	return &EventQueue[T]{}
}

// Add вставляет элемент перед первой записью с большей задержкой.
// Равные задержки сохраняют порядок добавления (FIFO).
func (q *EventQueue[T]) Add(item T, delay float64) {
	index := len(q.delays)
	for i, d := range q.delays {
		if d > delay {
			index = i
			break
		}
	}
	q.items = slices.Insert(q.items, index, item)
	q.delays = slices.Insert(q.delays, index, delay)
}

// Get извлекает голову очереди. false - очередь пуста.
func (q *EventQueue[T]) Get() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}

	item := q.items[0]
	delay := q.delays[0]

	q.items[0] = zero // не держим ссылку
	q.items = q.items[1:]
	q.delays = q.delays[1:]

	if delay > 0 {
		q.time += delay
		for i := range q.delays {
			q.delays[i] -= delay
		}
	}
	return item, true
}

// Remove удаляет первое вхождение элемента вместе с его задержкой.
func (q *EventQueue[T]) Remove(item T) bool {
	i := slices.Index(q.items, item)
	if i == -1 {
		return false
	}
	q.items = slices.Delete(q.items, i, i+1)
	q.delays = slices.Delete(q.delays, i, i+1)
	return true
}

// Clear очищает очередь. Накопленное время не сбрасывается.
func (q *EventQueue[T]) Clear() {
	q.items = nil
	q.delays = nil
}

// Time - суммарное прошедшее игровое время
func (q *EventQueue[T]) Time() float64 {
	return q.time
}

func (q *EventQueue[T]) Len() int {
	return len(q.items)
}

// DebugDump возвращает снимок очереди для отладки
func (q *EventQueue[T]) DebugDump() []map[string]interface{} {
	// Инициализируем как пустой слайс, а не nil. Тогда в JSON это будет "[]", а не "null"
	result := make([]map[string]interface{}, 0, len(q.items))

	for i, item := range q.items {
		result = append(result, map[string]interface{}{
			"item":  fmt.Sprint(item),
			"delay": q.delays[i],
			"index": i,
		})
	}
	return result
}
