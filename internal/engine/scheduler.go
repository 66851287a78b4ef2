package engine

import (
	"reflect"

	"shadowcrawl/internal/domain"
	"shadowcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Schedulable - все, что может ходить: скорость и сам ход.
// Act выполняется синхронно; ход игрока вызывает Lock и ждет ввода.
// Реализация должна быть сравнимой (обычно указатель): планировщик хранит
// ходящих как ключи map. Несравнимые значения Add отклоняет.
type Schedulable interface {
	Speed() float64
	Act()
}

// Scheduler - очередь ходов поверх EventQueue.
// Задержка хода = 1 / Speed, поэтому большая скорость ходит чаще.
type Scheduler struct {
	queue     *EventQueue[Schedulable]
	repeat    map[Schedulable]struct{}
	current   Schedulable
	lockCount int
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		queue:  NewEventQueue[Schedulable](),
		repeat: make(map[Schedulable]struct{}),
	}
}

func schedulerLogger() *logrus.Entry {
	return logger.Log.WithField("component", "scheduler")
}

func delayOf(item Schedulable) float64 {
	speed := item.Speed()
	if speed <= 0 {
		speed = domain.DefaultSpeed
	}
	return 1 / speed
}

// isComparable - можно ли item использовать как ключ map и сравнивать через ==
func isComparable(item Schedulable) bool {
	return item != nil && reflect.TypeOf(item).Comparable()
}

// Add ставит сущность в очередь. repeat - ставить обратно после каждого хода.
func (s *Scheduler) Add(item Schedulable, repeat bool) {
	if !isComparable(item) {
		schedulerLogger().WithField("type", reflect.TypeOf(item)).Warn("Add ignored: schedulable is not comparable")
		return
	}
	if repeat {
		s.repeat[item] = struct{}{}
	}
	s.queue.Add(item, delayOf(item))
}

// Remove убирает сущность из очереди и из повторяющихся.
func (s *Scheduler) Remove(item Schedulable) bool {
	if !isComparable(item) {
		return false
	}
	_, repeating := s.repeat[item]
	delete(s.repeat, item)

	removed := s.queue.Remove(item)
	if s.current == item {
		s.current = nil
		removed = true
	}
	return removed || repeating
}

// Clear очищает очередь и повторяющиеся. Счетчик блокировок не трогает.
func (s *Scheduler) Clear() {
	s.queue.Clear()
	clear(s.repeat)
	s.current = nil
}

// Next возвращает следующего ходящего.
// Текущий повторяющийся ставится обратно со свежей задержкой до извлечения.
func (s *Scheduler) Next() (Schedulable, bool) {
	if s.current != nil {
		if _, ok := s.repeat[s.current]; ok {
			s.queue.Add(s.current, delayOf(s.current))
		}
	}

	item, ok := s.queue.Get()
	s.current = item
	return item, ok
}

// Tick выполняет один ход. false - планировщик заблокирован или очередь пуста.
func (s *Scheduler) Tick() bool {
	if s.Locked() {
		return false
	}
	item, ok := s.Next()
	if !ok {
		return false
	}
	item.Act()
	return true
}

// Pump крутит Tick, пока планировщик не заблокируется (ожидание ввода).
// maxTurns > 0 ограничивает число ходов за вызов. Возвращает число ходов.
func (s *Scheduler) Pump(maxTurns int) int {
	turns := 0
	for !s.Locked() {
		if maxTurns > 0 && turns >= maxTurns {
			schedulerLogger().WithField("turns", turns).Warn("Pump stopped by turn limit")
			break
		}
		if !s.Tick() {
			break
		}
		turns++
	}
	return turns
}

func (s *Scheduler) Lock() {
	s.lockCount++
}

// Unlock снимает одну блокировку; ниже нуля счетчик не опускается.
func (s *Scheduler) Unlock() {
	if s.lockCount == 0 {
		schedulerLogger().Debug("Unlock ignored: scheduler is not locked")
		return
	}
	s.lockCount--
}

func (s *Scheduler) Locked() bool {
	return s.lockCount > 0
}

func (s *Scheduler) LockCount() int {
	return s.lockCount
}

// Current - последний выданный Next (nil, если его удалили)
func (s *Scheduler) Current() Schedulable {
	return s.current
}

// Time - суммарное игровое время
func (s *Scheduler) Time() float64 {
	return s.queue.Time()
}

// Len - число записей в очереди (текущий ходящий в нее не входит)
func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// DebugDump возвращает снимок очереди для отладки
func (s *Scheduler) DebugDump() []map[string]interface{} {
	return s.queue.DebugDump()
}
