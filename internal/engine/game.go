package engine

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"shadowcrawl/internal/domain"
	"shadowcrawl/internal/engine/handlers"
	"shadowcrawl/internal/engine/handlers/actions"
	"shadowcrawl/internal/systems"
	"shadowcrawl/pkg/dungeon"
	"shadowcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// maxTurnsPerFrame - страховка от бесконечной прокачки, если игрок не найдется в очереди
const maxTurnsPerFrame = 10000

var (
	ErrNotYourTurn   = errors.New("not awaiting player input")
	ErrUnknownAction = errors.New("unknown action")
	ErrNoRooms       = errors.New("generated level has no rooms")
)

// Game - одна игровая сессия: уровень, игрок, очередь ходов, свет и текстовый лог.
// Все методы вызываются из одного потока (цикла кадров).
type Game struct {
	cfg Config

	level     *dungeon.Level
	player    *domain.Entity
	scheduler *Scheduler
	lights    *systems.LightMap
	actors    map[domain.EntityID]*actor

	logs []domain.LogEntry

	// active == false - игрок погиб, следующий кадр перезапустит уровень
	active bool
	// awaitingInput - игрок в свой ход заблокировал планировщик и ждет команду
	awaitingInput bool
	restarts      int

	handlers map[domain.ActionType]handlers.HandlerFunc
	log      *logrus.Entry
}

// actor связывает сущность с планировщиком
type actor struct {
	game   *Game
	entity *domain.Entity
}

func (a *actor) Speed() float64 { return a.entity.Speed }

func (a *actor) Act() { a.game.act(a.entity) }

func (a *actor) String() string { return string(a.entity.ID) + ":" + a.entity.Name }

// NewGame создает сессию и генерирует первый уровень
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := newGame(cfg)
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// newGame - сессия без уровня; уровень задает Restart или start
func newGame(cfg Config) *Game {
	g := &Game{
		cfg:      cfg,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		log:      logger.Log.WithField("component", "game"),
	}
	g.registerHandlers()
	return g
}

func (g *Game) registerHandlers() {
	g.handlers[domain.ActionMove] = handlers.WithPayload(handlers.Direction, actions.HandleMove)
	g.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	g.handlers[domain.ActionPickup] = handlers.WithPayload(handlers.Multiple, actions.HandlePickup)
	g.handlers[domain.ActionDrop] = handlers.WithEmptyPayload(actions.HandleDrop)
	g.handlers[domain.ActionEquip] = handlers.WithPayload(handlers.Slot, actions.HandleEquip)
}

// Restart генерирует новый уровень с новым игроком.
// Level N Seed = Seed + N, поэтому перезапуски воспроизводимы.
// Уровень без комнат отбрасывается: игроку негде появиться.
func (g *Game) Restart() error {
	seed := g.cfg.Seed + int64(g.restarts)
	g.restarts++

	level := dungeon.Generate(g.cfg.DungeonSettings(), seed)
	if len(level.Rooms) == 0 {
		return fmt.Errorf("%w: seed %d, map %dx%d", ErrNoRooms, seed, g.cfg.Width, g.cfg.Height)
	}
	g.start(level, rand.New(rand.NewSource(seed)))
	return nil
}

// start запускает сессию на готовом уровне
func (g *Game) start(level *dungeon.Level, rng *rand.Rand) {
	// Планировщик заменяется целиком: очередь, повторы и блокировки начинаются с нуля
	g.scheduler = NewScheduler()
	g.level = level
	g.actors = make(map[domain.EntityID]*actor)
	g.logs = nil
	g.awaitingInput = false

	m := level.Map
	g.lights = systems.NewLightMap(m, m, g.cfg.ExploredShade)

	for _, e := range level.Entities {
		if e.IsActor() {
			g.schedule(e)
		}
	}

	g.player = dungeon.CreatePlayer(m.Entrance, g.cfg.PlayerOptions(), rng)
	if err := m.AddEntity(g.player); err != nil {
		g.log.WithError(err).WithField("entrance", m.Entrance).Error("Player spawn failed.")
	}
	g.schedule(g.player)

	g.active = true
	g.UpdateLighting()

	g.log.WithFields(logrus.Fields{
		"restart": g.restarts,
		"actors":  len(g.actors),
	}).Info("Level started.")
	g.log.WithField("queue", g.scheduler.DebugDump()).Debug("Turn queue.")
	g.AddLog("You descend into the dungeon. Something is burning.", domain.LogInfo)
}

func (g *Game) schedule(e *domain.Entity) {
	a := &actor{game: g, entity: e}
	g.actors[e.ID] = a
	g.scheduler.Add(a, true)
}

// Frame - один кадр: перезапуск после смерти, затем ходы до блокировки.
// Возвращает число выполненных ходов.
func (g *Game) Frame() int {
	if !g.active {
		// Неудачный сид - следующий кадр попробует следующий
		if err := g.Restart(); err != nil {
			g.log.WithError(err).Error("Level restart failed.")
			return 0
		}
	}
	return g.scheduler.Pump(maxTurnsPerFrame)
}

// act - ход сущности: эффекты, затем ввод игрока или поведение NPC
func (g *Game) act(e *domain.Entity) {
	for _, msg := range systems.UpdateStatusEffects(e) {
		g.AddLog(msg, domain.LogCombat)
	}
	if e.IsDead() {
		g.Kill(e)
		return
	}

	if e.IsPlayerControlled() {
		g.awaitingInput = true
		g.scheduler.Lock()
		return
	}

	g.processAITurn(e)
}

// processAITurn конвертирует решение AI во внутреннюю команду
func (g *Game) processAITurn(npc *domain.Entity) {
	next, ok := systems.PlanChase(g.Map(), npc, g.player, g.cfg.ChaseIntensity)
	if !ok {
		return
	}

	cmd := domain.Command{
		Action: domain.ActionMove,
		Dir:    domain.Position{X: next.X - npc.Pos.X, Y: next.Y - npc.Pos.Y},
	}
	if _, err := g.executeCommand(cmd, npc); err != nil {
		g.log.WithError(err).WithField("npc_id", npc.ID).Warn("NPC command failed.")
	}
}

// HandleCommand выполняет команду игрока в его ход.
// Действие, потратившее ход, обновляет свет и отпускает планировщик.
func (g *Game) HandleCommand(cmd domain.Command) (bool, error) {
	if !g.active || !g.awaitingInput || !g.scheduler.Locked() {
		return false, ErrNotYourTurn
	}

	res, err := g.executeCommand(cmd, g.player)
	if err != nil {
		return false, err
	}
	if !res.Consumed {
		return false, nil
	}

	g.UpdateLighting()
	g.awaitingInput = false
	g.scheduler.Unlock()
	return true, nil
}

// executeCommand выполняет хендлер и пишет логи
func (g *Game) executeCommand(cmd domain.Command, e *domain.Entity) (handlers.Result, error) {
	handler, ok := g.handlers[cmd.Action]
	if !ok {
		g.log.WithField("action", cmd.Action).Warn("Unknown action.")
		return handlers.Result{}, fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}

	ctx := handlers.Context{
		World: g,
		Actor: e,
	}

	result, err := handler(ctx, cmd)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"action":   cmd.Action,
			"actor_id": e.ID,
		}).WithError(err).Warn("Command rejected.")
		return result, err
	}

	// Логирование результата
	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = domain.LogInfo
		}
		g.AddLog(result.Msg, msgType)
	}
	return result, nil
}

// UpdateLighting пересчитывает свет от всех источников на карте
func (g *Game) UpdateLighting() []systems.LitTile {
	var sources []systems.LightSource
	for _, e := range g.Map().EntityRegistry {
		if e.LightSource != nil {
			sources = append(sources, systems.LightSource{ID: e.ID, Pos: e.Pos, Light: *e.LightSource})
		}
	}
	// Порядок реестра случаен, а лог освещения должен быть воспроизводимым
	slices.SortFunc(sources, func(a, b systems.LightSource) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return g.lights.Update(sources)
}

// --- handlers.World ---

func (g *Game) Map() *domain.GameMap {
	return g.level.Map
}

// AddLog добавляет строку в лог сессии
func (g *Game) AddLog(text, logType string) {
	g.logs = append(g.logs, domain.LogEntry{
		Tick: g.scheduler.Time(),
		Text: text,
		Type: logType,
	})
	if over := len(g.logs) - g.cfg.MaxLogEntries; g.cfg.MaxLogEntries > 0 && over > 0 {
		g.logs = slices.Delete(g.logs, 0, over)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  logType,
		"tick":      g.scheduler.Time(),
	}).Info(text)
}

// Kill убирает погибшую сущность. Смерть игрока останавливает планировщик
// до перезапуска в следующем кадре.
func (g *Game) Kill(e *domain.Entity) {
	g.Map().RemoveEntity(e)
	if a, ok := g.actors[e.ID]; ok {
		g.scheduler.Remove(a)
		delete(g.actors, e.ID)
	}

	if e == g.player {
		g.active = false
		g.awaitingInput = false
		g.scheduler.Lock()
		g.AddLog("You died.", domain.LogCombat)
		g.log.WithField("tick", g.scheduler.Time()).Info("Player died.")
	}
}

// --- Доступ для отрисовки и тестов ---

func (g *Game) Player() *domain.Entity { return g.player }

func (g *Game) Logs() []domain.LogEntry { return g.logs }

func (g *Game) Active() bool { return g.active }

func (g *Game) AwaitingInput() bool { return g.awaitingInput }

func (g *Game) Time() float64 { return g.scheduler.Time() }

func (g *Game) Scheduler() *Scheduler { return g.scheduler }

func (g *Game) Config() Config { return g.cfg }

// Depth - номер попытки (1 - первый уровень)
func (g *Game) Depth() int { return g.restarts }
