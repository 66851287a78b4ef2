package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"shadowcrawl/internal/engine"
	"shadowcrawl/internal/render"
	"shadowcrawl/internal/version"
	"shadowcrawl/pkg/logger"

	"github.com/gdamore/tcell/v2"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		seed          int64
		width, height int
		configPath    string
		logPath       string
		logLines      int
		dump          bool
		showVersion   bool
	)
	// Читаем флаг -seed. По умолчанию 0 (значит сид из конфига или случайный).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for config value or random)")
	flag.IntVar(&width, "width", 0, "Map width override")
	flag.IntVar(&height, "height", 0, "Map height override")
	flag.StringVar(&configPath, "config", "", "Path to YAML config")
	flag.StringVar(&logPath, "log", "", "Log file (default $LOG_FILE or shadowcrawl.log)")
	flag.IntVar(&logLines, "log-lines", render.DefaultLogLines, "Message log lines under the map")
	flag.BoolVar(&dump, "dump", false, "Print the first frame as JSON and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Config load failed.")
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if width != 0 {
		cfg.Width = width
	}
	if height != 0 {
		cfg.Height = height
	}

	// РЕЖИМ ДАМПА: stdout занят JSON, логи в stderr
	if dump {
		logger.InitWithOutput(os.Stderr)
		if err := dumpFrame(cfg); err != nil {
			logger.Log.WithError(err).Fatal("Dump failed.")
		}
		return
	}

	// Терминал занимает stdout - логи в файл
	if logPath == "" && os.Getenv("LOG_FILE") == "" {
		logPath = "shadowcrawl.log"
	}
	logFile, err := logger.OpenFile(logPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Log file open failed.")
	}
	defer logFile.Close()

	logger.Log.Info("Starting Shadowcrawl...")
	logger.Log.Info(version.String())
	logger.Log.Infof("🎲 Master Seed: %d", cfg.Seed)

	// 2. Инициализация ядра с конфигом
	game, err := engine.NewGame(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Game init failed.")
	}

	// 3. Запуск терминала
	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.WithError(err).Fatal("Screen create failed.")
	}
	if err := screen.Init(); err != nil {
		logger.Log.WithError(err).Fatal("Screen init failed.")
	}
	defer screen.Fini()

	run(game, screen, render.NewTerminal(screen, logLines))
	logger.Log.Info("Done.")
}

func loadConfig(path string) (engine.Config, error) {
	if path == "" {
		return engine.NewConfig(), nil
	}
	return engine.LoadConfig(path)
}

// run - цикл кадров: прокачка очереди до хода игрока, отрисовка, ввод
func run(game *engine.Game, screen tcell.Screen, term *render.Terminal) {
	for {
		game.Frame()
		term.Draw(game.Snapshot())

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Экран закрыт
			return
		case *tcell.EventResize:
			term.Resize()
		case *tcell.EventKey:
			cmd, input := render.KeyToCommand(ev)
			switch input {
			case render.InputQuit:
				return
			case render.InputCommand:
				if _, err := game.HandleCommand(cmd); err != nil {
					logger.Log.WithError(err).WithField("action", cmd.Action).Debug("Command rejected.")
				}
			}
		}
	}
}

func dumpFrame(cfg engine.Config) error {
	game, err := engine.NewGame(cfg)
	if err != nil {
		return err
	}
	game.Frame()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(game.Snapshot()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
