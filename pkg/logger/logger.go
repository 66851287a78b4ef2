package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput настраивает логгер так же, как Init, но пишет в w.
// Терминальный интерфейс занимает stdout, поэтому игра пишет логи в файл.
func InitWithOutput(w io.Writer) {
	Log = logrus.New()

	// 1. Уровень логирования из переменной окружения.
	// По умолчанию - "info". Для отладки можно выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для сбора логов, "text" - для удобной разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: w != os.Stdout,
		})
	}

	Log.SetOutput(w)
}

// OpenFile переключает глобальный логгер на файл path.
// Пустой path берется из LOG_FILE. Вызывающий закрывает возвращенный файл.
func OpenFile(path string) (io.Closer, error) {
	if path == "" {
		path = os.Getenv("LOG_FILE")
	}
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", path, err)
	}

	InitWithOutput(f)
	return f, nil
}
