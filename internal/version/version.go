package version

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X shadowcrawl/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

var (
	ErrNoBuildDate   = errors.New("build date not set")
	ErrBeforeRelease = errors.New("build date precedes first release")
)

// firstRelease - день 0 нумерации сборок
var firstRelease = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Build - метаданные бинарника. Number валиден только при Err == nil.
type Build struct {
	Number int
	Date   string
	Commit string
	Err    error
}

// buildID - число полных суток от firstRelease до date
func buildID(date string) (int, error) {
	if date == "" {
		return 0, ErrNoBuildDate
	}
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return 0, fmt.Errorf("build date %q: %w", date, err)
	}
	if day.Before(firstRelease) {
		return 0, fmt.Errorf("%w: %s", ErrBeforeRelease, date)
	}
	return int(day.Sub(firstRelease) / (24 * time.Hour)), nil
}

// Current собирает сведения о текущей сборке
func Current() Build {
	b := Build{Date: BuildDate, Commit: BuildCommit}
	if b.Commit == "" {
		b.Commit = vcsRevision()
	}
	if b.Commit == "" {
		b.Commit = "unknown"
	}
	b.Number, b.Err = buildID(b.Date)
	return b
}

// String - строка для флага -version
func (b Build) String() string {
	if b.Err != nil {
		return fmt.Sprintf("shadowcrawl dev commit[%s] (%v)", b.Commit, b.Err)
	}
	return fmt.Sprintf("shadowcrawl build %d (%s) commit[%s]", b.Number, b.Date, b.Commit)
}

func String() string { return Current().String() }

// vcsRevision - короткий хеш коммита, который go build вшивает сам
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
