package domain

// LogEntry - строка текстового лога игры
type LogEntry struct {
	Tick float64 `json:"tick"` // игровое время на момент записи
	Text string  `json:"text"`
	Type string  `json:"type"` // LogInfo, LogCombat, LogError
}
