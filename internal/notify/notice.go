package notify

import "time"

// Level grades how a notice should be rendered.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is one transient user-facing message, the terminal analogue of a
// toast. Field is set for input-validation notices so they can be shown next
// to the offending input.
type Notice struct {
	ID      string    `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
	Time    time.Time `json:"time"`
}

type Bus interface {
	Publish(n Notice)
	Subscribe() (<-chan Notice, func())
}
