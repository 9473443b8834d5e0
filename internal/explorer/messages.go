package explorer

import (
	"time"
)

// Entry is one parsed formula in the current session
type Entry struct {
	Timestamp time.Time
	Input     string
	OK        bool
	Rendered  string
	Tree      string
	Error     string
	Stage     string
	Nodes     int
	Depth     int
}

// Message types for tea.Cmd async operations

// parseResultMsg is sent when a formula has been parsed
type parseResultMsg struct {
	entry Entry
}

// statsMsg carries refreshed persistent-history counters
type statsMsg struct {
	total  int64
	failed int64
	err    error
}
