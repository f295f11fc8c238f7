// Package tui provides the Bubble Tea integration for the terminal.
// It owns the redraw loop, input handling, and composition of the backdrop
// with the command transcript.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastLoopID int64

func nextLoopID() int {
	return int(atomic.AddInt64(&lastLoopID, 1))
}

// TickMsg is sent to trigger a backdrop redraw. It carries the identity of the
// loop that scheduled it so stale ticks can be told apart.
type TickMsg struct {
	ID   int
	Gen  int
	Time time.Time
}

// Loop is a cancellable repeating task driven by Bubble Tea ticks.
// Every Start or Stop bumps the generation, which orphans any tick already in
// flight: a stopped or restarted loop never acts on an old schedule.
type Loop struct {
	id       int
	gen      int
	interval time.Duration
	running  bool
}

// NewLoop creates a stopped loop that fires every interval.
func NewLoop(interval time.Duration) Loop {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return Loop{
		id:       nextLoopID(),
		interval: interval,
	}
}

// Start arms the loop on a fresh generation. Call Tick to schedule the first
// redraw.
func (l Loop) Start() Loop {
	l.gen++
	l.running = true
	return l
}

// Stop disarms the loop. Ticks already scheduled are ignored when they arrive.
func (l Loop) Stop() Loop {
	l.gen++
	l.running = false
	return l
}

// Running reports whether the loop is armed.
func (l Loop) Running() bool {
	return l.running
}

// Interval returns the redraw period.
func (l Loop) Interval() time.Duration {
	return l.interval
}

// Tick schedules the next tick for the current generation.
// Returns nil if the loop is stopped.
func (l Loop) Tick() tea.Cmd {
	if !l.running {
		return nil
	}
	id, gen := l.id, l.gen
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen, Time: t}
	})
}

// Accept reports whether msg belongs to this loop's current schedule.
func (l Loop) Accept(msg TickMsg) bool {
	return l.running && msg.ID == l.id && msg.Gen == l.gen
}
