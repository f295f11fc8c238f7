package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// popupExpiredMsg dismisses the popup shown under sequence number seq.
type popupExpiredMsg struct {
	seq int
}

// Popup is a transient notification that hides itself after a fixed delay.
// A newer popup, or Cancel, invalidates the pending dismissal of an older one.
type Popup struct {
	text     string
	visible  bool
	seq      int
	duration time.Duration
}

// NewPopup creates a hidden popup with the given display time.
func NewPopup(duration time.Duration) Popup {
	if duration <= 0 {
		duration = 3 * time.Second
	}
	return Popup{duration: duration}
}

// Show displays text and schedules its dismissal.
func (p Popup) Show(text string) (Popup, tea.Cmd) {
	p.seq++
	p.text = text
	p.visible = true
	seq := p.seq
	return p, tea.Tick(p.duration, func(time.Time) tea.Msg {
		return popupExpiredMsg{seq: seq}
	})
}

// Cancel hides the popup and orphans any pending dismissal.
func (p Popup) Cancel() Popup {
	p.seq++
	p.visible = false
	return p
}

// Expire handles a dismissal message.
func (p Popup) Expire(msg popupExpiredMsg) Popup {
	if msg.seq == p.seq {
		p.visible = false
	}
	return p
}

// Visible reports whether the popup is on screen.
func (p Popup) Visible() bool {
	return p.visible
}

// Text returns the popup message.
func (p Popup) Text() string {
	return p.text
}
