package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/wow-terminal/internal/backgrounds/grid"
	_ "github.com/vovakirdan/wow-terminal/internal/backgrounds/rain"
	"github.com/vovakirdan/wow-terminal/internal/config"
	"github.com/vovakirdan/wow-terminal/internal/shell"
)

func newTestModel(t *testing.T, theme shell.Theme) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Theme = string(theme)
	return NewModel(Options{Config: cfg, Width: 80, Height: 30, Seed: 42})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func submit(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	if line != "" {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	}
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestNewModelMountsThemeBackground(t *testing.T) {
	tests := []struct {
		theme shell.Theme
		want  string
	}{
		{shell.ThemeMatrix, BackgroundRain},
		{shell.ThemeCyber, BackgroundGrid},
		{shell.ThemeWow, BackgroundGrid},
	}

	for _, tc := range tests {
		t.Run(string(tc.theme), func(t *testing.T) {
			m := newTestModel(t, tc.theme)
			if m.Background() == nil || m.Background().ID() != tc.want {
				t.Fatalf("background = %v, expected %s", m.Background(), tc.want)
			}
			if !m.Animating() {
				t.Error("loop should be armed after NewModel")
			}
			if m.Init() == nil {
				t.Error("Init should schedule the first tick")
			}
		})
	}
}

func TestNewModelZeroConfig(t *testing.T) {
	m := NewModel(Options{Width: 80, Height: 24})

	if m.loop.Interval() != 50*time.Millisecond {
		t.Errorf("interval = %v, expected the 50ms fallback", m.loop.Interval())
	}
	if m.State().Theme != shell.ThemeMatrix || m.Background() == nil {
		t.Error("zero config should start on matrix with a backdrop mounted")
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}

	m, _ = send(t, m, TickMsg{ID: m.loop.id, Gen: m.loop.gen})
	m.state.XP = 95
	m, cmd := submit(t, m, "help")
	if cmd == nil || m.PopupText() == "" {
		t.Error("popup should fall back to a positive duration")
	}

	// A zero-size model has nothing to draw but must not panic.
	NewModel(Options{}).View()
}

func TestSubmitRunsCommand(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	m, _ = submit(t, m, "help")

	s := m.State()
	if s.XP != shell.BaselineXP {
		t.Errorf("XP = %d, expected %d", s.XP, shell.BaselineXP)
	}
	n := len(s.Transcript)
	if n != 3 || s.Transcript[1] != "> help" {
		t.Fatalf("transcript = %q", s.Transcript)
	}
	if !strings.HasPrefix(s.Transcript[2], "Available Commands:") {
		t.Errorf("expected help text, got %q", s.Transcript[2])
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.input.Value())
	}
}

func TestBlankSubmitIgnored(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	m, _ = submit(t, m, "   ")

	s := m.State()
	if s.XP != 0 || len(s.Transcript) != 1 {
		t.Errorf("blank input should change nothing, got XP=%d transcript=%q", s.XP, s.Transcript)
	}
	if m.input.Value() != "   " {
		t.Error("blank input should stay in the input line")
	}
}

func TestToggleThemeRemountsBackground(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	oldLoop := m.loop

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	if m.State().Theme != shell.ThemeCyber {
		t.Errorf("theme = %q, expected cyber", m.State().Theme)
	}
	if m.Background().ID() != BackgroundGrid {
		t.Errorf("background = %s, expected grid", m.Background().ID())
	}
	if len(m.State().Transcript) != 1 {
		t.Error("toggle should not write to the transcript")
	}
	if m.State().XP != shell.BaselineXP+shell.ThemeXP {
		t.Errorf("XP = %d, expected %d", m.State().XP, shell.BaselineXP+shell.ThemeXP)
	}
	if cmd == nil {
		t.Error("remount should schedule a tick for the new backdrop")
	}
	if m.loop.Accept(TickMsg{ID: oldLoop.id, Gen: oldLoop.gen}) {
		t.Error("ticks scheduled before the remount should be dropped")
	}
}

func TestThemeCommandCycles(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	want := []shell.Theme{shell.ThemeCyber, shell.ThemeWow, shell.ThemeMatrix}

	for _, theme := range want {
		m, _ = submit(t, m, "theme")
		if m.State().Theme != theme {
			t.Fatalf("theme = %q, expected %q", m.State().Theme, theme)
		}
		if m.palette.Theme != theme {
			t.Errorf("palette = %q, expected %q", m.palette.Theme, theme)
		}
	}
}

func TestLevelUpShowsPopup(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	m.state.XP = 95

	m, cmd := submit(t, m, "help")
	if m.State().Level != 2 {
		t.Fatalf("level = %d, expected 2", m.State().Level)
	}
	if got := m.PopupText(); got != "LEVEL UP! 🌟 Level 2" {
		t.Errorf("popup = %q", got)
	}
	if cmd == nil {
		t.Error("popup should schedule its dismissal")
	}

	m, _ = send(t, m, popupExpiredMsg{seq: m.popup.seq})
	if m.PopupText() != "" {
		t.Error("popup should hide after its timer fires")
	}
}

func TestPopupIgnoresStaleDismissal(t *testing.T) {
	p := NewPopup(time.Second)
	p, _ = p.Show("first")
	first := p.seq
	p, _ = p.Show("second")

	p = p.Expire(popupExpiredMsg{seq: first})
	if !p.Visible() || p.Text() != "second" {
		t.Error("an older timer should not hide a newer popup")
	}

	p = p.Cancel()
	if p.Visible() {
		t.Error("Cancel should hide the popup")
	}
}

func TestLoopGenerations(t *testing.T) {
	l := NewLoop(50 * time.Millisecond).Start()
	current := TickMsg{ID: l.id, Gen: l.gen}
	if !l.Accept(current) {
		t.Fatal("loop should accept its own tick")
	}

	restarted := l.Start()
	if restarted.Accept(current) {
		t.Error("restart should orphan earlier ticks")
	}

	stopped := restarted.Stop()
	if stopped.Accept(TickMsg{ID: stopped.id, Gen: stopped.gen}) {
		t.Error("stopped loop should accept nothing")
	}
	if stopped.Tick() != nil {
		t.Error("stopped loop should not schedule ticks")
	}

	other := NewLoop(50 * time.Millisecond).Start()
	if l.Accept(TickMsg{ID: other.id, Gen: other.gen}) {
		t.Error("loop should ignore ticks from another loop")
	}

	if NewLoop(0).Interval() != 50*time.Millisecond {
		t.Error("non-positive interval should fall back to 50ms")
	}
}

func TestTickStepsBackground(t *testing.T) {
	m := newTestModel(t, shell.ThemeCyber)

	m, cmd := send(t, m, TickMsg{ID: m.loop.id, Gen: m.loop.gen})
	if cmd == nil {
		t.Error("accepted tick should schedule the next one")
	}
	m.View()
	if !strings.ContainsRune(m.frame.String(), '┼') {
		t.Error("grid should be visible after one tick")
	}

	_, cmd = send(t, m, TickMsg{ID: m.loop.id, Gen: m.loop.gen - 1})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
}

func TestFocusPausesAndResumes(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)

	m, _ = send(t, m, tea.BlurMsg{})
	if m.Animating() {
		t.Error("blur should stop the loop")
	}

	m, cmd := send(t, m, tea.FocusMsg{})
	if !m.Animating() || cmd == nil {
		t.Error("focus should restart the loop")
	}

	_, cmd = send(t, m, tea.FocusMsg{})
	if cmd != nil {
		t.Error("focus on a running loop should not start a second schedule")
	}
}

func TestThemeChangeWhilePausedStaysPaused(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	m, _ = send(t, m, tea.BlurMsg{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.Animating() {
		t.Error("theme change should not resume a paused loop")
	}
	if m.Background().ID() != BackgroundGrid {
		t.Error("backdrop should still be swapped")
	}
}

func TestQuitStopsEverything(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	m.state.XP = 95
	m, _ = submit(t, m, "help")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if m.Animating() || m.PopupText() != "" {
		t.Error("quit should cancel the loop and the popup")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestResizeRelayouts(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.frame.Width() != 100 || m.frame.Height() != 40 {
		t.Errorf("frame = %dx%d, expected 100x40", m.frame.Width(), m.frame.Height())
	}
	if got := strings.Count(m.View(), "\n"); got != 39 {
		t.Errorf("view has %d rows, expected 40", got+1)
	}
	if m.transcript.Width != m.layout.transcript.W {
		t.Error("viewport should follow the transcript area")
	}
}

func TestViewDrawsChrome(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	m, _ = submit(t, m, "stats")
	m.View()
	out := m.frame.String()

	for _, want := range []string{
		"WOW TERMINAL",
		"★ Level 1",
		"5XP",
		"Welcome to WOW Terminal!",
		"> stats",
		"^t theme",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestTranscriptWrapsToPanel(t *testing.T) {
	cfg := config.Default()
	m := NewModel(Options{Config: cfg, Width: 30, Height: 20, Seed: 1})

	width := m.layout.transcript.W
	if width <= 0 {
		t.Fatal("transcript area should not be empty")
	}
	if len(m.lines) < 2 {
		t.Error("welcome message should wrap on a narrow terminal")
	}
	for _, l := range m.lines {
		if w := len([]rune(l.text)); w > width {
			t.Errorf("line %q is %d wide, panel is %d", l.text, w, width)
		}
	}
}

func TestInputScrollsToCursor(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(strings.Repeat("x", 120) + "END")})

	m.View()
	row := frameRow(m, m.layout.input.Y+1)
	if !strings.Contains(row, "END") {
		t.Errorf("input row should show the text before the cursor, got %q", row)
	}
}

func TestPageUpScrollsTranscript(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	for i := 0; i < 5; i++ {
		m, _ = submit(t, m, "help")
	}
	if !m.transcript.AtBottom() {
		t.Fatal("transcript should follow new output")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.transcript.AtBottom() {
		t.Error("pgup should scroll away from the bottom")
	}
	if m.input.Value() != "" {
		t.Error("paging keys should not reach the input line")
	}
}

func TestMouseWheelScrollsOnlyOverTranscript(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	for i := 0; i < 5; i++ {
		m, _ = submit(t, m, "help")
	}
	wheel := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}
	}

	m, _ = send(t, m, wheel(m.layout.input.X+2, m.layout.input.Y+1))
	if !m.transcript.AtBottom() {
		t.Error("wheel over the input line should not scroll the transcript")
	}

	p := m.layout.panel
	m, _ = send(t, m, wheel(p.X+3, p.Y+2))
	if m.transcript.AtBottom() {
		t.Error("wheel over the transcript should scroll it")
	}
}

func TestBannerCentered(t *testing.T) {
	m := newTestModel(t, shell.ThemeMatrix)
	if m.layout.banner.Empty() {
		t.Fatal("80x30 terminal should show the banner")
	}
	m.View()

	y := m.layout.banner.Y
	x := (m.frame.Width() - bannerWidth) / 2
	for i, r := range bannerLines[0] {
		if got := m.frame.GetCell(x+i, y).Rune; got != r {
			t.Fatalf("banner cell %d = %q, expected %q", x+i, got, r)
		}
	}
}

func TestComputeLayout(t *testing.T) {
	tall := computeLayout(80, 40, true)
	if tall.header.Empty() || tall.banner.Empty() {
		t.Error("tall terminal should show header and banner")
	}
	if tall.panel.Y != tall.banner.Bottom() || tall.panel.Bottom() != tall.input.Y {
		t.Errorf("panel should sit between banner and input: %+v", tall)
	}
	if tall.footer.Y != 39 || tall.input.Bottom() != 39 {
		t.Errorf("footer and input should be anchored to the bottom: %+v", tall)
	}

	noBanner := computeLayout(80, 40, false)
	if !noBanner.banner.Empty() {
		t.Error("banner disabled in config should not be drawn")
	}

	short := computeLayout(80, 10, true)
	if !short.header.Empty() || !short.banner.Empty() {
		t.Error("short terminal should drop header and banner")
	}
	if short.panel.Y != 0 {
		t.Errorf("panel should start at the top, got %d", short.panel.Y)
	}
}

// frameRow returns line y of the last drawn frame.
func frameRow(m Model, y int) string {
	return strings.Split(m.frame.String(), "\n")[y]
}
