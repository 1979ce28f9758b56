package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sprites/internal/catalog"
	"github.com/vovakirdan/tui-sprites/internal/core"
	"github.com/vovakirdan/tui-sprites/internal/sheet"
	"github.com/vovakirdan/tui-sprites/internal/vocab"
)

// testCatalog builds "idle" (3 cels, pingpong, 100ms each, one slice) and
// "dead" (a single held cel).
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	doc := &sheet.Document{Frames: map[string]sheet.FrameEntry{}}
	for i := 0; i < 3; i++ {
		doc.Frames[sheet.FrameKey("idle", i)] = sheet.FrameEntry{
			Frame:      core.NewRect(i*8, 0, 8, 8),
			SourceSize: core.Size{W: 8, H: 8},
			Duration:   100,
		}
	}
	doc.Frames[sheet.FrameKey("dead", 3)] = sheet.FrameEntry{
		Frame:      core.NewRect(24, 0, 8, 8),
		SourceSize: core.Size{W: 8, H: 8},
		Duration:   sheet.InfiniteDuration,
	}
	doc.Meta.FrameTags = []sheet.FrameTagEntry{
		{Name: "idle", From: 0, To: 2, Direction: "pingpong"},
		{Name: "dead", From: 3, To: 3, Direction: "forward"},
	}
	doc.Meta.Slices = []sheet.SliceEntry{
		{Name: "idle", Keys: []sheet.SliceKey{{Frame: 0, Bounds: core.NewRect(2, 2, 4, 4)}}},
	}

	c, err := catalog.Build(doc, vocab.Default())
	if err != nil {
		t.Fatalf("catalog.Build: %v", err)
	}
	return c
}

func newTestModel(t *testing.T) PreviewModel {
	t.Helper()
	c := testCatalog(t)
	idle, _ := vocab.Default().Lookup("idle")
	return NewPreviewModel(c, idle, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30, Speed: 1})
}

func update(t *testing.T, m PreviewModel, msg tea.Msg) (PreviewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PreviewModel)
	if !ok {
		t.Fatalf("Update returned %T, expected PreviewModel", next)
	}
	return pm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewPreviewModelStart(t *testing.T) {
	m := newTestModel(t)
	idle, _ := vocab.Default().Lookup("idle")
	if id, ok := m.Selected(); !ok || id != idle {
		t.Errorf("selected %d, expected idle (%d)", id, idle)
	}
	if m.Cursor() == nil {
		t.Fatal("idle should have a cursor")
	}

	walk, _ := vocab.Default().Lookup("walk")
	m = NewPreviewModel(testCatalog(t), walk, core.DefaultConfig())
	first := m.catalog.IDs()[0]
	if id, _ := m.Selected(); id != first {
		t.Errorf("unknown start: selected %d, expected first id %d", id, first)
	}
}

func TestAdvanceCarriesFractions(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 3; i++ {
		m.Advance(400 * time.Microsecond)
	}
	if got := m.Cursor().Exposure(); got != 1 {
		t.Errorf("exposure after 1.2ms: got %d, expected 1", got)
	}

	m.Advance(150 * time.Millisecond)
	if got := m.Cursor().Index(); got != 1 {
		t.Errorf("index: got %d, expected 1", got)
	}
}

func TestAdvanceAppliesSpeed(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("+"))
	if m.Speed() != 2 {
		t.Fatalf("speed: got %g, expected 2", m.Speed())
	}

	m.Advance(50 * time.Millisecond)
	if got := m.Cursor().Index(); got != 1 {
		t.Errorf("index at double speed: got %d, expected 1", got)
	}

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, runes("+"))
	}
	if m.Speed() != maxSpeed {
		t.Errorf("speed: got %g, expected clamp at %g", m.Speed(), maxSpeed)
	}
	for i := 0; i < 20; i++ {
		m, _ = update(t, m, runes("-"))
	}
	if m.Speed() != minSpeed {
		t.Errorf("speed: got %g, expected clamp at %g", m.Speed(), minSpeed)
	}
}

func TestTicksAdvancePlayback(t *testing.T) {
	m := newTestModel(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m, cmd := update(t, m, TickMsg(start))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Cursor().Exposure() != 0 {
		t.Error("first tick should only record the time")
	}

	m, _ = update(t, m, TickMsg(start.Add(100*time.Millisecond)))
	if got := m.Cursor().Index(); got != 1 {
		t.Errorf("index after 100ms: got %d, expected 1", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.Paused() {
		t.Fatal("space should pause")
	}
	m, _ = update(t, m, TickMsg(start.Add(500*time.Millisecond)))
	if got := m.Cursor().Index(); got != 1 {
		t.Errorf("paused playback moved to %d", got)
	}

	// Time spent paused is not played back after resuming.
	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, TickMsg(start.Add(550*time.Millisecond)))
	if got := m.Cursor().Index(); got != 1 || m.Cursor().Exposure() != 50 {
		t.Errorf("after resume: index %d exposure %d, expected 1 and 50", got, m.Cursor().Exposure())
	}
}

func TestStepKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, runes("l"))
	if got := m.Cursor().Index(); got != 2 {
		t.Errorf("after two steps: got %d, expected 2", got)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Cursor().Index(); got != 1 {
		t.Errorf("pingpong turnaround: got %d, expected 1", got)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Cursor().Index(); got != 2 {
		t.Errorf("step back: got %d, expected 2", got)
	}
	m, _ = update(t, m, runes("r"))
	if m.Cursor().Period() != 0 {
		t.Errorf("rewind: period %d, expected 0", m.Cursor().Period())
	}
}

func TestSwitchAnimations(t *testing.T) {
	m := newTestModel(t)
	dead, _ := vocab.Default().Lookup("dead")
	idle, _ := vocab.Default().Lookup("idle")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if id, _ := m.Selected(); id != dead {
		t.Fatalf("selected %d, expected dead (%d)", id, dead)
	}
	if m.Cursor() != nil {
		t.Error("static animation should have no cursor")
	}
	// Stepping a static animation is a no-op.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m.Advance(time.Second)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if id, _ := m.Selected(); id != idle {
		t.Errorf("wrap: selected %d, expected idle (%d)", id, idle)
	}
	if m.Cursor() == nil || m.Cursor().Period() != 0 {
		t.Error("switching back should start a fresh cursor")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if id, _ := m.Selected(); id != dead {
		t.Errorf("wrap backwards: selected %d, expected dead", id)
	}
}

func TestViewAndQuit(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	for _, want := range []string{"idle", "cel 1/3", "pingpong", "cycle 400ms"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.screen.Width() != 40 || m.screen.Height() != canvasHeight(12) {
		t.Errorf("screen %dx%d after resize", m.screen.Width(), m.screen.Height())
	}

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestEmptyCatalogView(t *testing.T) {
	v, err := vocab.New([]string{"idle"})
	if err != nil {
		t.Fatalf("vocab.New: %v", err)
	}
	c, err := catalog.NewBuilder(v).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	m := NewPreviewModel(c, 0, core.DefaultConfig())
	if _, ok := m.Selected(); ok {
		t.Error("empty catalog should have no selection")
	}
	if !strings.Contains(m.View(), "catalog is empty") {
		t.Errorf("unexpected view %q", m.View())
	}
	update(t, m, tea.KeyMsg{Type: tea.KeyDown})
}
