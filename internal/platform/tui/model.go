package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sprites/internal/anim"
	"github.com/vovakirdan/tui-sprites/internal/catalog"
	"github.com/vovakirdan/tui-sprites/internal/core"
	"github.com/vovakirdan/tui-sprites/internal/vocab"
)

const (
	headerLines = 1
	footerLines = 3 // Two info lines and the help line

	minSpeed = 1.0 / 16
	maxSpeed = 16.0
)

// PreviewModel is the Bubble Tea model that plays the animations of a
// catalog. The catalog is shared; the cursor belongs to this model.
type PreviewModel struct {
	catalog  *catalog.Catalog
	ids      []vocab.ID
	selected int
	cursor   *anim.Cursor // nil for static animations
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	paused   bool
	last     time.Time // Time of the previous tick; zero until the first
	carry    float64   // Sub-millisecond remainder of scaled elapsed time
	quitting bool
}

// NewPreviewModel creates a preview positioned on start, or on the first
// animation when start is not in the catalog.
func NewPreviewModel(c *catalog.Catalog, start vocab.ID, cfg core.RuntimeConfig) PreviewModel {
	if cfg.Speed <= 0 {
		cfg.Speed = 1
	}
	m := PreviewModel{
		catalog: c,
		ids:     c.IDs(),
		screen:  core.NewScreen(cfg.ScreenW, canvasHeight(cfg.ScreenH)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.help.Width = cfg.ScreenW
	for i, id := range m.ids {
		if id == start {
			m.selected = i
			break
		}
	}
	m.selectAnimation(m.selected)
	return m
}

// Init starts the tick loop.
func (m PreviewModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, canvasHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.handleTick(time.Time(msg))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

func (m PreviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.StepNext):
		if m.cursor != nil {
			m.cursor.Step()
			m.carry = 0
		}
	case key.Matches(msg, m.keys.StepPrev):
		if m.cursor != nil {
			m.cursor.StepBack()
			m.carry = 0
		}
	case key.Matches(msg, m.keys.NextAnim):
		m.selectAnimation(m.selected + 1)
	case key.Matches(msg, m.keys.PrevAnim):
		m.selectAnimation(m.selected - 1)
	case key.Matches(msg, m.keys.Reset):
		if m.cursor != nil {
			m.cursor.Reset()
			m.carry = 0
		}
	case key.Matches(msg, m.keys.Faster):
		m.config.Speed = math.Min(m.config.Speed*2, maxSpeed)
	case key.Matches(msg, m.keys.Slower):
		m.config.Speed = math.Max(m.config.Speed/2, minSpeed)
	case key.Matches(msg, m.keys.Snapshot):
		m.saveSnapshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleTick advances playback by the wall time since the previous tick.
func (m *PreviewModel) handleTick(now time.Time) {
	prev := m.last
	m.last = now
	if prev.IsZero() || m.paused {
		return
	}
	m.Advance(now.Sub(prev))
}

// Advance plays elapsed wall time scaled by the current speed. Fractions of
// a millisecond are carried into the next call.
func (m *PreviewModel) Advance(elapsed time.Duration) {
	if m.cursor == nil || elapsed <= 0 {
		return
	}
	ms := float64(elapsed)/float64(time.Millisecond)*m.config.Speed + m.carry
	whole := math.Floor(ms)
	m.carry = ms - whole
	m.cursor.Advance(int64(whole))
}

// selectAnimation switches to the i-th animation, wrapping around, and
// rewinds playback.
func (m *PreviewModel) selectAnimation(i int) {
	if len(m.ids) == 0 {
		return
	}
	i %= len(m.ids)
	if i < 0 {
		i += len(m.ids)
	}
	m.selected = i
	m.carry = 0

	a, _ := m.catalog.Get(m.ids[i])
	if m.cursor != nil && m.cursor.Retarget(a) {
		return
	}
	m.cursor, _ = anim.NewCursor(a)
}

// Selected returns the identifier being previewed.
func (m PreviewModel) Selected() (vocab.ID, bool) {
	if len(m.ids) == 0 {
		return 0, false
	}
	return m.ids[m.selected], true
}

// Cursor returns the playback cursor, or nil for a static animation.
func (m PreviewModel) Cursor() *anim.Cursor {
	return m.cursor
}

// Paused reports whether playback is paused.
func (m PreviewModel) Paused() bool {
	return m.paused
}

// Speed returns the playback speed multiplier.
func (m PreviewModel) Speed() float64 {
	return m.config.Speed
}

// current returns the animation and cel on display.
func (m PreviewModel) current() (*anim.Animation, anim.Cel, bool) {
	if len(m.ids) == 0 {
		return nil, anim.Cel{}, false
	}
	a, ok := m.catalog.Get(m.ids[m.selected])
	if !ok {
		return nil, anim.Cel{}, false
	}
	if m.cursor != nil {
		return a, m.cursor.Cel(), true
	}
	cel, _ := a.Cel(0)
	return a, cel, true
}

// View renders the current state to a string for display.
func (m PreviewModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.ids) == 0 {
		return titleStyle.Render("sprites") + "\n" + infoStyle.Render("catalog is empty") + "\n"
	}

	a, cel, _ := m.current()
	drawCel(m.screen, a, cel)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.titleLine(),
		RenderScreen(m.screen),
		m.infoLines(a, cel),
		m.help.View(m.keys),
	)
}

func (m PreviewModel) titleLine() string {
	id := m.ids[m.selected]
	title := titleStyle.Render(fmt.Sprintf("sprites  %s", m.catalog.Name(id)))
	pos := infoStyle.Render(fmt.Sprintf("  (%d/%d)", m.selected+1, len(m.ids)))
	if m.paused {
		return title + pos + pauseStyle.Render("  PAUSED")
	}
	return title + pos
}

func (m PreviewModel) infoLines(a *anim.Animation, cel anim.Cel) string {
	index := 0
	if m.cursor != nil {
		index = m.cursor.Index()
	}
	first := fmt.Sprintf("cel %d/%d  atlas %v  duration %v  slices %d",
		index+1, a.Len(), cel.Bounds, cel.Duration, len(cel.Slices))

	var second string
	switch {
	case m.cursor == nil:
		second = fmt.Sprintf("static  size %v", a.Size())
	case m.cursor.Holding():
		second = fmt.Sprintf("%v  cycle %v  period %d  holding  speed %gx",
			a.Direction(), a.Duration(), m.cursor.Period(), m.config.Speed)
	default:
		second = fmt.Sprintf("%v  cycle %v  period %d  exposure %dms  speed %gx",
			a.Direction(), a.Duration(), m.cursor.Period(), m.cursor.Exposure(), m.config.Speed)
	}
	return infoStyle.Render(first) + "\n" + infoStyle.Render(second)
}

// saveSnapshot writes the current canvas as plain text to
// ~/.sprites/snapshots.
func (m *PreviewModel) saveSnapshot() {
	a, cel, ok := m.current()
	if !ok {
		return
	}
	drawCel(m.screen, a, cel)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".sprites", "snapshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.catalog.Name(m.ids[m.selected]), timestamp)
	//nolint:errcheck // Best-effort save, playback continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// canvasHeight returns the rows left for the cel after header and footer.
func canvasHeight(screenH int) int {
	return core.Max(screenH-headerLines-footerLines, 1)
}

// Run starts the Bubble Tea program previewing c.
func Run(c *catalog.Catalog, start vocab.ID, cfg core.RuntimeConfig) error {
	model := NewPreviewModel(c, start, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
