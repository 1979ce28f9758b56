package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the preview key bindings. It implements help.KeyMap so the
// bindings double as the on-screen help.
type KeyMap struct {
	Pause    key.Binding
	StepNext key.Binding
	StepPrev key.Binding
	NextAnim key.Binding
	PrevAnim key.Binding
	Reset    key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Snapshot key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		StepNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next cel"),
		),
		StepPrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev cel"),
		),
		NextAnim: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next animation"),
		),
		PrevAnim: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "prev animation"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rewind"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.StepNext, k.NextAnim, k.Help, k.Quit}
}

// FullHelp returns every binding grouped into columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Reset, k.Quit},
		{k.StepNext, k.StepPrev},
		{k.NextAnim, k.PrevAnim},
		{k.Faster, k.Slower},
		{k.Snapshot, k.Help},
	}
}
