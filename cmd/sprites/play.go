package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sprites/internal/catalog"
	"github.com/vovakirdan/tui-sprites/internal/core"
	"github.com/vovakirdan/tui-sprites/internal/platform/tui"
	"github.com/vovakirdan/tui-sprites/internal/vocab"
)

var (
	flagPlayAnim  string
	flagPlayFPS   int
	flagPlaySpeed float64
)

var playCmd = &cobra.Command{
	Use:   "play <sheet>...",
	Short: "Play animations in the terminal",
	Long: `Build a catalog from the given sheets and play its animations.
The preview shows the cel outline at the sprite's aspect ratio with its
slices drawn inside, plus the cursor state.

Controls:
  Space/P    - Play/pause
  ←/→        - Step one cel
  ↑/↓        - Previous/next animation
  R          - Rewind
  +/-        - Faster/slower
  Ctrl+S     - Save a text snapshot to ~/.sprites/snapshots
  Q/Ctrl+C   - Quit

Examples:
  sprites play assets/knight.json
  sprites play assets/knight.json --anim idle --speed 0.5`,
	Args: cobra.MinimumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayAnim, "anim", "", "Animation to start on")
	playCmd.Flags().IntVar(&flagPlayFPS, "fps", 0, "Redraws per second (default from config)")
	playCmd.Flags().Float64Var(&flagPlaySpeed, "speed", 0, "Playback speed multiplier (default from config)")
}

func runPlay(_ *cobra.Command, args []string) {
	e, err := loadEnv(os.Stderr)
	exitOnError(err)
	c, err := e.loadCatalog(args)
	exitOnError(err)

	start, err := startID(c, flagPlayAnim)
	exitOnError(err)

	// Get terminal size before the program starts
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: e.cfg.Preview.TickRate,
		Speed:    e.cfg.Preview.Speed,
	}
	if flagPlayFPS > 0 {
		cfg.TickRate = flagPlayFPS
	}
	if flagPlaySpeed > 0 {
		cfg.Speed = flagPlaySpeed
	}

	exitOnError(tui.Run(c, start, cfg))
}

// startID resolves the animation to open on. An empty name picks the first
// animation.
func startID(c *catalog.Catalog, name string) (vocab.ID, error) {
	if name == "" {
		ids := c.IDs()
		if len(ids) == 0 {
			return 0, fmt.Errorf("the sheets define no animations")
		}
		return ids[0], nil
	}
	id, ok := c.Vocabulary().Lookup(name)
	if !ok {
		return 0, fmt.Errorf("unknown animation %q (run 'sprites ids' to list names)", name)
	}
	if _, ok := c.Get(id); !ok {
		return 0, fmt.Errorf("animation %q is not defined by the given sheets", name)
	}
	return id, nil
}
