// sprites validates sprite-sheet descriptors and previews their animations
// in the terminal.
//
// Usage:
//
//	sprites validate <sheet>...   - Check descriptors and report every animation error
//	sprites inspect <sheet>...    - Show the animations a set of sheets defines
//	sprites ids                   - List the animation vocabulary
//	sprites play <sheet>...       - Play animations in the terminal
//	sprites serve <sheet>...      - Serve the preview over SSH
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.sprites, ./configs)
//	--vocab <path>      - Vocabulary names file (default: built-in)
//	--log-level <lvl>   - debug, info, warn, error
//	--strict            - Require an animation for every vocabulary name
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagVocab    string
	flagLogLevel string
	flagStrict   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sprites",
	Short: "Sprites - validate and preview sprite-sheet animations",
	Long: `Sprites reads sprite-sheet descriptors exported by Aseprite and
similar editors, validates them into an animation catalog and plays the
animations in your terminal.

Available commands:
  validate - Check descriptors and report the first error in each
  inspect  - Show the animations a set of sheets defines
  ids      - List the animation vocabulary
  play     - Play animations in the terminal
  serve    - Serve the preview over SSH

Examples:
  sprites validate assets/knight.json
  sprites inspect assets/*.json
  sprites play assets/knight.json --anim idle
  sprites serve assets/*.json --ssh :2323`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagVocab, "vocab", "", "Path to vocabulary YAML (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Require an animation for every vocabulary name")

	// Add subcommands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(idsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
