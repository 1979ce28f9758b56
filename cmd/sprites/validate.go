package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sprites/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate <sheet>...",
	Short: "Validate sprite-sheet descriptors",
	Long: `Decode every descriptor and build its animations, reporting the first
error found in each file. When every file passes on its own, the sheets are
also checked together: an animation defined by two sheets is an error, and
with --strict every vocabulary name must be covered.

Descriptors may be JSON (.json) or YAML (.yaml, .yml).

Examples:
  sprites validate assets/knight.json
  sprites validate --strict assets/*.json`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	e, err := loadEnv(os.Stderr)
	exitOnError(err)
	exitOnError(validateSheets(cmd.OutOrStdout(), e, args))
}

// validateSheets checks each sheet alone, then all of them together.
func validateSheets(w io.Writer, e *env, paths []string) error {
	failed := 0
	for _, path := range paths {
		n, err := validateSheet(e, path)
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %s\n      %v\n", path, err)
			continue
		}
		fmt.Fprintf(w, "ok    %s (%d animations)\n", path, n)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d sheets failed validation", failed, len(paths))
	}

	c, err := e.loadCatalog(paths)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d animations in %d sheets\n", c.Len(), len(paths))
	return nil
}

func validateSheet(e *env, path string) (int, error) {
	doc, err := readSheet(path)
	if err != nil {
		return 0, err
	}
	c, err := catalog.Build(doc, e.vocab, catalog.WithLogger(e.logger))
	if err != nil {
		return 0, err
	}
	return c.Len(), nil
}
