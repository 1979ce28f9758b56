package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sprites/internal/anim"
	"github.com/vovakirdan/tui-sprites/internal/catalog"
)

var flagInspectAnim string

var inspectCmd = &cobra.Command{
	Use:   "inspect <sheet>...",
	Short: "Show the animations defined by sprite sheets",
	Long: `Build a catalog from the given sheets and print one row per animation.
With --anim, print the cels of a single animation instead.

Examples:
  sprites inspect assets/knight.json
  sprites inspect assets/knight.json --anim idle`,
	Args: cobra.MinimumNArgs(1),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagInspectAnim, "anim", "", "Show the cels of one animation")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runInspect(cmd *cobra.Command, args []string) {
	e, err := loadEnv(os.Stderr)
	exitOnError(err)
	c, err := e.loadCatalog(args)
	exitOnError(err)

	if flagInspectAnim != "" {
		exitOnError(writeCelTable(cmd.OutOrStdout(), c, flagInspectAnim))
		return
	}
	writeCatalogTable(cmd.OutOrStdout(), c)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// writeCatalogTable prints one row per animation in identifier order.
func writeCatalogTable(w io.Writer, c *catalog.Catalog) {
	t := newTable("ID", "Name", "Cels", "Size", "Direction", "Cycle", "Slices")
	for _, id := range c.IDs() {
		a, _ := c.Get(id)
		slices := 0
		if cel, ok := a.Cel(0); ok {
			slices = len(cel.Slices)
		}
		t.Row(
			strconv.Itoa(int(id)),
			c.Name(id),
			strconv.Itoa(a.Len()),
			a.Size().String(),
			a.Direction().String(),
			a.Duration().String(),
			strconv.Itoa(slices),
		)
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d animations\n", c.Len())
}

// writeCelTable prints the cels of the named animation.
func writeCelTable(w io.Writer, c *catalog.Catalog, name string) error {
	a, ok := c.Lookup(name)
	if !ok {
		return fmt.Errorf("no animation named %q", name)
	}

	t := newTable("Cel", "Atlas", "Duration", "Slices")
	for i, cel := range a.Cels() {
		slices := ""
		for j, r := range cel.Slices {
			if j > 0 {
				slices += " "
			}
			slices += r.String()
		}
		t.Row(strconv.Itoa(i), cel.Bounds.String(), cel.Duration.String(), slices)
	}
	fmt.Fprintln(w, t.Render())

	animated := "static"
	if a.Animated() {
		animated = "animated"
	}
	fmt.Fprintf(w, "%s: %d cels, %v, %v cycle, %s\n",
		name, a.Len(), a.Direction(), a.Duration(), animated)
	if a.Duration() == anim.Infinite {
		fmt.Fprintln(w, "ends on a held cel")
	}
	return nil
}
