package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sprites/internal/vocab"
)

var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "List the animation vocabulary",
	Long:  `Shows every animation name the catalog accepts, with its numeric identifier.`,
	Run:   runIDs,
}

func runIDs(cmd *cobra.Command, _ []string) {
	e, err := loadEnv(os.Stderr)
	exitOnError(err)
	writeVocabulary(cmd.OutOrStdout(), e.vocab)
}

func writeVocabulary(w io.Writer, v *vocab.Vocabulary) {
	if v.Len() == 0 {
		fmt.Fprintln(w, "No names defined.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, id := range v.IDs() {
		name, _ := v.Name(id)
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Fprintf(w, "  %-5s  %-*s\n", "ID", maxNameLen, "Name")
	fmt.Fprintf(w, "  %-5s  %-*s\n", "--", maxNameLen, "----")
	for _, id := range v.IDs() {
		name, _ := v.Name(id)
		fmt.Fprintf(w, "  %-5d  %-*s\n", id, maxNameLen, name)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d names. Frame tags must use one of them.\n", v.Len())
}
