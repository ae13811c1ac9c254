package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/kobeSmallman/mobileSoundboard/internal/soundboard"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

var listMarkdown bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List every sound with its id",
	Long:    `List stored sounds followed by the default sounds. The id column is what play, rename and remove accept.`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().BoolVar(&listMarkdown, "markdown", false, "render the list as a formatted table")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(_ context.Context, s *soundboard.Session) error {
		entries := s.Entries()
		out := cmd.OutOrStdout()
		if listMarkdown {
			return printMarkdown(out, entries)
		}
		printPlain(out, entries)
		return nil
	})
}

func printPlain(w io.Writer, entries []domain.CatalogEntry) {
	idWidth := 2
	for _, e := range entries {
		idWidth = max(idWidth, len(e.ID.String()))
	}
	for _, e := range entries {
		source := e.URI
		if e.IsDefault {
			source = "(default)"
		}
		_, _ = fmt.Fprintf(w, "%-*s  %s  %s\n", idWidth, e.ID, e.Label, source)
	}
}

func printMarkdown(w io.Writer, entries []domain.CatalogEntry) error {
	var md strings.Builder
	md.WriteString("| ID | Label | Source |\n|----|-------|--------|\n")
	for _, e := range entries {
		source := "`" + e.URI + "`"
		if e.IsDefault {
			source = "default"
		}
		fmt.Fprintf(&md, "| %s | %s | %s |\n", e.ID, escapeCell(e.Label), source)
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	rendered, err := r.Render(md.String())
	if err != nil {
		return fmt.Errorf("rendering list: %w", err)
	}
	_, err = io.WriteString(w, rendered)
	return err
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
