package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kobeSmallman/mobileSoundboard/internal/soundboard"
)

var addLabel string

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Add an audio file to the board",
	Long: `Add an mp3, ogg or wav file to the board. The file is checked to decode
and stored by reference; it is not copied.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addLabel, "label", "l", "", "label to show instead of the file name")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(ctx context.Context, s *soundboard.Session) error {
		entry, err := s.ImportPath(ctx, args[0], addLabel)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q\n", entry.ID, entry.Label)
		return nil
	})
}
