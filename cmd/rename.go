package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kobeSmallman/mobileSoundboard/internal/soundboard"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> <label>",
	Short: "Change the label of a sound",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a sound from the board",
	Long:    `Remove a stored sound. The audio file itself is left in place. Default sounds cannot be removed.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(removeCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	id, err := domain.ParseSoundID(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *soundboard.Session) error {
		if err := s.Rename(ctx, id, args[1]); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %q\n", id, args[1])
		return nil
	})
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := domain.ParseSoundID(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *soundboard.Session) error {
		if err := s.Remove(ctx, id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
		return nil
	})
}
