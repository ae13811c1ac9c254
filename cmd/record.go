package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kobeSmallman/mobileSoundboard/internal/soundboard"
)

var recordFor time.Duration

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a new sound from the microphone",
	Long: `Record from the microphone until --for elapses or the command is
interrupted, then add the recording to the board under the default label.`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().DurationVar(&recordFor, "for", 0, "stop after this long (default: until interrupted)")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(ctx context.Context, s *soundboard.Session) error {
		if err := s.StartRecording(ctx); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Recording... press Ctrl+C to stop")

		waitFor(ctx, recordFor)

		uri, saved, err := s.StopRecording(context.WithoutCancel(ctx))
		if err != nil {
			return err
		}
		if saved {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s as %q\n", uri, s.Config().Recording.DefaultLabel)
		}
		return nil
	})
}
