package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/soundboard"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

var (
	playLoop bool
	playFor  time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play <id>",
	Short: "Play a sound",
	Long: `Play a sound and wait for it to finish. With --loop the sound repeats
until --for elapses or the command is interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playLoop, "loop", false, "repeat the sound")
	playCmd.Flags().DurationVar(&playFor, "for", 0, "stop after this long (default: the clip length, or until interrupted when looping)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	id, err := domain.ParseSoundID(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *soundboard.Session) error {
		if playLoop {
			if _, err := s.ToggleLoop(ctx); err != nil {
				return err
			}
		}
		if err := s.Play(ctx, id); err != nil {
			return err
		}

		wait := playFor
		if wait == 0 && !playLoop {
			d, err := s.Duration(id)
			if err != nil {
				log.Warn(log.CatCmd, "Clip length unknown", "id", id.String(), "error", err.Error())
			}
			wait = d
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Playing %s (Ctrl+C to stop)\n", id)

		waitFor(ctx, wait)
		return s.StopAll(context.WithoutCancel(ctx))
	})
}

// waitFor blocks until d elapses or ctx is done. A zero d waits for ctx only.
func waitFor(ctx context.Context, d time.Duration) {
	if d <= 0 {
		<-ctx.Done()
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
