package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/kasuboski/nyaaz/pkg/manager"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var refreshWatch bool

// refreshCmd looks for the next episode of every pending show
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "look for new episodes",
	Long: `Search for the next episode of every pending show. Found episodes are recorded
and the commands in on_new_episode are started for each of them.
With --watch the refresh repeats every manager.refreshInterval until interrupted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log := logger.Get()
		ctx = logger.WithCtx(ctx, log)

		cfg, m, err := setup(ctx)
		if err != nil {
			log.Fatalw("failed to set up", zap.Error(err))
		}

		if refreshWatch {
			if err := m.Watch(ctx, cfg.Manager.RefreshInterval); err != nil {
				log.Fatalw("refresh failed", zap.Error(err))
			}
			return
		}

		summary, err := m.Refresh(ctx)
		switch {
		case errors.Is(err, manager.ErrRefreshRunning):
			log.Warnw("skipping refresh", zap.Error(err))
			return
		case err != nil:
			log.Fatalw("refresh failed", "run_id", summary.RunID, zap.Error(err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "checked %s: %d new, %d without a new episode, %d failed\n",
			pluralize(summary.Shows, "show"), summary.Committed, summary.NoMatch, summary.SearchErrors)
	},
}

func init() {
	refreshCmd.Flags().BoolVarP(&refreshWatch, "watch", "w", false, "keep refreshing on an interval")
	rootCmd.AddCommand(refreshCmd)
}
