package cmd

import (
	"fmt"

	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statsCmd summarizes tracked shows
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "summarize tracked shows",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		_, m, err := setup(ctx)
		if err != nil {
			log.Fatalw("failed to set up", zap.Error(err))
		}

		stats, err := m.Stats(ctx)
		if err != nil {
			log.Fatalw("failed to get stats", zap.Error(err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s tracked, %d pending, %d complete, %s found\n",
			pluralize(stats.Shows, "show"), stats.Pending, stats.Complete, pluralize(stats.Episodes, "episode"))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
