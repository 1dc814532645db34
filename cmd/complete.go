package cmd

import (
	"fmt"

	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// completeCmd stops looking for new episodes of a show
var completeCmd = &cobra.Command{
	Use:   "complete <title>",
	Short: "mark a show as complete",
	Long:  `Mark a show as complete after the last episode found so far.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		_, m, err := setup(ctx)
		if err != nil {
			log.Fatalw("failed to set up", zap.Error(err))
		}

		show, err := m.CompleteShow(ctx, args[0])
		if err != nil {
			log.Fatalw("failed to complete show", "title", args[0], zap.Error(err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is complete with %s\n", show.Title, pluralize(int(show.TotalEpisodes), "episode"))
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
