package cmd

import (
	"fmt"

	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// historyCmd lists the episodes found for a show
var historyCmd = &cobra.Command{
	Use:   "history <title>",
	Short: "list the episodes found for a show",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		_, m, err := setup(ctx)
		if err != nil {
			log.Fatalw("failed to set up", zap.Error(err))
		}

		show, episodes, err := m.ShowHistory(ctx, args[0])
		if err != nil {
			log.Fatalw("failed to get history", "title", args[0], zap.Error(err))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s found, %s\n", show.Title, pluralize(len(episodes), "episode"), showStatus(*show))
		if len(episodes) == 0 {
			return
		}

		fmt.Fprintln(out, renderTable(
			[]string{"Episode", "Link"},
			episodeRows(episodes),
			[]columnAlignment{alignRight, alignLeft},
		))
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
