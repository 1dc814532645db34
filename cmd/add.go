package cmd

import (
	"fmt"

	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/kasuboski/nyaaz/pkg/manager"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	addSearch string
	addNext   int32
	addTotal  int32
	addUpdate bool
)

// addCmd starts tracking a show
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "track a show",
	Long: `Track a show so refresh looks for its next episode.
Adding a show that is already tracked replaces it unless --update is given,
in which case only the given flags change.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		_, m, err := setup(ctx)
		if err != nil {
			log.Fatalw("failed to set up", zap.Error(err))
		}

		req := manager.AddShowRequest{Title: args[0], Update: addUpdate}
		if cmd.Flags().Changed("search") {
			req.SearchString = &addSearch
		}
		if cmd.Flags().Changed("next") {
			req.NextEpisode = &addNext
		}
		if cmd.Flags().Changed("total") {
			req.TotalEpisodes = &addTotal
		}

		show, err := m.AddShow(ctx, req)
		if err != nil {
			log.Fatalw("failed to add show", "title", args[0], zap.Error(err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "tracking %s, next episode %d of %s\n", show.Title, show.NextEpisode, formatTotal(show.TotalEpisodes))
	},
}

func init() {
	addCmd.Flags().StringVar(&addSearch, "search", "", "query used instead of the title, empty to search by title")
	addCmd.Flags().Int32Var(&addNext, "next", 1, "next episode to look for")
	addCmd.Flags().Int32Var(&addTotal, "total", -1, "number of episodes, -1 when unknown")
	addCmd.Flags().BoolVar(&addUpdate, "update", false, "only change the given fields of a tracked show")
	rootCmd.AddCommand(addCmd)
}
