package cmd

import (
	"fmt"

	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listAll bool

// listCmd lists tracked shows
var listCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "list tracked shows",
	Long:  `List tracked shows whose title contains filter. Completed shows are only listed with --all.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		_, m, err := setup(ctx)
		if err != nil {
			log.Fatalw("failed to set up", zap.Error(err))
		}

		var filter string
		if len(args) == 1 {
			filter = args[0]
		}

		shows, err := m.ListShows(ctx, filter, listAll)
		if err != nil {
			log.Fatalw("failed to list shows", zap.Error(err))
		}

		out := cmd.OutOrStdout()
		if len(shows) == 0 {
			fmt.Fprintln(out, "no shows found")
			return
		}

		fmt.Fprintln(out, renderTable(
			[]string{"Title", "Search", "Next", "Total", "Status"},
			showRows(shows),
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
		))
		fmt.Fprintln(out, pluralize(len(shows), "show"))
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include completed shows")
	rootCmd.AddCommand(listCmd)
}
