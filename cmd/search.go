package cmd

import (
	"os"

	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	searchEpisode     string
	searchEncodeLinks bool
)

// searchCmd looks up entries without touching any tracked show
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "search for releases of a show",
	Long: `Search for releases of a show. Results come from the first page with a match.
Leave out --episode to list every release of that page.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		cfg, err := loadConfig()
		if err != nil {
			log.Fatalw("failed to set up", zap.Error(err))
		}

		m, err := newShowManager(ctx, cfg, nil)
		if err != nil {
			log.Fatalw("failed to set up", zap.Error(err))
		}

		var episode *string
		if cmd.Flags().Changed("episode") {
			episode = &searchEpisode
		}

		entries, err := m.Search(ctx, args[0], episode)
		if err != nil {
			log.Fatalw("search failed", zap.Error(err))
		}

		writeEntries(cmd.OutOrStdout(), entries, searchEncodeLinks)
	},
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func init() {
	searchCmd.Flags().StringVarP(&searchEpisode, "episode", "e", "", "episode to look for, leave empty for any episode")
	searchCmd.Flags().BoolVar(&searchEncodeLinks, "encode-links", isTerminal(os.Stdout), "print magnet links as terminal hyperlinks")
	rootCmd.AddCommand(searchCmd)
}
