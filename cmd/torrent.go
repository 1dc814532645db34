package cmd

import (
	"fmt"

	"github.com/kasuboski/nyaaz/config"
	"github.com/kasuboski/nyaaz/pkg/download"
	nhttp "github.com/kasuboski/nyaaz/pkg/http"
	"github.com/kasuboski/nyaaz/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	torrentServer      string
	torrentDownloadDir string
)

// torrentCmd groups download client commands
var torrentCmd = &cobra.Command{
	Use:   "torrent",
	Short: "hand torrents to transmission",
}

// addTorrentCmd submits a magnet link, usable as an on_new_episode action
var addTorrentCmd = &cobra.Command{
	Use:   "add <uri>",
	Short: "add a magnet link or torrent url to transmission",
	Long: `Add a magnet link or torrent url to transmission.
Use it as an on_new_episode action with "$url" as the argument.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		cfg, err := loadConfig()
		if err != nil {
			log.Fatalw("failed to set up", zap.Error(err))
		}

		transmission := cfg.Transmission
		if cmd.Flags().Changed("server") {
			transmission.URI = torrentServer
		}
		if cmd.Flags().Changed("download-dir") {
			transmission.DownloadDir = torrentDownloadDir
		}

		client, err := newDownloadClient(transmission)
		if err != nil {
			log.Fatalw("failed to create transmission client", zap.Error(err))
		}

		added, err := client.Add(ctx, download.AddRequest{URI: args[0], DownloadDir: transmission.DownloadDir})
		if err != nil {
			log.Fatalw("failed to add torrent", zap.Error(err))
		}

		if added.Duplicate {
			fmt.Fprintf(cmd.OutOrStdout(), "already added %d: %s\n", added.ID, added.Name)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %d: %s\n", added.ID, added.Name)
	},
}

func newDownloadClient(cfg config.Transmission) (download.Client, error) {
	return download.NewClient(nhttp.NewRateLimitedHTTPClient(), cfg)
}

func init() {
	addTorrentCmd.Flags().StringVar(&torrentServer, "server", "", "transmission url, defaults to transmission.uri")
	addTorrentCmd.Flags().StringVar(&torrentDownloadDir, "download-dir", "", "download directory, defaults to transmission.downloadDir")
	torrentCmd.AddCommand(addTorrentCmd)
	rootCmd.AddCommand(torrentCmd)
}
