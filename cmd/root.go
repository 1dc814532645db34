package cmd

import (
	"os"
	"path/filepath"
	"strings"

	nhttp "github.com/kasuboski/nyaaz/pkg/http"
	"github.com/kasuboski/nyaaz/pkg/indexer"
	"github.com/kasuboski/nyaaz/pkg/manager"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configFileName = "config.json"

var configDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nyaaz",
	Short: "track airing shows and find their next episode",
	Long: `nyaaz tracks shows and searches nyaa for the next episode of each one.
New episodes are recorded and handed to the commands configured in config.json.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", defaultConfigDir(), "directory holding config.json and the database")
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".nyaaz"
	}
	return filepath.Join(dir, "nyaaz")
}

func initConfig() {
	cfgFile := filepath.Join(configDir, configFileName)
	if _, err := os.Stat(cfgFile); err == nil {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("NYAAZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("site.implementation", "nyaa")
	viper.SetDefault("site.uri", "https://nyaa.si")
	viper.SetDefault("site.filter", indexer.DefaultFilter)
	viper.SetDefault("site.category", indexer.DefaultCategory)
	viper.SetDefault("site.timeout", 0)
	viper.SetDefault("site.maxRetries", nhttp.DefaultMaxRetries)
	viper.SetDefault("site.backoff", nhttp.DefaultBaseBackoff)

	viper.SetDefault("storage.filePath", filepath.Join(configDir, "database.db"))

	viper.SetDefault("manager.refreshInterval", manager.DefaultRefreshInterval)
	viper.SetDefault("manager.lockFile", filepath.Join(configDir, "refresh.lock"))

	viper.SetDefault("transmission.uri", "")
	viper.SetDefault("transmission.downloadDir", "")
}
