package commands

import (
	"ilm-dashboard/internal/cache"
	"ilm-dashboard/internal/config"
	"ilm-dashboard/internal/dashboard"
	"ilm-dashboard/internal/logging"
	"ilm-dashboard/internal/sheets"
	"ilm-dashboard/internal/source"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	store *cache.Store
)

var rootCmd = &cobra.Command{
	Use:   "ilm-dashboard",
	Short: "ILM dashboard backend for Geo-INQUIRE access monitoring",
	Long: `Serves Virtual Access and Transnational Access monitoring statistics
aggregated from the ILM spreadsheets, with a local Excel workbook as fallback.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		store = newStore(cfg)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("ILM dashboard starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		server := dashboard.NewServer(cfg, store)
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("Server stopped")
		}
	},
}

// newStore wires the configured sources into the snapshot cache. The remote
// client is only enabled when a spreadsheet id is configured.
func newStore(cfg *config.AppConfig) *cache.Store {
	var remote sheets.Fetcher
	if cfg.Sheets.SpreadsheetID != "" {
		remote = sheets.NewClient(cfg.Sheets)
	} else {
		log.Warn().Msg("No spreadsheet id configured, remote source disabled")
	}

	var fallback sheets.Fetcher
	if cfg.ExcelPath != "" {
		fallback = sheets.NewExcelFetcher(cfg.ExcelPath)
	}

	loader := source.NewLoader(remote, fallback, cfg.VAWorksheet, cfg.TAWorksheet)
	return cache.NewStore(cfg.CacheTTL, loader.Load)
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
