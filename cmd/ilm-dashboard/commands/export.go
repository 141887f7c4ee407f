package commands

import (
	"context"
	"os"
	"path/filepath"

	"ilm-dashboard/internal/ilm"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var exportDir string

// exportCmd writes both canonical tables to CSV files without starting the
// HTTP server. Useful for offline inspection and diffing snapshots.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current datasets as canonical CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := store.Snapshot(context.Background())
		if err != nil {
			return err
		}

		if err := writeTable(snap.VA, filepath.Join(exportDir, "virtual_access.csv")); err != nil {
			return err
		}
		if err := writeTable(snap.TA, filepath.Join(exportDir, "transnational_access.csv")); err != nil {
			return err
		}
		return nil
	},
}

func writeTable(t *ilm.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := ilm.WriteCSV(f, t); err != nil {
		f.Close()
		return err
	}
	log.Info().Str("path", path).Int("records", t.Len()).Msg("Exported dataset")
	return f.Close()
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", ".", "output directory for CSV files")
	rootCmd.AddCommand(exportCmd)
}
