package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"journeydeck/internal/adapters/sqlite"
	"journeydeck/internal/application/commands"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export journeys and slides",
}

var exportSQLiteCmd = &cobra.Command{
	Use:   "sqlite [path]",
	Short: "Write all journeys, steps and slides to a SQLite database",
	Long: `Write all journeys, steps, pain points, solutions and slides to a SQLite
database. Existing content in the file is replaced.

The path defaults to export.sqlite_path from the config.

Example:
  journeydeck-cli export sqlite deck.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfig().Export.SQLitePath
		if len(args) == 1 {
			path = args[0]
		}

		exporter := sqlite.NewExporter(path)
		if err := exporter.Open(); err != nil {
			return err
		}
		defer exporter.Close()

		result, err := commands.NewExportCommand(exporter).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d journeys, %d steps and %d slides to %s\n",
			result.Journeys, result.Steps, result.Slides, exporter.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportSQLiteCmd)
}
