package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flights/internal/config"
)

// fileArgHelp documents the <filename> argument of the data file commands
const fileArgHelp = "\n\nArguments:\n  filename   " + config.DataFileDescription

// NewRootCommand assembles the flights command tree. Errors returned by
// Execute are always usage errors; data errors are logged by the commands.
func NewRootCommand(log *zap.SugaredLogger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Maintain a list of flights stored in a JSON file",
		Long: `flights keeps a small list of flight records in a JSON file.

Each flight has a destination, a flight number and a plane type. Flights can
be added, displayed in full, or selected by text found in any of their fields.
Every command logs its progress and duration to the console and to ` + config.LogFile + `.`,
		Version:       config.Version,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.AddCommand(NewAddCommand(log))
	rootCmd.AddCommand(NewDisplayCommand(log))
	rootCmd.AddCommand(NewSelectCommand(log))
	rootCmd.AddCommand(NewImportCommand(log))
	rootCmd.AddCommand(NewExportCommand(log))
	rootCmd.AddCommand(NewQueryCommand(log))

	return rootCmd
}
