// Package main is the entry point for the maria-faz-cli application.
// It registers the operator sub-commands (migrate, demo, user, report, quotation)
// on the root command and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/bilalmachraa82/MariaIntelligence-1-sub008/cmd/maria-faz-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "maria-faz-cli",
		Short: "Maria Faz back office operator tool",
		Long: `maria-faz-cli runs maintenance tasks against the Maria Faz back office database.
It reads the same configuration file as the REST API (--config, or CONFIG_PATH).

Examples:
  maria-faz-cli migrate
  maria-faz-cli demo generate --owners 3
  maria-faz-cli user create --email ana@mariafaz.pt --name Ana --password ******** --role manager
  maria-faz-cli report owner --owner-id <id> --from 2026-03-01 --to 2026-03-31 --format xlsx
  maria-faz-cli quotation calculate --type house --area 120 --bedrooms 3`,
		SilenceUsage: true,
	}
	commands.AddConfigFlag(rootCmd)

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	handler, err := commands.NewCommandHandler()
	if err != nil {
		return err
	}

	commands.InitMigrateCommands(rootCmd, handler)
	commands.InitDemoCommands(rootCmd, handler)
	commands.InitUserCommands(rootCmd, handler)
	commands.InitReportCommands(rootCmd, handler)
	commands.InitQuotationCommands(rootCmd, handler)
	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
