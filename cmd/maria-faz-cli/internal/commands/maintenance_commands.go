package commands

import (
	"fmt"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/bootstrap"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/demo"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCmd creates or updates the database schema
func (handler *CommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := handler.loadConfig()
	if err != nil {
		return err
	}

	db, err := bootstrap.OpenDatabase(cfg, true, handler.logger)
	if err != nil {
		return err
	}
	if err := persistence.CloseDB(db); err != nil {
		handler.logger.Warn(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
	return nil
}

// GenerateDemoCmd creates a demo data set
func (handler *CommandHandler) GenerateDemoCmd(cmd *cobra.Command, _ []string) error {
	options := demo.DefaultGenerateOptions()
	var err error
	if options.Owners, err = cmd.Flags().GetInt("owners"); err != nil {
		return fmt.Errorf("invalid owners flag: %w", err)
	}
	if options.PropertiesPerOwner, err = cmd.Flags().GetInt("properties-per-owner"); err != nil {
		return fmt.Errorf("invalid properties-per-owner flag: %w", err)
	}
	if options.ReservationsPerProperty, err = cmd.Flags().GetInt("reservations-per-property"); err != nil {
		return fmt.Errorf("invalid reservations-per-property flag: %w", err)
	}

	return handler.withContainer(cmd.Context(), func(c *bootstrap.Container) error {
		summary, err := c.Demo.Generate(cmd.Context(), options)
		if err != nil {
			return err
		}
		printSummary(cmd, "created", summary)
		return nil
	})
}

// ResetDemoCmd deletes every demo record
func (handler *CommandHandler) ResetDemoCmd(cmd *cobra.Command, _ []string) error {
	return handler.withContainer(cmd.Context(), func(c *bootstrap.Container) error {
		summary, err := c.Demo.Reset(cmd.Context())
		if err != nil {
			return err
		}
		printSummary(cmd, "deleted", summary)
		return nil
	})
}

func printSummary(cmd *cobra.Command, verb string, s *demo.Summary) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d owners, %d cleaning teams, %d properties, %d reservations, %d cleaning schedules\n",
		verb, s.Owners, s.CleaningTeams, s.Properties, s.Reservations, s.Schedules)
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  handler.MigrateCmd,
	})
}

// InitDemoCommands registers the demo command group
func InitDemoCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Manage demo data",
	}

	defaults := demo.DefaultGenerateOptions()
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate demo owners, teams, properties and reservations",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateDemoCmd,
	}
	generateCmd.Flags().Int("owners", defaults.Owners, "Number of owners (1-20)")
	generateCmd.Flags().Int("properties-per-owner", defaults.PropertiesPerOwner, "Properties per owner (1-10)")
	generateCmd.Flags().Int("reservations-per-property", defaults.ReservationsPerProperty, "Reservations per property (0-30)")
	demoCmd.AddCommand(generateCmd)

	demoCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete every demo record",
		Args:  cobra.NoArgs,
		RunE:  handler.ResetDemoCmd,
	})

	rootCmd.AddCommand(demoCmd)
}
