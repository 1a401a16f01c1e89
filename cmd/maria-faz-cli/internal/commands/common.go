// Package commands implements the maria-faz-cli sub-commands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/bootstrap"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/rest-app.yaml"

var configPath string

// AddConfigFlag registers the --config persistent flag on the root command
func AddConfigFlag(rootCmd *cobra.Command) {
	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = defaultConfigPath
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultPath, "Path to the YAML configuration file")
}

// CommandHandler loads configuration and builds the services a command needs
type CommandHandler struct {
	logger logger.Logger
}

// NewCommandHandler initializes a console logger for the CLI
func NewCommandHandler() (*CommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &CommandHandler{logger: loggerInstance}, nil
}

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func (handler *CommandHandler) loadConfig() (*config.RestConfig, error) {
	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
	}
	return cfg, nil
}

// withContainer builds every service, runs fn and releases the resources
func (handler *CommandHandler) withContainer(ctx context.Context, fn func(c *bootstrap.Container) error) error {
	cfg, err := handler.loadConfig()
	if err != nil {
		return err
	}

	container, err := bootstrap.New(ctx, cfg, handler.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			handler.logger.Warn("failed to release resources: ", err)
		}
	}()

	return fn(container)
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}
