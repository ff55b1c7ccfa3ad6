package cmd

import (
	"fmt"
	"os"

	"yamdb/pkg/database"
	"yamdb/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yamdb",
	Short: "yamdb - reviews of films, books and music",
	Long: `yamdb serves the YaMDb REST API and carries the maintenance commands
that go with it: database migrations, CSV imports and admin bootstrap.

Settings come from the environment; a .env file is read first when present.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to the .env file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(loadCSVCmd)
	rootCmd.AddCommand(createAdminCmd)
}

// loadRuntime reads the config and builds the logger every command starts from.
func loadRuntime() (*utils.Config, *zap.Logger, error) {
	config, err := utils.LoadConfigFrom(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v. Using production logger.\n", err)
		logger, _ = zap.NewProduction()
	}

	return config, logger, nil
}

// connect opens the pool for commands that talk to the database.
func connect(config *utils.Config, logger *zap.Logger) (database.PgxIface, error) {
	db, err := database.InitDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("Database connected successfully",
		zap.String("host", config.Database.Host),
		zap.String("name", config.Database.Name),
	)
	return db, nil
}
