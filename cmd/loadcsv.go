package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"yamdb/internal/data/repository"
	"yamdb/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	csvModel string
	csvFiles []string
)

var loadCSVCmd = &cobra.Command{
	Use:   "load-csv",
	Short: "Import legacy CSV data",
	Long: `Loads CSV exports into the database. Legacy integer ids are mapped to stable UUIDs,
so files may be loaded in separate runs and rows already present are skipped.

Load parents before children: users, category, genre, titles, genre_title, review, comments.`,
	RunE: runLoadCSV,
}

func init() {
	loadCSVCmd.Flags().StringVar(&csvModel, "model", "", "model the files belong to")
	loadCSVCmd.Flags().StringArrayVar(&csvFiles, "file", nil, "CSV file to load (repeatable)")
	_ = loadCSVCmd.MarkFlagRequired("model")
	_ = loadCSVCmd.MarkFlagRequired("file")
}

func runLoadCSV(cmd *cobra.Command, _ []string) error {
	config, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := connect(config, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	importer := usecase.NewImportService(repository.NewRepository(db, logger).Import, logger)

	for _, path := range csvFiles {
		n, err := loadFile(cmd, importer, path)
		if err != nil {
			var vErr *usecase.ValidationError
			if errors.As(err, &vErr) {
				return fmt.Errorf("%s: %w (models: %s)", path, err, strings.Join(importer.Models(), ", "))
			}
			return fmt.Errorf("%s: %w", path, err)
		}

		logger.Info("CSV loaded", zap.String("model", csvModel), zap.String("file", path), zap.Int64("rows", n))
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d new rows\n", path, n)
	}
	return nil
}

func loadFile(cmd *cobra.Command, importer usecase.ImportService, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return importer.Load(cmd.Context(), csvModel, f)
}
