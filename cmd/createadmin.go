package cmd

import (
	"fmt"

	"yamdb/internal/data/repository"
	"yamdb/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminEmail    string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a superuser",
	Long: `Creates a user with the admin role and superuser rights. The new admin signs in
through the regular flow: POST /api/v1/auth/signup, then /api/v1/auth/token with the mailed code.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		users := usecase.NewUserService(repository.NewRepository(db, logger).User, logger)
		admin, err := users.CreateAdmin(cmd.Context(), adminUsername, adminEmail)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Admin %s <%s> created\n", admin.Username, admin.Email)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "admin username")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("email")
}
