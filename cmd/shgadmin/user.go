package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shgportal/internal/domain"
	"shgportal/internal/repository/postgres"
	"shgportal/internal/service"
)

var newUser service.CreateUserInput

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a portal user",
	Long: `Create a portal user directly in the database. Use it to bootstrap the
first NIC account; later accounts can be created through the API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if newUser.Email == "" || newUser.Password == "" {
			return fmt.Errorf("--email and --password are required")
		}
		if len(newUser.Password) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}
		if newUser.FullName == "" {
			newUser.FullName = newUser.Email
		}

		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		user, err := service.NewUserService(postgres.NewUserRepo(db), nil).Create(cmd.Context(), newUser)
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		zl.Info("user created",
			zap.String("id", user.ID.String()),
			zap.String("email", user.Email),
			zap.String("role", string(user.Role)),
		)
		return nil
	},
}

func init() {
	f := createUserCmd.Flags()
	f.StringVar(&newUser.Email, "email", "", "Login email")
	f.StringVar(&newUser.Password, "password", "", "Initial password (min 8 characters)")
	f.StringVar(&newUser.FullName, "name", "", "Full name")
	f.StringVar((*string)(&newUser.Role), "role", string(domain.RoleNIC), "Role: nic, dmmu, bmmu, clf, vo or shg")
	f.StringVar(&newUser.District, "district", "", "District (dmmu, bmmu)")
	f.StringVar(&newUser.Block, "block", "", "Block (bmmu)")
}
