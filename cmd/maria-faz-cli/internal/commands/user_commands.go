package commands

import (
	"fmt"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/bootstrap"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"

	"github.com/spf13/cobra"
)

// operatorClaims let the console operator register users once the first admin exists
var operatorClaims = &auth.Claims{UserID: "cli", Role: auth.RoleAdmin}

// CreateUserCmd registers a back office user
func (handler *CommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) error {
	input := &auth.RegisterInput{}
	for flag, target := range map[string]*string{
		"email":    &input.Email,
		"name":     &input.Name,
		"password": &input.Password,
		"role":     &input.Role,
	} {
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			return fmt.Errorf("invalid %s flag: %w", flag, err)
		}
		*target = value
	}

	return handler.withContainer(cmd.Context(), func(c *bootstrap.Container) error {
		user, err := c.Auth.Register(cmd.Context(), operatorClaims, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s user %s (%s)\n", user.Role, user.Email, user.ID)
		return nil
	})
}

// InitUserCommands registers the user command group
func InitUserCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage back office users",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user; the first user is always an admin",
		Args:  cobra.NoArgs,
		RunE:  handler.CreateUserCmd,
	}
	createCmd.Flags().String("email", "", "Login email")
	createCmd.Flags().String("name", "", "Display name")
	createCmd.Flags().String("password", "", "Password, 8 to 72 characters")
	createCmd.Flags().String("role", auth.RoleViewer, "admin, manager or viewer")
	for _, flag := range []string{"email", "name", "password"} {
		_ = createCmd.MarkFlagRequired(flag)
	}
	userCmd.AddCommand(createCmd)

	rootCmd.AddCommand(userCmd)
}
