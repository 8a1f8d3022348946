package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"crimpqc/internal/bootstrap/logging"
	"crimpqc/internal/errs"
	"crimpqc/internal/usecase/auth"
)

// Accounts are seeded out-of-band; there is no registration endpoint.
var addUserCmd = &cobra.Command{
	Use:   "add-user",
	Short: "Create an operator account",
	RunE: withApp(func(cmd *cobra.Command, deps *appDeps) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		name, _ := cmd.Flags().GetString("name")
		employeeID, _ := cmd.Flags().GetString("employee-id")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetInt("role")

		user, err := deps.Auth.CreateUser(ctx, auth.CreateUserInput{
			Name:       name,
			EmployeeID: employeeID,
			Password:   password,
			Role:       role,
		})
		if err != nil {
			return errs.Wrap(err, "create user")
		}

		logging.Info(ctx, "user created", slog.String("employee_id", user.EmployeeID))
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "user created: %s (%s)\n", user.Name, user.EmployeeID); err != nil {
			return errs.Wrap(err, "write add-user output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(addUserCmd)
	addUserCmd.Flags().String("name", "", "Display name")
	addUserCmd.Flags().String("employee-id", "", "Login id")
	addUserCmd.Flags().String("password", "", "Password")
	addUserCmd.Flags().Int("role", 0, "Role")
	_ = addUserCmd.MarkFlagRequired("name")
	_ = addUserCmd.MarkFlagRequired("employee-id")
	_ = addUserCmd.MarkFlagRequired("password")
}
