package cli

import (
	"github.com/spf13/cobra"

	"github.com/calumh/ghostsnake/internal/model"
)

func newRegisterCmd() *cobra.Command {
	var user, pass, adminUser, adminPass string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user account",
		Long: `Register a new user account.

The very first account becomes the admin and needs no credentials to create.
After that, registering requires --admin-user/--admin-pass of an admin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var actor *model.User
			if adminUser != "" {
				actor, err = app.Credentials.Verify(ctx, adminUser, adminPass)
				if err != nil {
					return err
				}
			}

			created, err := app.Credentials.Register(ctx, actor, user, pass)
			if err != nil {
				return err
			}

			out := NewOutput(flagOutput)
			out.Print(UserResult{
				Username:  created.Username,
				IsAdmin:   created.IsAdmin,
				CreatedAt: created.CreatedAt,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&adminUser, "admin-user", "", "Admin username (required after the first account)")
	cmd.Flags().StringVar(&adminPass, "admin-pass", "", "Admin password")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}
