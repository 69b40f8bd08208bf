package cli

import (
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User account commands",
	}

	cmd.AddCommand(newUserMeCmd())

	return cmd
}

func newUserMeCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "me",
		Short: "Verify credentials and show the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}

			verified, err := app.Credentials.Verify(cmd.Context(), user, pass)
			if err != nil {
				return err
			}

			out := NewOutput(flagOutput)
			out.Print(UserResult{
				Username:  verified.Username,
				IsAdmin:   verified.IsAdmin,
				CreatedAt: verified.CreatedAt,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}
