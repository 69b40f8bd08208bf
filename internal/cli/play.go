package cli

import (
	"github.com/spf13/cobra"

	"github.com/calumh/ghostsnake/internal/ui"
)

func newPlayCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Log in and play",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			verified, err := app.Credentials.Verify(ctx, user, pass)
			if err != nil {
				return err
			}

			if err := ui.Run(app, verified.Username, ui.Config{CellSize: cfg.UI.CellSize}); err != nil {
				return err
			}

			// Window closed; show where the session left the board
			ranked, err := app.Leaderboard.Top(ctx, 10)
			if err != nil {
				return err
			}
			out := NewOutput(flagOutput)
			out.Print(ranked)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}
