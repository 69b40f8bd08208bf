package cli

import (
	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var top int
	var user string

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the ranked leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := NewOutput(flagOutput)

			if user != "" {
				entries, err := app.Leaderboard.History(ctx, user)
				if err != nil {
					return err
				}
				best, err := app.Leaderboard.Best(ctx, user)
				if err != nil {
					return err
				}
				out.Print(HistoryResult{Username: user, Best: best, Entries: entries})
				return nil
			}

			ranked, err := app.Leaderboard.Top(ctx, top)
			if err != nil {
				return err
			}
			out.Print(ranked)
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "Number of entries to show (0 for all)")
	cmd.Flags().StringVar(&user, "user", "", "Show one user's history instead")

	return cmd
}
