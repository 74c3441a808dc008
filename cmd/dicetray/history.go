package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/dicetray/internal/text"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	var purge bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently stored rolls",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, repo, err := a.openHistory(cmd.Context())
			if err != nil {
				return err
			}
			if repo == nil {
				return errors.New("history is off; set history: true and a dsn")
			}
			defer db.Close()

			if purge {
				n, err := repo.Purge(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d rolls\n", n)
				return nil
			}
			records, err := repo.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text.Render(text.HistoryMarkdown(records), 0))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of rolls to show")
	cmd.Flags().BoolVar(&purge, "purge", false, "delete all stored rolls")
	return cmd
}
