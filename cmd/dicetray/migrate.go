package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/dicetray/internal/store"
)

func newMigrateCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back the history schema",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = a.cfg.MigrationsDir
			}
			migrator, err := store.NewMigrator(a.cfg.DSN, dir)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			switch args[0] {
			case "up":
				if err := migrator.Up(ctx); err != nil && !errors.Is(err, store.ErrNoChange) {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			case "down":
				if err := migrator.Down(ctx); err != nil && !errors.Is(err, store.ErrNoChange) {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations rolled back")
			default:
				return fmt.Errorf("unknown migrate action %q; use up|down", args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (default ./db/migrations)")
	return cmd
}
