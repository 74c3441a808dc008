package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/dicetray/internal/equation"
	"github.com/DaanHessen/dicetray/internal/session"
)

func newRollCmd(a *app) *cobra.Command {
	var highest, lowest, quiet bool
	cmd := &cobra.Command{
		Use:   "roll EXPR",
		Short: `Roll an expression such as "1d4 + 5d6"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if highest && lowest {
				return errors.New("--highest and --lowest are mutually exclusive")
			}
			eq, err := equation.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			sess, db, _, err := a.newSession(cmd.Context())
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			for _, term := range eq.Read() {
				for i := 0; i < term.Quantity; i++ {
					if _, err := sess.Apply(cmd.Context(), session.ActionIncrement, term.Die.Sides()); err != nil {
						return err
					}
				}
			}
			action := session.ActionRoll
			switch {
			case highest:
				action = session.ActionTakeHighest
			case lowest:
				action = session.ActionTakeLowest
			}
			d, err := sess.Apply(cmd.Context(), action, 0)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if quiet {
				fmt.Fprintln(out, d.Total)
				return nil
			}
			fmt.Fprintf(out, "%s: %s\n", d.Rolled, d.Result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&highest, "highest", false, "keep the highest face of each die type")
	cmd.Flags().BoolVar(&lowest, "lowest", false, "keep the lowest face of each die type")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the total")
	return cmd
}
