package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/advent/internal/domain"
)

func newDayCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "day [n]",
		Short: "Solve one day of the calendar, or every day with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.service()
			var days []domain.Day
			switch {
			case all:
				var err error
				if days, err = u.Available(cmd.Context()); err != nil {
					return err
				}
			case len(args) == 1:
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid day %q", args[0])
				}
				days = []domain.Day{domain.Day(n)}
			default:
				return fmt.Errorf("need a day or --all (solvers: %v)", u.Days())
			}
			out := cmd.OutOrStdout()
			for _, d := range days {
				ans, st, err := u.SolveDay(cmd.Context(), d)
				if err != nil {
					return fmt.Errorf("day %02d: %w", int(d), err)
				}
				a.logger.Debug("solved", zap.Int("day", int(d)), zap.Int("nodes", st.Nodes), zap.Duration("dur", st.Duration))
				fmt.Fprintf(out, "result day %02d part 1: %d\n", int(d), ans.Part1)
				if ans.Part2 != nil {
					fmt.Fprintf(out, "result day %02d part 2: %d\n", int(d), *ans.Part2)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "solve every day that has an input")
	return cmd
}
