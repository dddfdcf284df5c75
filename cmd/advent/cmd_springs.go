package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/advent/assets"
	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/infrastructure/storage"
	"svw.info/advent/internal/springs"
)

func newSpringsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "springs [file]",
		Short: "Sum the arrangement counts of a file of condition records",
		Long: `Reads one condition record per line and prints "result: <total>".

With no file the day 12 input is used; "-" reads standard input.
A malformed line aborts the run without printing a total.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readRecords(cmd, args)
			if err != nil {
				return err
			}
			total, st, err := a.newAggregator().SumText(cmd.Context(), text)
			if err != nil {
				return err
			}
			a.logger.Debug("springs done", zap.Int("nodes", st.Nodes), zap.Duration("dur", st.Duration))
			fmt.Fprintf(cmd.OutOrStdout(), "result: %d\n", total)
			return nil
		},
	}
}

func (a *app) readRecords(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) == 0:
		return storage.NewFS(a.cfg.InputDir, assets.Inputs()).Load(cmd.Context(), domain.DaySprings)
	case args[0] == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	default:
		b, err := os.ReadFile(args[0])
		return string(b), err
	}
}

func newCountCmd(a *app) *cobra.Command {
	var hints bool
	cmd := &cobra.Command{
		Use:   "count <springs> <groups>",
		Short: "Count the arrangements of a single record",
		Example: `  advent count '?###????????' 3,2,1
  advent count --hints '???.###' 1,1,3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := springs.ParseRecord(strings.Join(args, " "))
			if err != nil {
				return err
			}
			u := a.service()
			n, _, err := u.Count(cmd.Context(), r)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "result: %d\n", n)
			if !hints {
				return nil
			}
			forced, err := u.Hint(cmd.Context(), r)
			if err != nil {
				return err
			}
			for _, f := range forced {
				fmt.Fprintf(out, "forced: %d %c\n", f.Index, f.Spring)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hints, "hints", false, "also list unknown springs forced by the record")
	return cmd
}
