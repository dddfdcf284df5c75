package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/advent/internal/generator"
	"svw.info/advent/internal/springs"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		records int
		seed    int64
		maxLen  int
		ratio   float64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the pruned counter against brute force on random records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxLen > springs.MaxBruteForceUnknowns {
				return fmt.Errorf("max-len %d exceeds %d", maxLen, springs.MaxBruteForceUnknowns)
			}
			ctx := cmd.Context()
			recs, _, err := generator.NewRecordGenerator(maxLen, ratio).Generate(ctx, seed, records)
			if err != nil {
				return err
			}
			pruned := springs.NewPrunedCounter(a.logger.Named("counter"))
			brute := springs.NewBruteForceCounter()
			for _, r := range recs {
				want, _, err := brute.Count(ctx, r)
				if err != nil {
					return err
				}
				got, _, err := pruned.Count(ctx, r)
				if err != nil {
					return err
				}
				if got != want {
					a.logger.Error("count mismatch", zap.Stringer("record", r), zap.Uint64("pruned", got), zap.Uint64("brute", want))
					return fmt.Errorf("record %s: pruned counter got %d, brute force %d", r, got, want)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "verified %d records\n", len(recs))
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&records, "records", 1000, "records to generate")
	f.Int64Var(&seed, "seed", 1, "generator seed")
	f.IntVar(&maxLen, "max-len", 15, "longest generated row")
	f.Float64Var(&ratio, "unknown-ratio", 0.6, "share of springs hidden as '?'")
	return cmd
}
