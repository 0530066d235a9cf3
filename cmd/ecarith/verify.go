package main

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/internal/selfcheck"
)

func verifyCmd(e *env) *cobra.Command {
	var (
		multiples int
		noOracle  bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check addition and doubling against precomputed multiples of G",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := e.cfg.Table(e.curve, multiples)
			if err != nil {
				return err
			}

			opts := []selfcheck.Option{
				selfcheck.WithLogger(e.logger),
				selfcheck.WithWorkers(e.cfg.Workers),
			}
			if !noOracle && e.curve.Params().Name() == curves.NameSecp256k1 {
				opts = append(opts, selfcheck.WithOracle(btcec.S256()))
			}

			report, err := selfcheck.Run(cmd.Context(), e.curve, table, selfcheck.Cases(table.Len()), opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range report.Results {
				status := "ok"
				if !res.Passed() {
					status = "FAIL: " + res.Err.Error()
				}
				fmt.Fprintf(out, "%-16s %s\n", res.Case, status)
			}
			if n := report.Failed(); n > 0 {
				return errors.Errorf("%d of %d checks failed", n, len(report.Results))
			}
			fmt.Fprintf(out, "%d checks passed on %s\n", len(report.Results), report.Curve)
			return nil
		},
	}
	cmd.Flags().IntVar(&multiples, "multiples", 12, "multiples of G to derive when the config has none")
	cmd.Flags().BoolVar(&noOracle, "no-oracle", false, "skip the btcec cross-check on secp256k1")
	return cmd
}
