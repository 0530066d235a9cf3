package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/internal/config"
	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

func inverseCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse A [M]",
		Short: "Modular inverse of A modulo M (default: the curve's field modulus)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := config.ParseInt(args[0])
			if err != nil {
				return err
			}
			m := e.curve.Params().P()
			if len(args) == 2 {
				if m, err = config.ParseInt(args[1]); err != nil {
					return err
				}
			}
			inv, err := field.Inverse(a, m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), inv)
			return nil
		},
	}
}

func addCmd(e *env) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "add P Q",
		Short: "Sum of two points",
		Long: `Sum of two points given as x,y, g, inf or (secp256k1 only) SEC1 hex.
With --strict the raw chord formula is used and equal x-coordinates are an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, err := parsePoint(e.curve, args[0])
			if err != nil {
				return err
			}
			p2, err := parsePoint(e.curve, args[1])
			if err != nil {
				return err
			}

			var sum curves.Point
			if strict {
				if sum, err = curves.PointAdd(e.curve.Params().P(), p1, p2); err != nil {
					return err
				}
			} else {
				sum = e.curve.Add(p1, p2)
			}
			e.logger.Debug("add", zap.Stringer("p", p1), zap.Stringer("q", p2), zap.Stringer("sum", sum))
			printPoint(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on degenerate input instead of applying the full group law")
	return cmd
}

func doubleCmd(e *env) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "double P",
		Short: "Double of a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := parsePoint(e.curve, args[0])
			if err != nil {
				return err
			}

			var dbl curves.Point
			if strict {
				params := e.curve.Params()
				if dbl, err = curves.PointDouble(params.P(), params.A(), pt); err != nil {
					return err
				}
			} else {
				dbl = e.curve.Double(pt)
			}
			e.logger.Debug("double", zap.Stringer("p", pt), zap.Stringer("result", dbl))
			printPoint(cmd.OutOrStdout(), dbl)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on a zero y-coordinate instead of returning infinity")
	return cmd
}

func mulCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "mul K [P]",
		Short: "Scalar multiple K·P (default P: the generator)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := config.ParseInt(args[0])
			if err != nil {
				return err
			}
			pt := e.curve.Generator()
			if len(args) == 2 {
				if pt, err = parsePoint(e.curve, args[1]); err != nil {
					return err
				}
			}
			printPoint(cmd.OutOrStdout(), e.curve.ScalarMult(pt, k))
			return nil
		},
	}
}
