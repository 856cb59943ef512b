package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/contfrac/reals/internal/api"
	"github.com/contfrac/reals/internal/expr"
	"github.com/contfrac/reals/pkg/real"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "realcalc",
		Short: "Exact real arithmetic over continued-fraction streams",
	}

	// eval command
	var digits int
	var round bool

	evalCmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an expression to a decimal string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := expr.Parse(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("failed to parse: %w", err)
			}
			fmt.Println(x.Evaluate(digits, round))
			return nil
		},
	}
	evalCmd.Flags().IntVarP(&digits, "digits", "n", 10, "Number of fractional digits")
	evalCmd.Flags().BoolVar(&round, "round", false, "Round the final digit instead of truncating")

	// digits command
	var count int

	digitsCmd := &cobra.Command{
		Use:   "digits [expression]",
		Short: "Stream the decimal expansion (integer part, then digits)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := expr.Parse(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("failed to parse: %w", err)
			}
			d := real.NewDigits(x)
			for i := 0; i < count; i++ {
				v, ok := d.Next()
				if !ok {
					break
				}
				if i == 0 {
					fmt.Printf("%s.", v)
				} else {
					fmt.Print(v)
				}
				if d.Exact() {
					fmt.Print(" (exact)")
					break
				}
			}
			fmt.Println()
			return nil
		},
	}
	digitsCmd.Flags().IntVarP(&count, "count", "c", 50, "Maximum number of values to print")

	// compare command
	var epsilonStr string

	compareCmd := &cobra.Command{
		Use:   "compare [expression] [expression]",
		Short: "Compare two expressions by bracket shrinking",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := expr.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", args[0], err)
			}
			y, err := expr.Parse(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", args[1], err)
			}
			eps, err := parseEpsilon(epsilonStr)
			if err != nil {
				return err
			}
			switch real.Compare(x, y, eps) {
			case real.Smaller:
				fmt.Println("<")
			case real.Greater:
				fmt.Println(">")
			default:
				fmt.Printf("= (within %s)\n", eps)
			}
			return nil
		},
	}
	compareCmd.Flags().StringVar(&epsilonStr, "epsilon", "1/100000", "Comparison cutoff (rational, e.g. 1/1000)")

	// approx command
	var terms int

	approxCmd := &cobra.Command{
		Use:   "approx [expression]",
		Short: "Print a rational enclosure after ingesting a number of terms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := expr.Parse(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("failed to parse: %w", err)
			}
			a := x.Approx()
			a.Improve(terms)
			lo, hi := a.LowerBound(), a.UpperBound()
			if lo == nil || hi == nil {
				return fmt.Errorf("no enclosure after %d terms", terms)
			}
			fmt.Printf("lower: %s\n", lo)
			fmt.Printf("upper: %s\n", hi)
			if eps := a.Epsilon(); eps != nil {
				f, _ := eps.Float64()
				fmt.Printf("width: %.3g\n", f)
			}
			fmt.Printf("float: %v\n", x.ClosestFloat())
			return nil
		},
	}
	approxCmd.Flags().IntVarP(&terms, "terms", "t", 20, "Number of terms to ingest")

	// serve command
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP evaluation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Listening on %s\n", addr)
			return api.SetupRouter().Run(addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	rootCmd.AddCommand(evalCmd, digitsCmd, compareCmd, approxCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseEpsilon parses a rational cutoff like "1/1000" or "0.001".
func parseEpsilon(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok || r.Sign() <= 0 {
		return nil, fmt.Errorf("invalid --epsilon value %q: use a positive rational like 1/1000", s)
	}
	return r, nil
}
