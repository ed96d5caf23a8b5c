package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/paintshop/solver"
)

var (
	verbose bool
	count   bool
)

var rootCmd = &cobra.Command{
	Use:   "paintshop [flags] file.ps",
	Short: "Find the cheapest paint batch satisfying every customer",
	Long: `Paintshop reads a paint shop problem from a file and prints the cheapest
production plan satisfying every customer, one letter per color (G for
glossy, M for matte), or "No solution exists" when the customers' wishes
are incompatible.

The input file starts with the number of colors on its own line; every
following line lists one customer's acceptable "<color> <letter>" pairs.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pb, err := parse(args[0])
		if err != nil {
			return err
		}
		if verbose {
			log.WithFields(log.Fields{
				"colors":    pb.NbColors,
				"customers": len(pb.Customers),
			}).Infof("solving %s", args[0])
		}
		s := solver.New(pb)
		s.Verbose = verbose
		if count {
			fmt.Println(s.Enumerate(nil))
			return nil
		}
		s.Solve()
		s.OutputModel()
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	rootCmd.Flags().BoolVar(&count, "count", false, "rather than solving the problem, counts the number of plans it accepts")
}

func parse(path string) (*solver.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	pb, err := solver.ParsePS(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse problem in %q", path)
	}
	return pb, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
