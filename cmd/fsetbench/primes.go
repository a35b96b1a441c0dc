package main

import (
	"fmt"

	"github.com/npillmayer/fset/hashes"
	"github.com/spf13/cobra"
)

func definePrimesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "primes",
		Short:        "Generate candidate multipliers for a hash family",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runPrimes,
	}
	cmd.Flags().IntP("count", "c", hashes.MaxSize, "number of multipliers to generate")
	cmd.Flags().Int64("seed", 311, "seed for the candidate search")
	return cmd
}

func runPrimes(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")
	for i, m := range hashes.FindMultipliers(count, seed) {
		fmt.Printf("%2d: %#08x\n", i, uint32(m))
	}
	return nil
}
