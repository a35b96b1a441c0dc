package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/persistent/hamt"
	"github.com/npillmayer/fset/persistent/hashtree"
	"github.com/npillmayer/fset/persistent/treap"
	"github.com/spf13/cobra"
)

func defineBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bench",
		Short:        "Fill every set variant and report shape statistics",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runBench,
	}
	cmd.Flags().IntP("n", "n", 10000, "number of elements to insert")
	cmd.Flags().Int64("seed", 1, "seed for the element generator")
	cmd.Flags().Int("choices", 2, "candidate hashes for the choice variants (2, 4, 8 or 14)")
	cmd.Flags().Bool("strings", false, "use string elements (murmur3 codes) instead of integers")
	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetInt("n")
	seed, _ := cmd.Flags().GetInt64("seed")
	choices, _ := cmd.Flags().GetInt("choices")
	asStrings, _ := cmd.Flags().GetBool("strings")

	if asStrings {
		return benchAll(stringElements(n, seed), choices)
	}
	return benchAll(intElements(n, seed), choices)
}

func intElements(n int, seed int64) []fset.Int {
	rnd := rand.New(rand.NewSource(seed))
	elems := make([]fset.Int, n)
	for i := range elems {
		elems[i] = fset.Int(rnd.Int31())
	}
	return elems
}

func stringElements(n int, seed int64) []fset.String {
	rnd := rand.New(rand.NewSource(seed))
	elems := make([]fset.String, n)
	for i := range elems {
		elems[i] = fset.String("elem-" + strconv.FormatInt(rnd.Int63(), 36))
	}
	return elems
}

// variant bundles one set implementation behind closures, so the benchmark
// loop stays oblivious of the concrete types.
type variant[T fset.Hashable[T]] struct {
	name   string
	insert func(T)
	lookup func(T) bool
	remove func(T)
	stats  func() fset.Stats
}

func variants[T fset.Hashable[T]](choices int) []variant[T] {
	tree := hashtree.Immutable[T]()
	ctree := hashtree.Choice[T](hashtree.Choices(choices))
	tr := treap.Immutable[T]()
	trie := hamt.Immutable[T]()
	ctrie := hamt.Choice[T](hamt.Choices(choices))
	return []variant[T]{
		{"hashtree", func(x T) { tree = tree.With(x) }, func(x T) bool { return tree.Contains(x) },
			func(x T) { tree = tree.Without(x) }, func() fset.Stats { return tree.Stats() }},
		{"hashtree/choice", func(x T) { ctree = ctree.With(x) }, func(x T) bool { return ctree.Contains(x) },
			func(x T) { ctree = ctree.Without(x) }, func() fset.Stats { return ctree.Stats() }},
		{"treap", func(x T) { tr = tr.With(x) }, func(x T) bool { return tr.Contains(x) },
			func(x T) { tr = tr.Without(x) }, func() fset.Stats { return tr.Stats() }},
		{"hamt", func(x T) { trie = trie.With(x) }, func(x T) bool { return trie.Contains(x) },
			func(x T) { trie = trie.Without(x) }, func() fset.Stats { return trie.Stats() }},
		{"hamt/choice", func(x T) { ctrie = ctrie.With(x) }, func(x T) bool { return ctrie.Contains(x) },
			func(x T) { ctrie = ctrie.Without(x) }, func() fset.Stats { return ctrie.Stats() }},
	}
}

func benchAll[T fset.Hashable[T]](elems []T, choices int) error {
	for _, v := range variants[T](choices) {
		start := time.Now()
		for _, x := range elems {
			v.insert(x)
		}
		filled := time.Since(start)

		start = time.Now()
		misses := 0
		for _, x := range elems {
			if !v.lookup(x) {
				misses++
			}
		}
		probed := time.Since(start)
		if misses > 0 {
			return fmt.Errorf("%s: %d inserted elements not found", v.name, misses)
		}

		st := v.stats()
		start = time.Now()
		for _, x := range elems[:len(elems)/2] {
			v.remove(x)
		}
		drained := time.Since(start)

		fmt.Printf("%-16s insert %-10v lookup %-10v remove %-10v\n", v.name, filled, probed, drained)
		fmt.Printf("%-16s %s\n", "", st)
	}
	return nil
}
