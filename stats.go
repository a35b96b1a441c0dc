package fset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Stats describes the shape of a set structure: node counts, leaf depths and
// per-node occupancies. It is diagnostic only — no correctness property
// depends on it — but test failures are hard to diagnose without it.
type Stats struct {
	Variant     string // which structure produced this
	Nodes       int    // interior + leaf nodes
	Elements    int    // distinct elements stored
	Depths      []float64
	Occupancies []float64
}

// Observe records one leaf placement: its depth and the number of elements
// co-resident at that position.
func (st *Stats) Observe(depth, occupancy int) {
	st.Nodes++
	st.Elements += occupancy
	st.Depths = append(st.Depths, float64(depth))
	st.Occupancies = append(st.Occupancies, float64(occupancy))
}

// MaxDepth is the deepest observed leaf; 0 for an empty structure.
func (st Stats) MaxDepth() int {
	m := 0.0
	for _, d := range st.Depths {
		if d > m {
			m = d
		}
	}
	return int(m)
}

// MeanDepth is the average leaf depth.
func (st Stats) MeanDepth() float64 {
	if len(st.Depths) == 0 {
		return 0
	}
	return stat.Mean(st.Depths, nil)
}

// DepthStdDev is the standard deviation of leaf depths.
func (st Stats) DepthStdDev() float64 {
	if len(st.Depths) < 2 {
		return 0
	}
	return stat.StdDev(st.Depths, nil)
}

// MaxOccupancy is the largest collision bucket observed.
func (st Stats) MaxOccupancy() int {
	m := 0.0
	for _, o := range st.Occupancies {
		if o > m {
			m = o
		}
	}
	return int(m)
}

// MeanOccupancy is the average number of elements per occupied position.
func (st Stats) MeanOccupancy() float64 {
	if len(st.Occupancies) == 0 {
		return 0
	}
	return stat.Mean(st.Occupancies, nil)
}

func (st Stats) String() string {
	return fmt.Sprintf("%s: %d elements in %d nodes, depth max=%d mean=%.2f σ=%.2f, occupancy max=%d mean=%.2f",
		st.Variant, st.Elements, st.Nodes, st.MaxDepth(), st.MeanDepth(), st.DepthStdDev(),
		st.MaxOccupancy(), st.MeanOccupancy())
}
