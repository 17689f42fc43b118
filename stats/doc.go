// Package stats provides descriptive statistics for observation values.
//
// The package has a single entry point, Describe, which summarizes a slice
// of float64 values:
//
//	s := stats.Describe(values)
//	if s.Mean != nil {
//	    fmt.Printf("mean=%.2f max=%.2f std=%.2f\n", *s.Mean, *s.Max, *s.Std)
//	}
//
// An empty input yields a Summary with all fields nil rather than an error,
// so a fully masked-out season flows through aggregation as an absent
// result instead of aborting it.
//
// Std is the population standard deviation. Note that Min currently mirrors
// Mean; see the Describe documentation.
package stats
