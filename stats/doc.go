// Package stats computes descriptive statistics of a finite sample.
//
//	s, err := stats.Describe([]float64{1, 2, 3, 4})
//	// s.Median == 2.5, s.StdDev is the sample (n-1) deviation
//
// Free functions (Mean, Median, StdDev, Min, Max) compute a single value;
// Describe computes them all at once and DescribeColumns does it per column
// of a matrix.Matrix. Empty samples fail with ErrEmptyInput, NaN/Inf with
// ErrNonFinite, and a standard deviation over fewer than two values with
// ErrInsufficientData.
package stats
