// Package analytics holds the pure computations behind the comparison
// dashboard: narrowing the catalog by operating system and score thresholds,
// pivoting free-text feature lists into a presence matrix, bucketing reviews
// into a platform × day heat-map, estimating subscription costs, and shaping
// chart series and CSV exports.
//
// Nothing in this package touches the catalog store or logs. Every function
// takes the data it needs as arguments and returns fresh values, so results
// are safe to share across goroutines and recomputed on every request.
package analytics
