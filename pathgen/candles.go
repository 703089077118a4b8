// SPDX-License-Identifier: MIT
// Package: rmmcurve/pathgen
//
// candles.go — OHLC aggregation of a price path into fixed-size buckets.
//
// Bucket k covers path[k·bucket : min((k+1)·bucket, len(path))]; the last
// bucket may be shorter. Invariant per bucket:
//
//	low ≤ min(open, close) ≤ max(open, close) ≤ high.

package pathgen

const methodCandles = "Candles"

// Candles splits path into consecutive buckets of bucket points and returns
// the open, high, low and close of each. An empty path yields empty slices.
// Complexity: O(len(path)).
func Candles(path []float64, bucket int) (open, high, low, close []float64, err error) {
	if bucket < 1 {
		return nil, nil, nil, nil, pathErrorf(methodCandles, ErrBadSize, "bucket=%d", bucket)
	}

	n := (len(path) + bucket - 1) / bucket
	open = make([]float64, n)
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)

	var (
		k, i, from, to int
		v              float64
	)
	for k = 0; k < n; k++ {
		from = k * bucket
		to = from + bucket
		if to > len(path) {
			to = len(path)
		}

		open[k] = path[from]
		high[k] = path[from]
		low[k] = path[from]
		for i = from + 1; i < to; i++ {
			v = path[i]
			if v > high[k] {
				high[k] = v
			}
			if v < low[k] {
				low[k] = v
			}
		}
		close[k] = path[to-1]
	}

	return open, high, low, close, nil
}
