package parallel

import "golang.org/x/exp/constraints"

// ScanAdd replaces a with its exclusive prefix sum in place and returns the
// total. a[i] becomes a[0]+...+a[i-1]; a[0] becomes 0.
//
// The scan runs in three phases: per-block sums, a sequential scan over block
// sums, then a per-block rewrite. Deterministic for integer element types.
func ScanAdd[T constraints.Integer](a []T) T {
	n := len(a)
	if n == 0 {
		return 0
	}

	blockSize := blockSizeFor(n)
	blocks := (n + blockSize - 1) / blockSize
	blockSums := make([]T, blocks)

	ForBlocked(n, func(lo, hi int) {
		var sum T
		for i := lo; i < hi; i++ {
			sum += a[i]
		}
		blockSums[lo/blockSize] = sum
	})

	var total T
	for b := 0; b < blocks; b++ {
		sum := blockSums[b]
		blockSums[b] = total
		total += sum
	}

	ForBlocked(n, func(lo, hi int) {
		running := blockSums[lo/blockSize]
		for i := lo; i < hi; i++ {
			v := a[i]
			a[i] = running
			running += v
		}
	})

	return total
}
