package parallel

import "runtime"

// minBlockSize is the smallest index range worth handing to a worker.
// Below this, goroutine scheduling costs more than the loop body saves.
const minBlockSize = 512

// For runs fn(i) for every i in [0, n) across all available CPUs and blocks
// until the whole range is done. Iterations must be independent. A panic in
// any iteration resurfaces after the join barrier.
func For(n int, fn func(i int)) {
	ForBlocked(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}

// ForBlocked splits [0, n) into contiguous blocks and hands them to a
// worker pool sized to the CPU count. The call returns after the join
// barrier, so writes made inside fn are visible to the caller.
func ForBlocked(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if n <= minBlockSize || workers == 1 {
		fn(0, n)
		return
	}

	blockSize := blockSizeFor(n)
	blocks := (n + blockSize - 1) / blockSize

	NewWorkerPool(workers).Run(blocks, func(block int) {
		lo := block * blockSize
		hi := lo + blockSize
		if hi > n {
			hi = n
		}
		fn(lo, hi)
	})
}

// blockSizeFor picks the block size ForBlocked will use for a range of n
// indices, targeting four blocks per worker with a minBlockSize floor.
func blockSizeFor(n int) int {
	blocks := runtime.GOMAXPROCS(0) * 4
	blockSize := (n + blocks - 1) / blocks
	if blockSize < minBlockSize {
		blockSize = minBlockSize
	}
	return blockSize
}

// ReduceSum computes the sum of fn(i) over [0, n) in parallel.
// Per-block partials are combined in block order, so the result is
// deterministic for integer summands.
func ReduceSum(n int, fn func(i int) uint64) uint64 {
	if n <= 0 {
		return 0
	}
	blockSize := blockSizeFor(n)
	blocks := (n + blockSize - 1) / blockSize
	partials := make([]uint64, blocks)
	ForBlocked(n, func(lo, hi int) {
		var sum uint64
		for i := lo; i < hi; i++ {
			sum += fn(i)
		}
		partials[lo/blockSize] = sum
	})
	var total uint64
	for _, p := range partials {
		total += p
	}
	return total
}
