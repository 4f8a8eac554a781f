package parallel

import (
	"strings"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsEveryBlockOnce(t *testing.T) {
	pool := NewWorkerPool(4)

	const blocks = 1000
	seen := make([]atomic.Uint32, blocks)
	pool.Run(blocks, func(block int) {
		seen[block].Add(1)
	})

	for b := 0; b < blocks; b++ {
		if got := seen[b].Load(); got != 1 {
			t.Fatalf("block %d ran %d times, want 1", b, got)
		}
	}
}

func TestWorkerPool_MoreWorkersThanBlocks(t *testing.T) {
	pool := NewWorkerPool(16)

	var count atomic.Uint32
	pool.Run(3, func(block int) { count.Add(1) })

	if count.Load() != 3 {
		t.Errorf("ran %d blocks, want 3", count.Load())
	}
}

func TestWorkerPool_EmptyPhase(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Run(0, func(block int) {
		t.Error("block fn invoked for empty phase")
	})
}

func TestWorkerPool_ClampsWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0)
	if pool.workers != 1 {
		t.Errorf("workers = %d, want 1", pool.workers)
	}

	var count atomic.Uint32
	pool.Run(10, func(block int) { count.Add(1) })
	if count.Load() != 10 {
		t.Errorf("ran %d blocks, want 10", count.Load())
	}
}

func TestWorkerPool_PropagatesFirstPanic(t *testing.T) {
	pool := NewWorkerPool(2)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("panic in a block was swallowed")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "boom") {
			t.Errorf("recovered %v, want message containing the block's panic", r)
		}
	}()
	pool.Run(8, func(block int) {
		if block == 3 {
			panic("boom")
		}
	})
}

func TestWorkerPool_FinishesRemainingBlocksAfterPanic(t *testing.T) {
	pool := NewWorkerPool(2)

	var completed atomic.Uint32
	func() {
		defer func() { recover() }()
		pool.Run(100, func(block int) {
			if block == 0 {
				panic("boom")
			}
			completed.Add(1)
		})
	}()

	if completed.Load() != 99 {
		t.Errorf("completed %d blocks, want 99 (panic must not cancel the phase)", completed.Load())
	}
}
