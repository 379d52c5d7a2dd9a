package engine

import (
	"context"
	"sync"

	"seedscan/internal/oracle"
)

// partition is the contiguous, disjoint sub-range of seeds one worker owns.
type partition struct {
	req   Request
	start int64
	end   int64
}

// runBatched scans a partition against the shared result, stopping early
// once the result is full or ctx is done. local is this worker's own scan
// counter, folded into result.Scanned exactly once on exit.
func runBatched(ctx context.Context, o oracle.Oracle, p partition, result *Result) {
	gen := o.NewGenerator(p.req.Version)

	var local int64
	for seed := p.start; seed <= p.end; seed++ {
		if local&(CheckInterval-1) == 0 {
			if result.isFull(p.req.MaxResults) || ctx.Err() != nil {
				break
			}
		}
		local++

		if matches(o, p.req, seed, gen) {
			if result.tryAppend(seed, p.req.MaxResults) {
				break
			}
		}
	}

	result.addScanned(local)
}

// onSeedFunc is invoked under the streaming coordinator's mutex; it must be
// non-blocking and must not call back into the engine.
type onSeedFunc func(seed int64)

// streamState is the shared state a streaming search's workers coordinate
// through.
type streamState struct {
	found   int
	scanned int64
	mu      sync.Mutex
	onSeed  onSeedFunc
}

// runStreaming mirrors runBatched but invokes onSeed under the shared mutex
// in place of appending to a Result.
func runStreaming(ctx context.Context, o oracle.Oracle, p partition, st *streamState) {
	gen := o.NewGenerator(p.req.Version)

	var local int64
	for seed := p.start; seed <= p.end; seed++ {
		if local&(CheckInterval-1) == 0 {
			st.mu.Lock()
			done := st.found >= p.req.MaxResults
			st.mu.Unlock()
			if done || ctx.Err() != nil {
				break
			}
		}
		local++

		if matches(o, p.req, seed, gen) {
			st.mu.Lock()
			done := false
			if st.found < p.req.MaxResults {
				st.onSeed(seed)
				st.found++
			}
			done = st.found >= p.req.MaxResults
			st.mu.Unlock()
			if done {
				break
			}
		}
	}

	st.mu.Lock()
	st.scanned += local
	st.mu.Unlock()
}
