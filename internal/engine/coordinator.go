package engine

import (
	"context"
	"sync"

	"seedscan/internal/oracle"
)

// Engine runs searches against a fixed oracle implementation. The zero
// value is not usable; construct with New.
type Engine struct {
	oracle    oracle.Oracle
	workerCap int
}

// New builds an Engine backed by the given oracle adapter, capped at
// MaxWorkers concurrent partitions per search. Use WithWorkerCap to lower
// that cap at runtime (e.g. from configuration).
func New(o oracle.Oracle) *Engine {
	return &Engine{oracle: o, workerCap: MaxWorkers}
}

// WithWorkerCap overrides the engine's concurrent-worker cap. Values
// outside (0, MaxWorkers] are ignored.
func (e *Engine) WithWorkerCap(n int) *Engine {
	if n > 0 && n <= MaxWorkers {
		e.workerCap = n
	}
	return e
}

func partitions(req Request, workerCap int) []partition {
	total := req.Span()
	if total <= 0 {
		return nil
	}

	n := int64(workerCap)
	if total < n {
		n = total
	}
	chunk := total / n

	parts := make([]partition, 0, n)
	for i := int64(0); i < n; i++ {
		start := req.SeedStart + i*chunk
		end := start + chunk - 1
		if i == n-1 {
			end = req.SeedEnd
		}
		parts = append(parts, partition{req: req, start: start, end: end})
	}
	return parts
}

// Search runs a batched scan over req, returning every match up to
// req.MaxResults and the total number of seeds scanned. When req.MaxResults
// is at least the number of matches in the range, the set of reported seeds
// is every match. When the range holds more matches than that, which of them
// fill the result depends on worker scheduling, as does the scanned count.
// The order of seeds within the result always depends on worker scheduling.
func (e *Engine) Search(ctx context.Context, req Request) *Result {
	result := newResult(req.MaxResults)

	parts := partitions(req, e.workerCap)
	if len(parts) == 0 {
		return result
	}

	var wg sync.WaitGroup
	for _, p := range parts {
		wg.Add(1)
		go func(p partition) {
			defer wg.Done()
			runBatched(ctx, e.oracle, p, result)
		}(p)
	}
	wg.Wait()

	return result
}

// SearchStream runs a streaming scan over req, invoking onSeed for each
// match (under the engine's internal mutex, at most req.MaxResults times)
// and returning the total number of seeds scanned once every worker has
// joined. onSeed must be non-blocking and must not call back into the
// engine.
func (e *Engine) SearchStream(ctx context.Context, req Request, onSeed func(seed int64)) int64 {
	parts := partitions(req, e.workerCap)
	if len(parts) == 0 {
		return 0
	}

	st := &streamState{onSeed: onSeed}

	var wg sync.WaitGroup
	for _, p := range parts {
		wg.Add(1)
		go func(p partition) {
			defer wg.Done()
			runStreaming(ctx, e.oracle, p, st)
		}(p)
	}
	wg.Wait()

	return st.scanned
}
