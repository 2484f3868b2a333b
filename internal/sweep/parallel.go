package sweep

import (
	"runtime"
	"sync"
)

// ParallelFor splits [0, n) into contiguous chunks of ChunkSize(n, workers,
// minChunk) entries and runs fn on each concurrently. workers <= 0 means
// runtime.NumCPU().
func ParallelFor(n, workers, minChunk int, fn func(start, end int)) {
	size := ChunkSize(n, workers, minChunk)
	if size >= n {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ChunkSize is the length of the chunks ParallelFor hands out. A chunk
// starting at start is chunk number start/ChunkSize(...).
func ChunkSize(n, workers, minChunk int) int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || workers <= 1 {
		return max(n, 1)
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	return (n + workers - 1) / workers
}
