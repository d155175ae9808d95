package life

import (
	"runtime"
	"sync"
)

// minRowsPerWorker keeps small grids on a single goroutine.
const minRowsPerWorker = 64

// parallelRows splits [0, n) into contiguous chunks, runs fn on each and
// sums the results.
func parallelRows(n, minChunk int, fn func(start, end int) int) int {
	workers := runtime.GOMAXPROCS(0)
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers <= 1 {
		return fn(0, n)
	}

	chunkSize := (n + workers - 1) / workers
	counts := make([]int, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := min(w*chunkSize, n)
		end := min(start+chunkSize, n)
		go func(w, s, e int) {
			defer wg.Done()
			counts[w] = fn(s, e)
		}(w, start, end)
	}
	wg.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
