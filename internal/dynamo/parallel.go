package dynamo

import "sync"

// ParallelFor splits [0, n) into at most workers contiguous chunks and runs
// fn on each in its own goroutine. chunk is the zero-based chunk number,
// always < workers. Ranges shorter than minChunk run inline as chunk 0.
func ParallelFor(n, workers, minChunk int, fn func(chunk, start, end int)) {
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || workers <= 1 {
		fn(0, 0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= n {
			break
		}
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(c, s, e int) {
			defer wg.Done()
			fn(c, s, e)
		}(w, start, end)
	}

	wg.Wait()
}
