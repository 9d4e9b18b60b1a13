package images

import (
	"runtime"
	"sync"
)

// Parallel executes fn across multiple goroutines, partitioning dataSize
// into contiguous ranges. Small inputs run serially to avoid the goroutine
// overhead.
//
// Arguments:
//   - dataSize: The size of the data to process.
//   - fn: Function invoked per partition with [partStart, partEnd) indices.
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	numGoroutines := runtime.NumCPU()
	if dataSize < numGoroutines*2 {
		fn(0, dataSize)
		return
	}

	partSize := dataSize / numGoroutines

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize
		if i == numGoroutines-1 {
			// Last partition gets any remaining data.
			partEnd = dataSize
		}
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}
	wg.Wait()
}
