package graphseg

import "sync"

// BuildGraphParallel constructs the same edge list as BuildGraph using
// multiple goroutines. Rows are split into contiguous ranges, one per
// worker; each worker writes into a disjoint slice of the preallocated edge
// list, so no synchronization is needed and the result is bitwise identical
// to the sequential builder. workers <= 1 falls back to BuildGraph.
//
// Only graph construction may run in parallel: edge weights have no
// cross-pixel dependency. The merge passes that follow are strictly
// sequential to keep the output deterministic.
func BuildGraphParallel(img *Image, metric Distance, conn Connectivity, workers int) ([]Edge, error) {
	if err := checkGraphInput(img, conn); err != nil {
		return nil, err
	}
	if workers <= 1 || img.Height == 1 {
		return BuildGraph(img, metric, conn)
	}

	height := img.Height
	edges := make([]Edge, totalEdges(img.Width, height, conn))

	// Per-row offsets into the shared edge slice, so each worker knows
	// exactly where its rows' edges belong.
	offsets := make([]int, height)
	offset := 0
	for y := 0; y < height; y++ {
		offsets[y] = offset
		offset += rowEdges(img.Width, height, conn, y)
	}

	var wg sync.WaitGroup
	rowsPerWorker := (height + workers - 1) / workers

	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > height {
			endRow = height
		}
		if startRow >= height {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for y := start; y < end; y++ {
				buildRowEdges(img, metric, conn, y, edges[offsets[y]:])
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return edges, nil
}
