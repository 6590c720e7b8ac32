package feather2d

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// task splits data in contiguous chunks, one per worker, and calls fn on every item
// with its index. The first error, or the cancellation of ctx, stops the remaining items.
func task[T any](ctx context.Context, workersCount int, data []T, fn func(i int, item T) error) error {
	dataSize := len(data)
	if dataSize == 0 {
		return nil
	}
	workersCount = max(1, min(workersCount, dataSize))
	chunkSize := (dataSize + workersCount - 1) / workersCount

	g, ctx := errgroup.WithContext(ctx)
	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, dataSize)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(i, data[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
