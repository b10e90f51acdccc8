package stegmerge

import (
	"context"
	"errors"
	"image"
	"runtime"
	"sync"
)

const (
	// Images with fewer pixels than this are transformed inline
	parallelThreshold = 1 << 16
	rowsPerChunk      = 32
)

var errCancelled = errors.New("transform cancelled")

type rowChunk struct {
	min, max int
}

func findChunks(ctx context.Context, r image.Rectangle) (<-chan rowChunk, <-chan error, error) {
	out := make(chan rowChunk)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for y := r.Min.Y; y < r.Max.Y; y += rowsPerChunk {
			chunk := rowChunk{y, y + rowsPerChunk}
			if chunk.max > r.Max.Y {
				chunk.max = r.Max.Y
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				errc <- errCancelled
				return
			}
		}
	}()
	return out, errc, nil
}

func rowWorker(ctx context.Context, in <-chan rowChunk, fn func(int)) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for chunk := range in {
			select {
			case <-ctx.Done():
				errc <- errCancelled
				return
			default:
			}
			for y := chunk.min; y < chunk.max; y++ {
				fn(y)
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// transform calls fn once for every row of r. Rows are independent so large
// areas are spread across a worker per CPU, fn must only touch row y.
func transform(r image.Rectangle, fn func(y int)) error {
	if r.Dx()*r.Dy() < parallelThreshold {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			fn(y)
		}
		return nil
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	chunks, errc, err := findChunks(ctx, r)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		errc, err := rowWorker(ctx, chunks, fn)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
