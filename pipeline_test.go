package stegmerge

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 10, 10),
		image.Rect(0, 0, 300, 400),
		image.Rect(-7, 13, 293, 250),
	} {
		rows := make([]int, r.Dy())
		require.NoError(t, transform(r, func(y int) {
			rows[y-r.Min.Y]++
		}))
		for i, n := range rows {
			assert.Equal(t, 1, n, "row %d of %v", r.Min.Y+i, r)
		}
	}
}

func TestPipelineCancelled(t *testing.T) {
	ctx, cancelFunc := context.WithCancel(context.Background())
	cancelFunc()

	// Nothing reads the chunks
	_, errc, err := findChunks(ctx, image.Rect(0, 0, 10, 100))
	require.NoError(t, err)
	assert.Equal(t, errCancelled, <-errc)

	in := make(chan rowChunk, 1)
	in <- rowChunk{0, 10}
	close(in)

	called := false
	errc, err = rowWorker(ctx, in, func(int) {
		called = true
	})
	require.NoError(t, err)
	assert.Equal(t, errCancelled, waitForPipeline(errc))
	assert.False(t, called)
}
