/*
Package spinner implements a terminal progress indicator that cycles through
a sequence of characters until the task it is tracking finishes.
*/
package spinner

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bodgit/stegmerge"
)

const defaultInterval = 100 * time.Millisecond

var frames = []string{"-", "\\", "|", "/"}

// Spinner writes a spinning indicator to w for each started task. Only one
// task should run at a time.
type Spinner struct {
	w        io.Writer
	interval time.Duration
}

// New returns a Spinner writing to w.
func New(w io.Writer) *Spinner {
	return &Spinner{
		w:        w,
		interval: defaultInterval,
	}
}

type task struct {
	w          io.Writer
	cancelFunc context.CancelFunc
	done       chan struct{}
	once       sync.Once
}

// Start prints message and starts spinning.
func (s *Spinner) Start(message string) stegmerge.Task {
	fmt.Fprintln(s.w, message)

	ctx, cancelFunc := context.WithCancel(context.Background())
	t := &task{
		w:          s.w,
		cancelFunc: cancelFunc,
		done:       make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for i := 0; ; i++ {
			fmt.Fprint(s.w, frames[i%len(frames)], "\b")
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return t
}

// Done stops the spinner, waits for it to exit and prints the outcome.
// Calling it more than once has no further effect.
func (t *task) Done(err error) {
	t.once.Do(func() {
		t.cancelFunc()
		<-t.done
		if err != nil {
			fmt.Fprintln(t.w, "Failed! ❌")
			return
		}
		fmt.Fprintln(t.w, "Done! ✅")
	})
}
