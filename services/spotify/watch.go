package spotify

import (
	"context"
	"sync"
	"time"

	"go.hacdias.com/folio/core"
)

// Watch polls the currently playing track immediately and then once every
// interval, calling fn with each result. Polls run concurrently, each bounded
// by interval, and a result older than the last one delivered is dropped. fn is
// never called concurrently. Watch blocks until ctx is done, after which fn is
// no longer called.
func (s *Spotify) Watch(ctx context.Context, interval time.Duration, fn func(*core.NowPlaying)) {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		seq       uint64
		delivered uint64
	)

	poll := func() {
		seq++
		id := seq

		wg.Add(1)
		go func() {
			defer wg.Done()

			pollCtx, cancel := context.WithTimeout(ctx, interval)
			defer cancel()

			np := s.NowPlaying(pollCtx)

			mu.Lock()
			defer mu.Unlock()

			if ctx.Err() != nil || id < delivered {
				return
			}

			delivered = id
			fn(np)
		}()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	poll()
	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case <-ticker.C:
			poll()
		}
	}
}
