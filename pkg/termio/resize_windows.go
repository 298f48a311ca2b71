//go:build windows

package termio

import (
	"sync"
	"time"
)

// resizePollInterval is how often the console size is sampled; Windows has
// no SIGWINCH.
const resizePollInterval = 250 * time.Millisecond

// OnResize polls the console size and calls fn when it changes.
func (c *Console) OnResize(fn func()) (stop func()) {
	done := make(chan struct{})
	last := c.Size()

	go func() {
		ticker := time.NewTicker(resizePollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if size := c.Size(); size != last {
					last = size
					fn()
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
