//go:build !windows

package termio

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// OnResize calls fn on every SIGWINCH until stop is called.
func (c *Console) OnResize(fn func()) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-sigs:
				c.log.Debug("SIGWINCH received")
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
	}
}
