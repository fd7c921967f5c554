package utils

import (
	"sync"
)

// ConcLimiter bounds how many files are processed at once. Band loops
// inside a single file stay strictly sequential; only whole files run
// concurrently.
type ConcLimiter struct {
	wg   sync.WaitGroup
	pool chan struct{}
}

func NewConcLimiter(cLevel int) *ConcLimiter {
	return &ConcLimiter{pool: make(chan struct{}, cLevel)}
}

func (c *ConcLimiter) Acquire() {
	c.wg.Add(1)
	c.pool <- struct{}{}
}

func (c *ConcLimiter) Release() {
	select {
	case <-c.pool:
		c.wg.Done()
	default:
	}
}

func (c *ConcLimiter) Wait() {
	c.wg.Wait()
}
