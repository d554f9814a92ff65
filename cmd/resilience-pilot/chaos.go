package main

import (
	"math/rand"
	"sync"
)

// Chaos modes accepted by the chaos-control endpoint.
const (
	chaosModeImmediate = "immediate"
	chaosModeDegraded  = "degraded"
	chaosModeReset     = "reset"
)

// chaosState holds the failure-injection settings for the health endpoint.
// One instance is shared by all request handlers and guarded by a RWMutex.
type chaosState struct {
	mu          sync.RWMutex
	enabled     bool
	probability float64
}

func newChaosState() *chaosState {
	return &chaosState{}
}

// clampProbability bounds p to [0, 1].
func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// enableDegraded turns chaos mode on with the given failure probability.
// The stored probability is clamped to [0, 1] and returned.
func (c *chaosState) enableDegraded(probability float64) float64 {
	p := clampProbability(probability)
	c.mu.Lock()
	c.enabled = true
	c.probability = p
	c.mu.Unlock()
	return p
}

// reset turns chaos mode off and clears the probability.
func (c *chaosState) reset() {
	c.mu.Lock()
	c.enabled = false
	c.probability = 0
	c.mu.Unlock()
}

// shouldFail decides whether the current request should be failed. Each call
// takes a fresh uniform draw, so consecutive requests fail independently.
func (c *chaosState) shouldFail() bool {
	c.mu.RLock()
	enabled, p := c.enabled, c.probability
	c.mu.RUnlock()

	if !enabled {
		return false
	}
	return rand.Float64() < p
}

// snapshot returns the current mode and probability.
func (c *chaosState) snapshot() (bool, float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled, c.probability
}
