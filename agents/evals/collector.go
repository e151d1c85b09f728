/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package evals

import "sync"

// Collector is an Observer that keeps what it is told.
type Collector struct {
	mu       sync.Mutex
	failures []string
	logs     []string
	total    int64
}

var _ Observer = (*Collector)(nil)

func (c *Collector) Fail(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, msg)
}

func (c *Collector) Log(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs = append(c.logs, msg)
}

func (c *Collector) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total++
}

// Failures returns a copy of the failure messages.
func (c *Collector) Failures() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.failures...)
}

// Logs returns a copy of the logged messages.
func (c *Collector) Logs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.logs...)
}

// Total returns the number of traces evaluated.
func (c *Collector) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}
