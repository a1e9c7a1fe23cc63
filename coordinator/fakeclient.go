/*
Copyright 2019 Google Inc. All Rights Reserved.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package coordinator

import (
	"context"
	"sync"
)

// FakeClient is an in-memory Client for tests. It hands out the configured
// batches in order, then empty batches forever.
type FakeClient struct {
	mu      sync.Mutex
	batches [][]string
	results []UrlResult
	flushes int
}

// NewFakeClient returns a FakeClient that will serve the given batches.
func NewFakeClient(batches ...[]string) *FakeClient {
	return &FakeClient{batches: batches}
}

// FetchAssetURLs implements Client.
func (c *FakeClient) FetchAssetURLs(ctx context.Context, count uint32) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.batches) == 0 {
		return nil
	}
	batch := c.batches[0]
	c.batches = c.batches[1:]
	if uint32(len(batch)) > count {
		batch = batch[:count]
	}
	return batch
}

// NotifyFinished implements Client.
func (c *FakeClient) NotifyFinished(ctx context.Context, results []UrlResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, results...)
	c.flushes++
}

// Results returns a copy of every result reported so far.
func (c *FakeClient) Results() []UrlResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]UrlResult, len(c.results))
	copy(cp, c.results)
	return cp
}

// Flushes returns the number of NotifyFinished calls observed.
func (c *FakeClient) Flushes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushes
}
