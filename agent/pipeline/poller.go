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

package pipeline

import (
	"context"
	"flag"
	"time"

	"golang.org/x/time/rate"

	"github.com/GoogleCloudPlatform/media-ingest/coordinator"
)

var fetchMinInterval = flag.Duration("fetch-min-interval", time.Second,
	"Minimum interval between coordinator fetches. Keeps empty batches from spinning the loop.")

// poller pulls URL batches from the coordinator and feeds the task queue.
// Enqueueing blocks when the queue is full, which in turn stops the poller
// from pulling further batches.
type poller struct {
	client    coordinator.Client
	batchSize uint32
	limiter   *rate.Limiter
}

func newPoller(client coordinator.Client, batchSize uint32) *poller {
	return &poller{
		client:    client,
		batchSize: batchSize,
		limiter:   rate.NewLimiter(rate.Every(*fetchMinInterval), 1),
	}
}

func (p *poller) run(ctx context.Context, tasks chan<- Task) {
	for {
		if err := p.limiter.Wait(ctx); err != nil {
			return
		}
		for _, url := range p.client.FetchAssetURLs(ctx, p.batchSize) {
			select {
			case tasks <- Task{URL: url}:
			case <-ctx.Done():
				return
			}
		}
	}
}
