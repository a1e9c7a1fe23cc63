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
	"time"

	"github.com/GoogleCloudPlatform/media-ingest/agent/metrics"
	"github.com/GoogleCloudPlatform/media-ingest/coordinator"
)

// flushSize is the number of buffered results that triggers a report to the
// coordinator.
const flushSize = 100

// reporter batches per-URL outcomes and delivers them to the coordinator.
// Transport failures are handled inside the client; the buffer is reset
// either way, and the coordinator re-issues unacknowledged URLs.
type reporter struct {
	client coordinator.Client
}

// run consumes results until the channel closes or the context ends. A
// remainder buffered at channel close is flushed before exiting.
func (r *reporter) run(ctx context.Context, results <-chan coordinator.UrlResult) {
	buf := make([]coordinator.UrlResult, 0, flushSize)
	lastFlush := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case res, ok := <-results:
			if !ok {
				if len(buf) > 0 {
					r.client.NotifyFinished(ctx, buf)
				}
				return
			}
			buf = append(buf, res)
			if len(buf) >= flushSize {
				r.client.NotifyFinished(ctx, buf)
				metrics.FlowRate.Set(time.Since(lastFlush).Seconds() / flushSize)
				lastFlush = time.Now()
				buf = make([]coordinator.UrlResult, 0, flushSize)
			}
		}
	}
}
