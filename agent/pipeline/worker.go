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

	"github.com/golang/glog"

	"github.com/GoogleCloudPlatform/media-ingest/agent/assetid"
	"github.com/GoogleCloudPlatform/media-ingest/agent/download"
	"github.com/GoogleCloudPlatform/media-ingest/agent/imageproc"
	"github.com/GoogleCloudPlatform/media-ingest/agent/mediatype"
	"github.com/GoogleCloudPlatform/media-ingest/agent/metrics"
	"github.com/GoogleCloudPlatform/media-ingest/agent/statslog"
	"github.com/GoogleCloudPlatform/media-ingest/coordinator"
	"github.com/GoogleCloudPlatform/media-ingest/storage"
)

// worker turns one URL at a time into a stored preview plus an outcome for
// the coordinator. Workers are stateless beyond their handles, so the
// supervisor spawns as many as configured against the same pair of channels.
type worker struct {
	store       storage.Store
	maxBytes    uint64
	previewEdge int
	stats       *statslog.StatsLog
}

// run loops over the task queue until the context ends, the queue closes, or
// a Stop task arrives.
func (w *worker) run(ctx context.Context, id int, tasks <-chan Task, results chan<- coordinator.UrlResult) {
	metrics.WorkersCount.Inc()
	defer metrics.WorkersCount.Dec()
	glog.Infof("Worker %d started", id)
	defer glog.Infof("Worker %d exiting", id)

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-tasks:
			if !ok || task.Stop {
				return
			}
			res := w.process(ctx, task.URL)
			select {
			case results <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *worker) process(ctx context.Context, url string) coordinator.UrlResult {
	start := time.Now()
	outcome := w.ingest(ctx, url)
	elapsed := time.Since(start)
	metrics.AssetProcessing.Observe(elapsed.Seconds())
	if w.stats != nil {
		w.stats.AddSample(outcomeLabel(outcome), elapsed)
	}
	return coordinator.UrlResult{URL: url, Outcome: outcome}
}

func (w *worker) ingest(ctx context.Context, url string) coordinator.Outcome {
	id := assetid.ForURL(url)

	body, mime, derr := download.Fetch(ctx, url, w.maxBytes)
	if derr != nil {
		glog.V(1).Infof("Download of %q failed: %v", url, derr)
		return coordinator.Failure(derr)
	}
	if mime.Class != mediatype.Image {
		return coordinator.Failure(download.NewError(download.UnsupportedFormat, mime.Text))
	}

	preview, perr := imageproc.Normalize(ctx, body, w.previewEdge)
	if perr != nil {
		glog.V(1).Infof("Normalizing %q (id %s) failed: %v", url, id, perr)
		return coordinator.Failure(download.NewError(download.CorruptedAsset, perr.Error()))
	}
	stored := preview.Bytes
	if preview.Unchanged {
		stored = body
	}

	if err := w.putWithRetry(ctx, id, stored, mime.Text); err != nil {
		glog.Errorf("Storing preview for %q (id %s) got err: %v", url, id, err)
		return coordinator.Failure(download.NewError(download.DownloadFailed, err.Error()))
	}
	return coordinator.Success(mime.Text, uint32(w.previewEdge))
}

// putWithRetry retries transient object-store failures on a jittered
// exponential schedule before giving the URL up as failed. The worker itself
// stays alive either way.
func (w *worker) putWithRetry(ctx context.Context, id string, data []byte, contentType string) error {
	var b backoff
	for {
		err := w.store.PutMedia(ctx, id, data, contentType)
		if err == nil {
			return nil
		}
		delay, retry := b.getDelay()
		if !retry {
			return err
		}
		glog.Warningf("PutMedia(%s) got err: %v, retrying in %v", id, err, delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return err
		}
	}
}

func outcomeLabel(o coordinator.Outcome) string {
	if o.Err != nil {
		return o.Err.Kind.String()
	}
	return "success"
}
