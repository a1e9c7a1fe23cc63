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

	"github.com/golang/glog"

	"github.com/GoogleCloudPlatform/media-ingest/agent/statslog"
	"github.com/GoogleCloudPlatform/media-ingest/coordinator"
	"github.com/GoogleCloudPlatform/media-ingest/storage"
)

// Config carries the static knobs for one pipeline.
type Config struct {
	// Workers is the number of concurrent download workers.
	Workers int

	// BatchSize is the URL count requested per coordinator fetch.
	BatchSize uint32

	// MaxAssetBytes caps a single asset download.
	MaxAssetBytes uint64

	// PreviewEdge is the longest-edge bound for stored previews, in pixels.
	PreviewEdge int
}

// Pipeline wires the poller, the worker pool and the reporter around one
// coordinator client and one object store.
type Pipeline struct {
	cfg    Config
	client coordinator.Client
	store  storage.Store
}

// New returns a Pipeline; Run starts it.
func New(cfg Config, client coordinator.Client, store storage.Store) *Pipeline {
	return &Pipeline{cfg: cfg, client: client, store: store}
}

// Run spawns the workers and the reporter, then drives the poller until the
// context ends. There is no graceful drain; the coordinator re-issues any URL
// whose result was never reported.
func (p *Pipeline) Run(ctx context.Context) {
	q := p.cfg.Workers * int(p.cfg.BatchSize)
	tasks := make(chan Task, q)
	results := make(chan coordinator.UrlResult, q)

	glog.Infof("Starting pipeline with %d workers, batch size %d, queue depth %d",
		p.cfg.Workers, p.cfg.BatchSize, q)

	stats := statslog.New()
	go stats.PeriodicallyLogStats(ctx)

	w := &worker{
		store:       p.store,
		maxBytes:    p.cfg.MaxAssetBytes,
		previewEdge: p.cfg.PreviewEdge,
		stats:       stats,
	}
	for i := 0; i < p.cfg.Workers; i++ {
		go w.run(ctx, i, tasks, results)
	}
	go (&reporter{client: p.client}).run(ctx, results)

	newPoller(p.client, p.cfg.BatchSize).run(ctx, tasks)
}
