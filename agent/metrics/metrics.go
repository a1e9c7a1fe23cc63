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

// Package metrics holds the process-wide Prometheus instruments. Every
// component records into the same default registry; the preview HTTP server
// exposes it at /metrics in text exposition format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Downloads counts terminal download outcomes by status label.
	Downloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "downloads",
		Help: "Terminal download outcomes, labeled by status.",
	}, []string{"status"})

	// AssetProcessing observes the wall time of one URL through the whole
	// worker stage (download, normalize, store).
	AssetProcessing = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "asset_processing_seconds",
		Help:    "Per-URL processing time through the worker.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
	})

	// FlowRate is seconds-per-result over the reporter's last flushed batch.
	FlowRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "flow_rate",
		Help: "Seconds per result over the last flushed report batch.",
	})

	// WorkersCount tracks live download workers.
	WorkersCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "workers_count",
		Help: "Number of live download workers.",
	})

	// StorageReadsTotalTime accumulates milliseconds spent on preview reads
	// from the object store. Paired with StorageReadsNumber for averaging.
	StorageReadsTotalTime = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storage_reads_total_time",
		Help: "Cumulative object-store read time for previews, in milliseconds.",
	})
	StorageReadsNumber = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storage_reads_number",
		Help: "Number of object-store reads for previews.",
	})

	// GetPreviewRequestsTotalTime accumulates milliseconds spent serving
	// /preview requests end to end.
	GetPreviewRequestsTotalTime = promauto.NewCounter(prometheus.CounterOpts{
		Name: "get_preview_requests_total_time",
		Help: "Cumulative /preview request time, in milliseconds.",
	})
	GetPreviewRequestsNumber = promauto.NewCounter(prometheus.CounterOpts{
		Name: "get_preview_requests_number",
		Help: "Number of /preview requests served.",
	})
)

// Handler returns the scrape handler for the process-wide registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
