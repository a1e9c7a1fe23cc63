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

// Package pipeline runs the ingestion loop: a poller pulls URL batches from
// the coordinator onto a bounded task queue, a pool of workers downloads and
// normalizes each asset into the object store, and a reporter flushes
// per-URL outcomes back to the coordinator in batches. Both queues are sized
// workers*batchSize, so a full store or slow coordinator throttles the
// poller instead of growing memory.
package pipeline

// Task is one unit of work handed to a download worker.
type Task struct {
	// URL of the asset to ingest.
	URL string

	// Stop tells the receiving worker to exit. The supervisor does not send
	// it; shutdown is by context cancellation.
	Stop bool
}
