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

// Package coordinator talks to the upstream service that hands out asset
// URLs and accepts per-URL outcomes. Transport failures are logged and
// swallowed; the coordinator treats unacknowledged URLs as eligible for
// re-issue, so the agent never blocks on it.
package coordinator

import (
	"context"

	"github.com/GoogleCloudPlatform/media-ingest/agent/download"
)

//go:generate mockgen -destination=mock_coordinator/mock_coordinator.go github.com/GoogleCloudPlatform/media-ingest/coordinator Client

// Client is the capability interface to the coordinator. Tests inject fakes.
type Client interface {
	// FetchAssetURLs requests up to count URLs to ingest. On transport
	// failure it returns an empty batch.
	FetchAssetURLs(ctx context.Context, count uint32) []string

	// NotifyFinished delivers a batch of per-URL outcomes. Failures are
	// logged, not returned; delivery is at-most-once.
	NotifyFinished(ctx context.Context, results []UrlResult)
}

// Outcome is the terminal result for one URL: either a stored preview
// (Err nil) or a classified failure.
type Outcome struct {
	Mime string
	Size uint32
	Err  *download.Error
}

// Success builds the outcome for a stored preview. size is the longest-edge
// bound that was applied.
func Success(mime string, size uint32) Outcome {
	return Outcome{Mime: mime, Size: size}
}

// Failure builds the outcome for a classified failure.
func Failure(err *download.Error) Outcome {
	return Outcome{Err: err}
}

// UrlResult pairs a processed URL with its outcome.
type UrlResult struct {
	URL     string
	Outcome Outcome
}
