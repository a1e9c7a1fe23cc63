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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/GoogleCloudPlatform/media-ingest/agent/download"
	pb "github.com/GoogleCloudPlatform/media-ingest/proto/asseturls_go_proto"
)

func TestWireError(t *testing.T) {
	tests := []struct {
		kind download.ErrorKind
		want pb.DownloadError
	}{
		{download.TooLarge, pb.DownloadError_TOO_LARGE},
		{download.NotFound, pb.DownloadError_NOT_FOUND},
		{download.TooManyRequests, pb.DownloadError_TOO_MANY_REQUESTS},
		{download.ServerError, pb.DownloadError_SERVER_ERROR},
		{download.UnsupportedFormat, pb.DownloadError_NOT_SUPPORTED_FORMAT},
		{download.CorruptedAsset, pb.DownloadError_CORRUPTED_ASSET},
		{download.DownloadFailed, pb.DownloadError_DOWNLOAD_FAILED},
	}
	for _, tc := range tests {
		if got := wireError(tc.kind); got != tc.want {
			t.Errorf("wireError(%v) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestWireDetailsSuccess(t *testing.T) {
	d := wireDetails(UrlResult{
		URL:     "http://host/cat.png",
		Outcome: Success("image/png", 400),
	})
	if d.GetUrl() != "http://host/cat.png" {
		t.Errorf("Url = %q, want http://host/cat.png", d.GetUrl())
	}
	success := d.GetSuccess()
	if success == nil {
		t.Fatal("GetSuccess() = nil, want DownloadSuccess")
	}
	if success.GetMime() != "image/png" || success.GetSize() != 400 {
		t.Errorf("success = {%q, %d}, want {image/png, 400}", success.GetMime(), success.GetSize())
	}
}

func TestWireDetailsFailure(t *testing.T) {
	d := wireDetails(UrlResult{
		URL:     "http://host/gone.png",
		Outcome: Failure(download.NewError(download.NotFound, "status 404")),
	})
	if d.GetSuccess() != nil {
		t.Error("GetSuccess() non-nil for failed download")
	}
	if got := d.GetFail(); got != pb.DownloadError_NOT_FOUND {
		t.Errorf("GetFail() = %v, want NOT_FOUND", got)
	}
}

func TestFakeClientBatches(t *testing.T) {
	ctx := context.Background()
	c := NewFakeClient(
		[]string{"u1", "u2", "u3"},
		[]string{"u4"},
	)

	if got, want := c.FetchAssetURLs(ctx, 2), []string{"u1", "u2"}; !cmp.Equal(got, want) {
		t.Errorf("first batch = %v, want %v", got, want)
	}
	if got, want := c.FetchAssetURLs(ctx, 10), []string{"u4"}; !cmp.Equal(got, want) {
		t.Errorf("second batch = %v, want %v", got, want)
	}
	if got := c.FetchAssetURLs(ctx, 10); got != nil {
		t.Errorf("exhausted batch = %v, want nil", got)
	}
}
