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

	"github.com/golang/glog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/GoogleCloudPlatform/media-ingest/agent/download"
	pb "github.com/GoogleCloudPlatform/media-ingest/proto/asseturls_go_proto"
)

// GRPCClient implements Client over the coordinator's AssetUrlService. A
// fresh connection is dialed per call; call volume is a handful per second
// at most, and this keeps the agent free of connection-state handling.
type GRPCClient struct {
	addr string
}

// NewGRPCClient returns a client for the coordinator at addr.
func NewGRPCClient(addr string) *GRPCClient {
	return &GRPCClient{addr: addr}
}

// FetchAssetURLs implements Client.
func (c *GRPCClient) FetchAssetURLs(ctx context.Context, count uint32) []string {
	conn, err := grpc.DialContext(ctx, c.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		glog.Errorf("Couldn't dial coordinator %q, err: %v", c.addr, err)
		return nil
	}
	defer conn.Close()

	resp, err := pb.NewAssetUrlServiceClient(conn).GetAssetUrlsToDownload(ctx, &pb.GetAssetUrlsRequest{Count: count})
	if err != nil {
		glog.Errorf("GetAssetUrlsToDownload(%d) got err: %v", count, err)
		return nil
	}
	return resp.Urls
}

// NotifyFinished implements Client.
func (c *GRPCClient) NotifyFinished(ctx context.Context, results []UrlResult) {
	conn, err := grpc.DialContext(ctx, c.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		glog.Errorf("Couldn't dial coordinator %q, err: %v", c.addr, err)
		return
	}
	defer conn.Close()

	req := &pb.DownloadResultsRequest{Results: make([]*pb.UrlDownloadDetails, 0, len(results))}
	for _, r := range results {
		req.Results = append(req.Results, wireDetails(r))
	}
	if _, err := pb.NewAssetUrlServiceClient(conn).SubmitDownloadResult(ctx, req); err != nil {
		glog.Errorf("SubmitDownloadResult with %d results got err: %v", len(results), err)
	}
}

func wireDetails(r UrlResult) *pb.UrlDownloadDetails {
	d := &pb.UrlDownloadDetails{Url: r.URL}
	if r.Outcome.Err == nil {
		d.DlResult = &pb.UrlDownloadDetails_Success{
			Success: &pb.DownloadSuccess{Mime: r.Outcome.Mime, Size: r.Outcome.Size},
		}
	} else {
		d.DlResult = &pb.UrlDownloadDetails_Fail{Fail: wireError(r.Outcome.Err.Kind)}
	}
	return d
}

// wireError maps the in-process failure kinds onto the wire enum. The enum
// carries the full set, so no kind is collapsed.
func wireError(kind download.ErrorKind) pb.DownloadError {
	switch kind {
	case download.TooLarge:
		return pb.DownloadError_TOO_LARGE
	case download.NotFound:
		return pb.DownloadError_NOT_FOUND
	case download.TooManyRequests:
		return pb.DownloadError_TOO_MANY_REQUESTS
	case download.ServerError:
		return pb.DownloadError_SERVER_ERROR
	case download.UnsupportedFormat:
		return pb.DownloadError_NOT_SUPPORTED_FORMAT
	case download.CorruptedAsset:
		return pb.DownloadError_CORRUPTED_ASSET
	default:
		return pb.DownloadError_DOWNLOAD_FAILED
	}
}
