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

// Package download fetches a single asset over HTTP and classifies the
// outcome. There is no retry at this layer; the coordinator re-issues URLs
// whose results it never receives.
package download

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/GoogleCloudPlatform/media-ingest/agent/mediatype"
	"github.com/GoogleCloudPlatform/media-ingest/agent/metrics"
)

var downloadTimeout = flag.Duration("download-timeout", 2*time.Minute,
	"End-to-end timeout for a single asset download. Keeps a stalled origin from pinning a worker forever.")

// ErrorKind is the closed set of terminal download/processing failures.
// Ordinals are stable; the coordinator wire enum is derived from them.
type ErrorKind int

const (
	TooLarge ErrorKind = iota
	NotFound
	TooManyRequests
	ServerError
	UnsupportedFormat
	CorruptedAsset
	DownloadFailed
)

func (k ErrorKind) String() string {
	switch k {
	case TooLarge:
		return "too_large"
	case NotFound:
		return "not_found"
	case TooManyRequests:
		return "too_many_requests"
	case ServerError:
		return "server_error"
	case UnsupportedFormat:
		return "unsupported_format"
	case CorruptedAsset:
		return "corrupted_asset"
	default:
		return "download_failed"
	}
}

// Error is a classified per-URL failure.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

// NewError builds an Error with an optional detail message.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	httpClient     *http.Client
	httpClientOnce sync.Once
)

// client builds the shared HTTP client on first use, after flags are parsed.
func client() *http.Client {
	httpClientOnce.Do(func() {
		httpClient = &http.Client{Timeout: *downloadTimeout}
	})
	return httpClient
}

// Fetch GETs the URL and returns the body plus the classified MIME.
//
// Failure mapping: transport/DNS/TLS errors and 4xx (except 429) are
// NotFound, 429 is TooManyRequests, 5xx is ServerError, any other non-2xx is
// DownloadFailed. An advertised Content-Length above maxBytes is TooLarge
// without reading the body; a body that exceeds maxBytes while streaming is
// TooLarge as well, so the in-memory buffer stays bounded either way.
func Fetch(ctx context.Context, url string, maxBytes uint64) ([]byte, mediatype.Mime, *Error) {
	body, mime, err := fetch(ctx, url, maxBytes)
	if err != nil {
		metrics.Downloads.WithLabelValues(err.Kind.String()).Inc()
		return nil, mediatype.Mime{}, err
	}
	metrics.Downloads.WithLabelValues("success").Inc()
	return body, mime, nil
}

func fetch(ctx context.Context, url string, maxBytes uint64) ([]byte, mediatype.Mime, *Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, mediatype.Mime{}, NewError(NotFound, err.Error())
	}
	resp, err := client().Do(req)
	if err != nil {
		return nil, mediatype.Mime{}, NewError(NotFound, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, mediatype.Mime{}, NewError(TooManyRequests, "")
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, mediatype.Mime{}, NewError(NotFound, fmt.Sprintf("status %d", resp.StatusCode))
	case resp.StatusCode >= 500:
		return nil, mediatype.Mime{}, NewError(ServerError, fmt.Sprintf("status %d", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, mediatype.Mime{}, NewError(DownloadFailed, fmt.Sprintf("status %d", resp.StatusCode))
	}

	mime := mediatype.Default()
	if ct := resp.Header.Get("Content-Type"); ct != "" && utf8.ValidString(ct) {
		mime = mediatype.Parse(ct)
	}

	if resp.ContentLength > 0 && uint64(resp.ContentLength) > maxBytes {
		return nil, mediatype.Mime{}, NewError(TooLarge, fmt.Sprintf("content-length %d", resp.ContentLength))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, mediatype.Mime{}, NewError(DownloadFailed, err.Error())
	}
	if uint64(len(body)) > maxBytes {
		return nil, mediatype.Mime{}, NewError(TooLarge, fmt.Sprintf("body exceeds %d bytes", maxBytes))
	}

	return body, mime, nil
}
