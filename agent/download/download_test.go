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

package download

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoogleCloudPlatform/media-ingest/agent/mediatype"
)

func TestFetchSuccess(t *testing.T) {
	payload := []byte("not really a png but the downloader does not care")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer ts.Close()

	body, mime, err := Fetch(context.Background(), ts.URL, 1<<20)
	if err != nil {
		t.Fatalf("Fetch(%q) got err: %v", ts.URL, err)
	}
	if !bytes.Equal(body, payload) {
		t.Errorf("Fetch body = %q, want %q", body, payload)
	}
	want := mediatype.Mime{Text: "image/png", Class: mediatype.Image}
	if mime != want {
		t.Errorf("Fetch mime = %+v, want %+v", mime, want)
	}
}

func TestFetchStatusMapping(t *testing.T) {
	tests := []struct {
		status   int
		wantKind ErrorKind
	}{
		{http.StatusNotFound, NotFound},
		{http.StatusForbidden, NotFound},
		{http.StatusTooManyRequests, TooManyRequests},
		{http.StatusInternalServerError, ServerError},
		{http.StatusServiceUnavailable, ServerError},
	}
	for _, tc := range tests {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		_, _, err := Fetch(context.Background(), ts.URL, 1<<20)
		ts.Close()
		if err == nil {
			t.Errorf("Fetch with status %d got nil err, want kind %v", tc.status, tc.wantKind)
			continue
		}
		if err.Kind != tc.wantKind {
			t.Errorf("Fetch with status %d got kind %v, want %v", tc.status, err.Kind, tc.wantKind)
		}
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	_, _, err := Fetch(context.Background(), "http://127.0.0.1:1/nothing", 1<<20)
	if err == nil || err.Kind != NotFound {
		t.Errorf("Fetch to unreachable host got %v, want kind %v", err, NotFound)
	}
}

func TestFetchAdvertisedTooLarge(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", fmt.Sprint(999999999))
		// The handler never writes the advertised bytes; the client must
		// bail out on the header alone.
		w.Write(bytes.Repeat([]byte("x"), 10))
	}))
	defer ts.Close()

	_, _, err := Fetch(context.Background(), ts.URL, 10_000_000)
	if err == nil || err.Kind != TooLarge {
		t.Fatalf("Fetch with huge Content-Length got %v, want kind %v", err, TooLarge)
	}
}

func TestFetchStreamedBodyTooLarge(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Flush first so no Content-Length header is sent.
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		w.Write(bytes.Repeat([]byte("x"), 4096))
	}))
	defer ts.Close()

	_, _, err := Fetch(context.Background(), ts.URL, 1024)
	if err == nil || err.Kind != TooLarge {
		t.Fatalf("Fetch with oversized chunked body got %v, want kind %v", err, TooLarge)
	}
}

func TestFetchDefaultMime(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Suppress Go's content-type sniffing so the header is truly absent.
		w.Header()["Content-Type"] = nil
		w.Write([]byte("data"))
	}))
	defer ts.Close()

	_, mime, err := Fetch(context.Background(), ts.URL, 1<<20)
	if err != nil {
		t.Fatalf("Fetch got err: %v", err)
	}
	if mime != mediatype.Default() {
		t.Errorf("Fetch mime = %+v, want default %+v", mime, mediatype.Default())
	}
}

func TestErrorString(t *testing.T) {
	e := NewError(UnsupportedFormat, "application/pdf")
	if got, want := e.Error(), "unsupported_format: application/pdf"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := NewError(ServerError, "").Error(), "server_error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
