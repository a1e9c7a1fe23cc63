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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/GoogleCloudPlatform/media-ingest/agent/assetid"
	"github.com/GoogleCloudPlatform/media-ingest/coordinator"
	"github.com/GoogleCloudPlatform/media-ingest/coordinator/mock_coordinator"
	"github.com/GoogleCloudPlatform/media-ingest/storage"
)

func TestPollerRequestsConfiguredBatchSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_coordinator.NewMockClient(ctrl)

	fetched := make(chan struct{})
	first := client.EXPECT().FetchAssetURLs(gomock.Any(), uint32(7)).DoAndReturn(
		func(context.Context, uint32) []string {
			close(fetched)
			return []string{"u1"}
		})
	client.EXPECT().FetchAssetURLs(gomock.Any(), uint32(7)).Return(nil).AnyTimes().After(first)

	ctx, cancel := context.WithCancel(context.Background())
	tasks := make(chan Task, 1)
	done := make(chan struct{})
	go func() {
		newPoller(client, 7).run(ctx, tasks)
		close(done)
	}()

	select {
	case <-fetched:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the first fetch")
	}
	select {
	case task := <-tasks:
		if task.URL != "u1" {
			t.Errorf("task URL = %q, want u1", task.URL)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the enqueued task")
	}
	cancel()
	<-done
}

func TestPollerFeedsTasksInBatchOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := coordinator.NewFakeClient([]string{"u1", "u2", "u3"})
	tasks := make(chan Task, 3)
	go newPoller(client, 3).run(ctx, tasks)

	for _, want := range []string{"u1", "u2", "u3"} {
		select {
		case task := <-tasks:
			if task.URL != want {
				t.Fatalf("task URL = %q, want %q", task.URL, want)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for task %q", want)
		}
	}
}

func TestPipelineIngestsBatchEndToEnd(t *testing.T) {
	body := pngBytes(t, 600, 400)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer ts.Close()

	urls := []string{ts.URL + "/a", ts.URL + "/b", ts.URL + "/missing"}
	client := coordinator.NewFakeClient(urls)
	store := storage.NewFakeStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go New(Config{
		Workers:       2,
		BatchSize:     3,
		MaxAssetBytes: 10 << 20,
		PreviewEdge:   400,
	}, client, store).Run(ctx)

	deadline := time.Now().Add(15 * time.Second)
	for store.Len() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if store.Len() != 2 {
		t.Fatalf("store holds %d objects, want 2", store.Len())
	}
	for _, url := range urls[:2] {
		if _, _, ok := store.Object(assetid.ForURL(url)); !ok {
			t.Errorf("no stored object for %q", url)
		}
	}
}
