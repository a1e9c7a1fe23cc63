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

package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/golang/glog"

	"github.com/GoogleCloudPlatform/media-ingest/agent/pipeline"
	"github.com/GoogleCloudPlatform/media-ingest/config"
	"github.com/GoogleCloudPlatform/media-ingest/coordinator"
	"github.com/GoogleCloudPlatform/media-ingest/server"
	"github.com/GoogleCloudPlatform/media-ingest/storage"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	settings, err := config.Load()
	if err != nil {
		glog.Fatalf("Can not load settings, error: %+v.\n", err)
	}
	glog.Infof("Starting media-ingest agent with settings: %v", settings)

	store, err := storage.NewMinioStore(storage.Options{
		Region:          settings.ObjectStore.Region,
		Endpoint:        settings.ObjectStore.Endpoint,
		AccessKeyID:     settings.ObjectStore.AccessKeyID,
		SecretAccessKey: settings.ObjectStore.SecretAccessKey,
		SessionToken:    settings.ObjectStore.SessionToken,
		Bucket:          settings.ObjectStore.BucketForMedia,
	})
	if err != nil {
		glog.Fatalf("Can not create object store client, error: %+v.\n", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go catchCtrlC(cancel)

	var wg sync.WaitGroup
	if settings.Coordinator.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client := coordinator.NewGRPCClient(settings.Coordinator.Address)
			pipeline.New(pipeline.Config{
				Workers:       settings.Coordinator.NumberOfWorkers,
				BatchSize:     settings.Coordinator.FetchBatchSize,
				MaxAssetBytes: settings.AssetProcessor.FileMaxSizeBytes,
				PreviewEdge:   settings.AssetProcessor.ResizeTo,
			}, client, store).Run(ctx)
		}()
	}

	if settings.HTTPServer.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			srv := server.New(store, settings.AssetProcessor.ResizeTo, settings.Metrics.Enabled)
			if err := srv.Run(ctx, settings.HTTPServer.Port); err != nil && err != http.ErrServerClosed {
				glog.Errorf("Preview server exited with err: %v", err)
			}
		}()
	}

	wg.Wait()
}

func catchCtrlC(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	glog.Info("Caught ^C, shutting down.")
	cancel()
}
