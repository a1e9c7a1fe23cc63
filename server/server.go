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

// Package server exposes stored previews over HTTP: a health probe at /, the
// preview bytes at /preview/{id} with optional on-the-fly downscale, and the
// Prometheus scrape at /metrics. Requests are stateless.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"

	"github.com/GoogleCloudPlatform/media-ingest/agent/imageproc"
	"github.com/GoogleCloudPlatform/media-ingest/agent/metrics"
	"github.com/GoogleCloudPlatform/media-ingest/storage"
)

// Server serves previews out of one object store.
type Server struct {
	store storage.Store

	// maxEdge is the configured preview bound; a size query parameter is
	// honored only strictly below it.
	maxEdge int

	// exposeMetrics registers the /metrics scrape route.
	exposeMetrics bool
}

// New returns a Server reading from store. maxEdge is the stored-preview
// longest-edge bound.
func New(store storage.Store, maxEdge int, exposeMetrics bool) *Server {
	return &Server{store: store, maxEdge: maxEdge, exposeMetrics: exposeMetrics}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})
	if s.exposeMetrics {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	r.GET("/preview/:id", s.getPreview)
	return r
}

// Run serves until the context ends, then shuts the listener down.
func (s *Server) Run(ctx context.Context, port uint16) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}
	errc := make(chan error, 1)
	go func() {
		glog.Infof("Preview server listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) getPreview(c *gin.Context) {
	start := time.Now()
	defer func() {
		metrics.GetPreviewRequestsTotalTime.Add(float64(time.Since(start).Milliseconds()))
		metrics.GetPreviewRequestsNumber.Inc()
	}()

	id := c.Param("id")
	size := s.requestedSize(c.Query("size"))

	readStart := time.Now()
	obj, err := s.store.GetMedia(c.Request.Context(), id)
	metrics.StorageReadsTotalTime.Add(float64(time.Since(readStart).Milliseconds()))
	metrics.StorageReadsNumber.Inc()
	switch {
	case err == storage.ErrNotFound:
		c.Status(http.StatusNotFound)
		return
	case err != nil:
		glog.Errorf("GetMedia(%s) got err: %v", id, err)
		c.Status(http.StatusServiceUnavailable)
		return
	}
	defer obj.Body.Close()

	if size == 0 {
		// No downscale requested: hand the store's stream straight through.
		c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Body, nil)
		return
	}

	body, err := io.ReadAll(obj.Body)
	if err != nil {
		glog.Errorf("Reading stored object %s got err: %v", id, err)
		c.Status(http.StatusInternalServerError)
		return
	}
	preview, perr := imageproc.Normalize(c.Request.Context(), body, size)
	if perr != nil {
		glog.Errorf("Downscaling object %s to %d got err: %v", id, size, perr)
		c.Status(http.StatusInternalServerError)
		return
	}
	// The stored content-type is echoed for the resized body just as for the
	// streamed one.
	out := preview.Bytes
	if preview.Unchanged {
		out = body
	}
	c.Data(http.StatusOK, obj.ContentType, out)
}

// requestedSize parses the size query parameter. Anything unparsable or
// outside (0, maxEdge) is treated as absent, per the preview contract.
func (s *Server) requestedSize(raw string) int {
	if raw == "" {
		return 0
	}
	size, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || size == 0 || int(size) >= s.maxEdge {
		return 0
	}
	return int(size)
}
