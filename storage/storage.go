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

// Package storage is a thin capability over an S3-compatible object store,
// holding asset previews under content-derived keys. Writes are keyed and
// idempotent; the service never deletes.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/GoogleCloudPlatform/media-ingest/agent/mediatype"
)

// ErrNotFound reports that no object exists for the requested id. Any other
// error from Store methods is transient.
var ErrNotFound = errors.New("storage: object not found")

// StoredObject is a preview read back from the store. Body streams the
// object; the caller owns closing it.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// Store is the capability shared by the ingest workers (puts) and the
// preview server (gets).
type Store interface {
	// PutMedia stores the preview bytes for id, overwriting any previous
	// object. Re-puts of the same content are idempotent.
	PutMedia(ctx context.Context, id string, data []byte, contentType string) error

	// GetMedia returns the stored preview for id, or ErrNotFound.
	GetMedia(ctx context.Context, id string) (*StoredObject, error)
}

// ObjectKey is the bucket key under which an asset id is stored.
func ObjectKey(id string) string {
	return "media/" + id
}

// Options configures access to the S3-compatible store. Credentials may be
// left empty for anonymous access.
type Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Bucket          string
}

// MinioStore implements Store against any S3-compatible endpoint.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore dials the configured endpoint. An empty endpoint defaults to
// AWS S3.
func NewMinioStore(opts Options) (*MinioStore, error) {
	endpoint := opts.Endpoint
	secure := true
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		endpoint = strings.TrimPrefix(endpoint, "https://")
	case strings.HasPrefix(endpoint, "http://"):
		endpoint = strings.TrimPrefix(endpoint, "http://")
		secure = false
	case endpoint == "":
		endpoint = "s3.amazonaws.com"
	}

	creds := credentials.NewStatic("", "", "", credentials.SignatureAnonymous)
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		creds = credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, opts.SessionToken)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  creds,
		Secure: secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: connecting to %q: %v", endpoint, err)
	}
	return &MinioStore{client: client, bucket: opts.Bucket}, nil
}

// PutMedia implements Store.
func (s *MinioStore) PutMedia(ctx context.Context, id string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, ObjectKey(id), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

// GetMedia implements Store.
func (s *MinioStore) GetMedia(ctx context.Context, id string) (*StoredObject, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, ObjectKey(id), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; Stat performs the request and surfaces NoSuchKey.
	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, err
	}

	contentType := stat.ContentType
	if contentType == "" {
		contentType = mediatype.OctetStream
	}
	return &StoredObject{Body: obj, ContentType: contentType, Size: stat.Size}, nil
}
