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

package storage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/GoogleCloudPlatform/media-ingest/agent/mediatype"
)

type fakeObject struct {
	data        []byte
	contentType string
}

// FakeStore is an in-memory Store for tests.
type FakeStore struct {
	mu      sync.Mutex
	objects map[string]fakeObject

	// PutErr/GetErr, when set, are returned by the corresponding method.
	PutErr error
	GetErr error
}

// NewFakeStore returns an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{objects: make(map[string]fakeObject)}
}

// PutMedia implements Store.
func (s *FakeStore) PutMedia(ctx context.Context, id string, data []byte, contentType string) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.objects[ObjectKey(id)] = fakeObject{data: cp, contentType: contentType}
	return nil
}

// GetMedia implements Store.
func (s *FakeStore) GetMedia(ctx context.Context, id string) (*StoredObject, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[ObjectKey(id)]
	if !ok {
		return nil, ErrNotFound
	}
	contentType := obj.contentType
	if contentType == "" {
		contentType = mediatype.OctetStream
	}
	return &StoredObject{
		Body:        io.NopCloser(bytes.NewReader(obj.data)),
		ContentType: contentType,
		Size:        int64(len(obj.data)),
	}, nil
}

// Object returns the raw stored bytes and content type for id, for test
// assertions.
func (s *FakeStore) Object(id string) ([]byte, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[ObjectKey(id)]
	return obj.data, obj.contentType, ok
}

// Len returns the number of stored objects.
func (s *FakeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
