// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//go:generate mockgen -destination sharedtest/artifacts_mock.go -package sharedtest github.com/web-platform-tests/playground/shared ArtifactStore

package shared

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ArtifactStore persists debugging artifacts (screenshots, page sources) of
// failed cases.
type ArtifactStore interface {
	// Close releases the store's client, if any.
	io.Closer

	// Save writes data under the slash-separated name and returns where it
	// was written.
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// NewArtifactStore picks a store from the given settings: a GCS bucket if
// bucket is set, otherwise a local directory if dir is set, otherwise nil.
func NewArtifactStore(ctx context.Context, dir, bucket, credentialsFile string) (ArtifactStore, error) {
	switch {
	case bucket != "":
		var opts []option.ClientOption
		if credentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(credentialsFile))
		}
		client, err := storage.NewClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("creating storage client: %w", err)
		}
		return &gcsArtifactStore{client: client, bucket: bucket}, nil
	case dir != "":
		return NewLocalArtifactStore(dir), nil
	}
	return nil, nil
}

// NewLocalArtifactStore returns a store writing below dir.
func NewLocalArtifactStore(dir string) ArtifactStore {
	return localArtifactStore{dir: dir}
}

type localArtifactStore struct {
	dir string
}

func (s localArtifactStore) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	p := filepath.Join(s.dir, filepath.FromSlash(path.Clean("/" + name)))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", err
	}
	return p, nil
}

func (s localArtifactStore) Close() error {
	return nil
}

type gcsArtifactStore struct {
	client *storage.Client
	bucket string
}

func (s *gcsArtifactStore) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("gs://%s/%s", s.bucket, name), nil
}

func (s *gcsArtifactStore) Close() error {
	return s.client.Close()
}

var _ ArtifactStore = localArtifactStore{}
var _ ArtifactStore = (*gcsArtifactStore)(nil)
