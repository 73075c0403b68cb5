// Package fetch pulls log export objects out of a cloud bucket and lays
// them down locally, keeping the bucket's directory structure.
package fetch

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/teranos/logbox/errors"
)

// Store lists and opens the objects of one bucket.
type Store interface {
	// List returns every object name in the bucket.
	List(ctx context.Context) ([]string, error)
	// Open starts reading one object. An object that no longer exists
	// reports errors.ErrNotFound; listings go stale while a fetch runs.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// GCSStore is a Store over a Google Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore connects to a bucket. With an empty credentialsFile the
// client uses ambient credentials (GOOGLE_APPLICATION_CREDENTIALS or the
// instance's service account).
func NewGCSStore(ctx context.Context, bucket, credentialsFile string) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("bucket name cannot be empty")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to cloud storage")
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

// Bucket returns the bucket name.
func (s *GCSStore) Bucket() string {
	return s.bucket
}

func (s *GCSStore) List(ctx context.Context) ([]string, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, nil)
	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "listing bucket %s", s.bucket)
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

func (s *GCSStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.bucket).Object(name).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, errors.Wrapf(errors.ErrNotFound, "object %s", name)
		}
		return nil, errors.Wrapf(err, "opening object %s", name)
	}
	return r, nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
