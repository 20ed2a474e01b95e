package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"property-insights/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source supplies the bytes of one tabular input.
type Source interface {
	// Name is the resolved identity of the source, used for cache keys and
	// error messages.
	Name() string
	// Exists reports whether the source is present and readable.
	Exists(ctx context.Context) (bool, error)
	// Open returns a reader for the source contents.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads a source from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed source. The path is resolved to an
// absolute path up front so cache keys are stable across working directories.
func NewFileSource(path string) *FileSource {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return s.path
}

func (s *FileSource) Exists(ctx context.Context) (bool, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(s.path)
}

// ObjectSource reads a source from an object storage bucket.
type ObjectSource struct {
	client storage.Client
	bucket string
	key    string
}

// NewObjectSource creates a storage-backed source for bucket/key.
func NewObjectSource(client storage.Client, bucket, key string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, key: key}
}

func (s *ObjectSource) Name() string {
	return s.bucket + "/" + s.key
}

func (s *ObjectSource) Exists(ctx context.Context) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, s.key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" || resp.StatusCode == 404 {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
}

// SpecFromConfig builds a runnable Spec from the pipeline configuration.
// The storage client may be nil when the configured source kind is "file".
func SpecFromConfig(cfg Config, client storage.Client, bucket string) (*Spec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scorer, err := ScorerByName(cfg.Scorer)
	if err != nil {
		return nil, err
	}

	var demographics, listings Source
	if cfg.Source == SourceStorage {
		if client == nil {
			return nil, errMissingStorageClient
		}
		demographics = NewObjectSource(client, bucket, cfg.DemographicsPath)
		listings = NewObjectSource(client, bucket, cfg.ListingsPath)
	} else {
		demographics = NewFileSource(cfg.DemographicsPath)
		listings = NewFileSource(cfg.ListingsPath)
	}

	return &Spec{
		Demographics: demographics,
		Listings:     listings,
		Threshold:    cfg.Threshold,
		ScorerName:   cfg.Scorer,
		Scorer:       scorer,
		CacheTTL:     time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}, nil
}
