package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
)

// Archiver stores raw generation payloads in Cloud Storage for diagnostics.
// Objects are written once under raw/{namingID}/{timestamp}.txt and the
// gs:// reference is recorded on the naming document.
type Archiver struct {
	client *gcs.Client
	bucket string
	now    func() time.Time
}

// NewArchiver constructs an Archiver writing to the given bucket.
func NewArchiver(client *gcs.Client, bucket string, opts ...ArchiverOption) (*Archiver, error) {
	if client == nil {
		return nil, errors.New("storage archiver: client is required")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("storage archiver: bucket is required")
	}

	archiver := &Archiver{
		client: client,
		bucket: bucket,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(archiver)
		}
	}
	return archiver, nil
}

// ArchiverOption customises archiver behaviour.
type ArchiverOption func(*Archiver)

// WithArchiverClock injects a custom clock (useful for tests).
func WithArchiverClock(clock func() time.Time) ArchiverOption {
	return func(a *Archiver) {
		if clock != nil {
			a.now = clock
		}
	}
}

// Archive writes the raw payload and returns its gs:// reference.
func (a *Archiver) Archive(ctx context.Context, namingID string, raw string) (string, error) {
	if a == nil || a.client == nil {
		return "", errors.New("storage archiver: not initialised")
	}
	namingID = strings.TrimSpace(namingID)
	if namingID == "" {
		return "", errors.New("storage archiver: naming id is required")
	}

	object := fmt.Sprintf("raw/%s/%s.txt", namingID, a.now().UTC().Format("20060102T150405.000000000Z"))
	writer := a.client.Bucket(a.bucket).Object(object).NewWriter(ctx)
	writer.ContentType = "text/plain; charset=utf-8"
	if _, err := writer.Write([]byte(raw)); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("storage archiver: write %s: %w", object, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("storage archiver: close %s: %w", object, err)
	}
	return fmt.Sprintf("gs://%s/%s", a.bucket, object), nil
}
