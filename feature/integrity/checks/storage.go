package checks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"drinks-api/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes the import archive bucket.
type StorageReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
	// Archives counts archived imports per product kind.
	Archives map[string]int `json:"archives"`
}

// ArchiveKinds are the archive folders the service writes.
var ArchiveKinds = []string{"beers", "spirits", "catalog"}

// CheckStorage reports whether bucket exists and how many imports it archives.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string) (*StorageReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	report := &StorageReport{Bucket: bucket, Exists: exists, Archives: make(map[string]int)}
	if !exists {
		return report, nil
	}

	for _, kind := range ArchiveKinds {
		opts := minio.ListObjectsOptions{
			Prefix:    path.Join(strings.Trim(prefix, "/"), kind) + "/",
			Recursive: true,
		}
		n := 0
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s archives: %w", kind, obj.Err)
			}
			if path.Base(obj.Key) == "report.json" {
				n++
			}
		}
		report.Archives[kind] = n
	}
	return report, nil
}

// FixStorage creates the bucket when it is missing.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Archive bucket ready", zap.String("bucket", bucket))
	return nil
}
