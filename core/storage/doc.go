// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so import archives can go to AWS S3 or a self-hosted
// MinIO instance alike. Object storage is optional: with no endpoint configured the
// service runs without archiving.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the archive bucket (EnsureBucket).
//   - PutObject: store an uploaded workbook or an import report.
//   - GetObject: read a stored report back.
//   - ListObjects: list archived imports under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
