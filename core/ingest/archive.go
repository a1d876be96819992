package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"drinks-api/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const reportObject = "report.json"

// ArchiveEntry describes one archived import.
type ArchiveEntry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// Archiver stores uploaded workbooks and their reports in object storage,
// one folder per import: <prefix>/<kind>/<id>/.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
}

func NewArchiver(client storage.Client, bucket, prefix string) *Archiver {
	return &Archiver{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Store uploads the workbook and its report and returns the archive id.
func (a *Archiver) Store(ctx context.Context, kind, filename string, data []byte, report *Report) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate archive id: %w", err)
	}
	dir := path.Join(a.prefix, kind, id.String())

	if err := a.put(ctx, path.Join(dir, path.Base(filename)), data, contentType(filename)); err != nil {
		return "", err
	}

	body, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	if err := a.put(ctx, path.Join(dir, reportObject), body, "application/json"); err != nil {
		return "", err
	}
	return id.String(), nil
}

func (a *Archiver) put(ctx context.Context, key string, data []byte, ct string) error {
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: ct})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", key, err)
	}
	return nil
}

// List returns the archived imports of kind, newest first.
func (a *Archiver) List(ctx context.Context, kind string) ([]ArchiveEntry, error) {
	prefix := path.Join(a.prefix, kind) + "/"
	var entries []ArchiveEntry
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archives: %w", obj.Err)
		}
		if path.Base(obj.Key) != reportObject {
			continue
		}
		entries = append(entries, ArchiveEntry{
			ID:        path.Base(path.Dir(obj.Key)),
			Kind:      kind,
			CreatedAt: obj.LastModified,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID > entries[j].ID })
	return entries, nil
}

// Report reads back the report of an archived import.
func (a *Archiver) Report(ctx context.Context, kind, id string) (*Report, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid archive id %q", id)
	}
	obj, err := a.client.GetObject(ctx, a.bucket, path.Join(a.prefix, kind, id, reportObject), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", id, err)
	}
	defer obj.Close()

	var report Report
	if err := json.NewDecoder(obj).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode archive %s: %w", id, err)
	}
	return &report, nil
}

func contentType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".xlsm":
		return "application/vnd.ms-excel.sheet.macroEnabled.12"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
