package ingest_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"drinks-api/core/ingest"
	"drinks-api/core/storage/mocks"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiver_Store(t *testing.T) {
	client := new(mocks.Client)
	archiver := ingest.NewArchiver(client, "drinks", "/imports/")
	report := &ingest.Report{Success: true, Errors: []ingest.RowError{{Sheet: "b1", Row: 3, Error: "boom"}}}

	var keys []string
	client.On("PutObject", mock.Anything, "drinks", mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("minio.PutObjectOptions")).
		Run(func(args mock.Arguments) { keys = append(keys, args.String(2)) }).
		Return(minio.UploadInfo{}, nil)

	id, err := archiver.Store(context.Background(), "beers", "upload/beers.xlsx", []byte("xlsx"), report)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"imports/beers/" + id + "/beers.xlsx",
		"imports/beers/" + id + "/report.json",
	}, keys)
	client.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestArchiver_ListAndReport(t *testing.T) {
	client := new(mocks.Client)
	archiver := ingest.NewArchiver(client, "drinks", "imports")

	older := "0190a0b0-0000-7000-8000-000000000001"
	newer := "0190a0b0-0000-7000-8000-000000000002"
	ch := make(chan minio.ObjectInfo, 4)
	ch <- minio.ObjectInfo{Key: "imports/beers/" + older + "/beers.xlsx"}
	ch <- minio.ObjectInfo{Key: "imports/beers/" + older + "/report.json", LastModified: time.Unix(10, 0)}
	ch <- minio.ObjectInfo{Key: "imports/beers/" + newer + "/report.json", LastModified: time.Unix(20, 0)}
	close(ch)
	client.On("ListObjects", mock.Anything, "drinks", minio.ListObjectsOptions{Prefix: "imports/beers/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))

	entries, err := archiver.List(context.Background(), "beers")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer, entries[0].ID)
	assert.Equal(t, older, entries[1].ID)

	body := io.NopCloser(strings.NewReader(`{"success":true,"errors":[{"sheet":"b1","row":3,"error":"boom"}]}`))
	client.On("GetObject", mock.Anything, "drinks", "imports/beers/"+newer+"/report.json", mock.Anything).Return(body, nil)

	report, err := archiver.Report(context.Background(), "beers", newer)
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, []ingest.RowError{{Sheet: "b1", Row: 3, Error: "boom"}}, report.Errors)

	_, err = archiver.Report(context.Background(), "beers", "../../etc")
	assert.Error(t, err)
}
