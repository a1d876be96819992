package checks

import (
	"context"
	"errors"
	"testing"

	"drinks-api/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func objects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestCheckStorage(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "drinks").Return(false, nil)

		report, err := CheckStorage(context.Background(), client, "drinks", "imports")
		require.NoError(t, err)
		assert.False(t, report.Exists)
		assert.Empty(t, report.Archives)
		client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Counts Reports", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "drinks").Return(true, nil)
		client.On("ListObjects", mock.Anything, "drinks", minio.ListObjectsOptions{Prefix: "imports/beers/", Recursive: true}).
			Return(objects("imports/beers/a/beers.xlsx", "imports/beers/a/report.json", "imports/beers/b/report.json"))
		client.On("ListObjects", mock.Anything, "drinks", mock.Anything).Return(objects())

		report, err := CheckStorage(context.Background(), client, "drinks", "/imports/")
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.Equal(t, map[string]int{"beers": 2, "spirits": 0, "catalog": 0}, report.Archives)
	})

	t.Run("Bucket Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "drinks").Return(false, errors.New("denied"))

		_, err := CheckStorage(context.Background(), client, "drinks", "imports")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestFixStorage(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "drinks").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "drinks", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

	require.NoError(t, FixStorage(context.Background(), client, "drinks", "us-east-1", zap.NewNop()))
	client.AssertExpectations(t)
}
