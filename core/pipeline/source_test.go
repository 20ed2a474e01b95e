package pipeline

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"property-insights/core/storage"
	"property-insights/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var _ storage.Client = (*mocks.Client)(nil)

func TestFileSource_NameIsAbsolute(t *testing.T) {
	src := NewFileSource("data/demographics.csv")
	assert.True(t, strings.HasSuffix(src.Name(), "demographics.csv"))
	assert.NotEqual(t, "data/demographics.csv", src.Name(), "name is resolved to an absolute path")
}

func TestObjectSource_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("Present", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", ctx, "datasets", "demographics.csv", mock.Anything).
			Return(minio.ObjectInfo{Key: "demographics.csv"}, nil)

		src := NewObjectSource(client, "datasets", "demographics.csv")
		ok, err := src.Exists(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		client.AssertExpectations(t)
	})

	t.Run("Absent", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", ctx, "datasets", "demographics.csv", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound})

		src := NewObjectSource(client, "datasets", "demographics.csv")
		ok, err := src.Exists(ctx)
		require.NoError(t, err, "a missing object is not a transport error")
		assert.False(t, ok)
	})
}

func TestObjectSource_LoadsTable(t *testing.T) {
	ctx := context.Background()
	body := io.NopCloser(strings.NewReader(
		"zip_code,school_rating,crime_index\n32599,8.5,Low\n"))

	client := new(mocks.Client)
	client.On("StatObject", ctx, "datasets", "demographics.csv", mock.Anything).
		Return(minio.ObjectInfo{Key: "demographics.csv"}, nil)
	client.On("GetObject", ctx, "datasets", "demographics.csv", mock.Anything).
		Return(body, nil)

	src := NewObjectSource(client, "datasets", "demographics.csv")
	assert.Equal(t, "datasets/demographics.csv", src.Name())

	records, err := LoadDemographics(ctx, src)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "32599", records[0].ZipCode)
	client.AssertExpectations(t)
}
