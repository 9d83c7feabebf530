package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"propdesk/internal/config"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		entity, name, filename, want string
	}{
		{"lease", "abc", "Contract.PDF", "attachments/lease/abc.pdf"},
		{"unit", "abc", "photo", "attachments/unit/abc"},
		{"service_request", "abc", `C:\scans\invoice.jpeg`, "attachments/service_request/abc.jpeg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ObjectKey(tt.entity, tt.name, tt.filename))
	}
}

func TestDisabled(t *testing.T) {
	var s Storage = Disabled{}
	ctx := context.Background()

	_, err := s.Put(ctx, "k", strings.NewReader("x"), PutObjectOptions{Size: 1})
	assert.ErrorIs(t, err, ErrDisabled)
	_, _, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.ErrorIs(t, s.Delete(ctx, "k"), ErrDisabled)
	_, err = s.PresignGet(ctx, "k", time.Minute)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestNewMinIO_RequiresConfig(t *testing.T) {
	ctx := context.Background()

	_, err := NewMinIO(ctx, config.MinIOConfig{})
	assert.EqualError(t, err, "minio endpoint is required")

	_, err = NewMinIO(ctx, config.MinIOConfig{Endpoint: "localhost:9000"})
	assert.EqualError(t, err, "minio credentials are required")

	_, err = NewMinIO(ctx, config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"})
	assert.EqualError(t, err, "minio bucket is required")
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))

	err := translate(minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})
	assert.ErrorIs(t, err, ErrObjectNotFound)

	other := errors.New("connection reset")
	assert.Same(t, other, translate(other))

	denied := minio.ErrorResponse{Code: "AccessDenied"}
	assert.False(t, errors.Is(translate(denied), ErrObjectNotFound))
}
