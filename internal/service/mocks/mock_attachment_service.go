package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
)

type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Upload(ctx context.Context, entityType, entityID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Attachment, error) {
	args := m.Called(ctx, entityType, entityID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) List(ctx context.Context, entityType, entityID string) ([]model.Attachment, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) Get(ctx context.Context, id string) (*model.AttachmentLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttachmentLink), args.Error(1)
}

func (m *MockAttachmentService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Attachment, error) {
	args := m.Called(ctx, id)
	var rc io.ReadCloser
	if v := args.Get(0); v != nil {
		rc = v.(io.ReadCloser)
	}
	var a *model.Attachment
	if v := args.Get(1); v != nil {
		a = v.(*model.Attachment)
	}
	return rc, a, args.Error(2)
}

func (m *MockAttachmentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
