package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

type MockAttachmentRepository struct {
	mock.Mock
}

var _ repository.AttachmentRepository = (*MockAttachmentRepository)(nil)

func (m *MockAttachmentRepository) Create(ctx context.Context, a *model.Attachment) (*model.Attachment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id string) (*model.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]model.Attachment, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) CountByEntity(ctx context.Context, entityType, entityID string) (int, error) {
	args := m.Called(ctx, entityType, entityID)
	return args.Int(0), args.Error(1)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
