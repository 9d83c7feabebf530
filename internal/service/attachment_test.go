package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"propdesk/internal/model"
	repoMocks "propdesk/internal/repository/mocks"
	"propdesk/internal/storage"
	storeMocks "propdesk/internal/storage/mocks"
	"propdesk/internal/validation"
)

type attachmentMocks struct {
	store    *storeMocks.MockStorage
	repo     *repoMocks.MockAttachmentRepository
	units    *repoMocks.MockUnitRepository
	leases   *repoMocks.MockLeaseRepository
	requests *repoMocks.MockServiceRequestRepository
}

func newAttachmentFixture(withStore bool) (AttachmentService, attachmentMocks) {
	m := attachmentMocks{
		store:    new(storeMocks.MockStorage),
		repo:     new(repoMocks.MockAttachmentRepository),
		units:    new(repoMocks.MockUnitRepository),
		leases:   new(repoMocks.MockLeaseRepository),
		requests: new(repoMocks.MockServiceRequestRepository),
	}
	var store storage.Storage
	if withStore {
		store = m.store
	}
	return NewAttachmentService(store, m.repo, m.units, m.leases, m.requests, time.Minute, nil), m
}

func TestAttachmentService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		entityType string
		filename   string
		setupMocks func(m attachmentMocks) io.Reader
		wantErr    error
		wantErrMsg string
	}{
		{
			name:       "happy path",
			entityType: model.AttachmentLease,
			filename:   "Contract.PDF",
			setupMocks: func(m attachmentMocks) io.Reader {
				r := strings.NewReader("%PDF-1.7")
				m.leases.On("FindByID", ctx, leaseID).Return(&model.Lease{ID: leaseID}, nil)
				m.store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "attachments/lease/") && strings.HasSuffix(key, ".pdf")
				}), r, storage.PutObjectOptions{
					Size:        8,
					ContentType: "application/pdf",
					Metadata: map[string]string{
						"original-filename": "Contract.PDF",
						"entity-type":       "lease",
						"entity-id":         leaseID,
					},
				}).Return(storage.ObjectInfo{Key: "attachments/lease/uuid.pdf", Size: 8, ContentType: "application/pdf"}, nil)
				m.repo.On("Create", ctx, mock.MatchedBy(func(a *model.Attachment) bool {
					return a.Filename == "Contract.PDF" && a.StoragePath == "attachments/lease/uuid.pdf" &&
						a.EntityID == leaseID
				})).Return(&model.Attachment{ID: "gen-id"}, nil)
				return r
			},
		},
		{
			name:       "nil reader",
			entityType: model.AttachmentLease,
			setupMocks: func(m attachmentMocks) io.Reader { return nil },
			wantErr:    ErrReaderNil,
		},
		{
			name:       "owning entity missing",
			entityType: model.AttachmentUnit,
			setupMocks: func(m attachmentMocks) io.Reader {
				m.units.On("FindByID", ctx, leaseID).Return(nil, sql.ErrNoRows)
				return strings.NewReader("x")
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "storage error",
			entityType: model.AttachmentServiceRequest,
			setupMocks: func(m attachmentMocks) io.Reader {
				r := strings.NewReader("hello")
				m.requests.On("FindByID", ctx, leaseID).Return(&model.ServiceRequest{}, nil)
				m.store.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:       "repository error with successful rollback",
			entityType: model.AttachmentLease,
			setupMocks: func(m attachmentMocks) io.Reader {
				r := strings.NewReader("hello")
				m.leases.On("FindByID", ctx, leaseID).Return(&model.Lease{ID: leaseID}, nil)
				m.store.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				m.repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				m.store.On("Delete", ctx, mock.Anything).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:       "repository error with failed rollback",
			entityType: model.AttachmentLease,
			setupMocks: func(m attachmentMocks) io.Reader {
				r := strings.NewReader("hello")
				m.leases.On("FindByID", ctx, leaseID).Return(&model.Lease{ID: leaseID}, nil)
				m.store.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				m.repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				m.store.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
				return r
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAttachmentFixture(true)
			r := tt.setupMocks(m)

			a, err := svc.Upload(ctx, tt.entityType, leaseID, r, tt.filename, "application/pdf", 8)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, a)
			}
			m.store.AssertExpectations(t)
			m.repo.AssertExpectations(t)
		})
	}
}

func TestAttachmentService_UnknownEntity(t *testing.T) {
	svc, _ := newAttachmentFixture(true)

	_, err := svc.List(context.Background(), "owner", ownerA)

	verrs, ok := validation.As(err)
	require.True(t, ok)
	assert.True(t, verrs.Has("entity_type"))
}

func TestAttachmentService_StorageDisabled(t *testing.T) {
	ctx := context.Background()
	svc, m := newAttachmentFixture(false)
	m.units.On("FindByID", ctx, unitID).Return(&model.Unit{ID: unitID}, nil)

	_, err := svc.Upload(ctx, model.AttachmentUnit, unitID, strings.NewReader("x"), "a.jpg", "image/jpeg", 1)
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestAttachmentService_Get(t *testing.T) {
	ctx := context.Background()
	svc, m := newAttachmentFixture(true)
	m.repo.On("FindByID", ctx, "a-1").Return(&model.Attachment{ID: "a-1", StoragePath: "attachments/unit/x.jpg"}, nil)
	m.store.On("PresignGet", ctx, "attachments/unit/x.jpg", time.Minute).Return("https://minio.local/x.jpg?sig", nil)

	link, err := svc.Get(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/x.jpg?sig", link.URL)
	assert.Equal(t, "a-1", link.ID)
}

func TestAttachmentService_Open(t *testing.T) {
	ctx := context.Background()
	svc, m := newAttachmentFixture(true)
	m.repo.On("FindByID", ctx, "a-1").Return(&model.Attachment{ID: "a-1", StoragePath: "k"}, nil)
	m.store.On("Get", ctx, "k").Return(io.NopCloser(strings.NewReader("body")), storage.ObjectInfo{Key: "k"}, nil)

	rc, a, err := svc.Open(ctx, "a-1")
	require.NoError(t, err)
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "body", string(body))
	assert.Equal(t, "a-1", a.ID)
}

func TestAttachmentService_Open_ObjectMissing(t *testing.T) {
	ctx := context.Background()
	svc, m := newAttachmentFixture(true)
	m.repo.On("FindByID", ctx, "a-1").Return(&model.Attachment{ID: "a-1", StoragePath: "k"}, nil)
	m.store.On("Get", ctx, "k").Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)

	rc, a, err := svc.Open(ctx, "a-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, rc)
	assert.Nil(t, a)
}

func TestAttachmentService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(m attachmentMocks)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			id:   "valid-id",
			setupMocks: func(m attachmentMocks) {
				m.repo.On("FindByID", ctx, "valid-id").Return(&model.Attachment{ID: "valid-id", StoragePath: "path/to/obj"}, nil)
				m.store.On("Delete", ctx, "path/to/obj").Return(nil)
				m.repo.On("Delete", ctx, "valid-id").Return(nil)
			},
		},
		{
			name:       "empty id",
			setupMocks: func(m attachmentMocks) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMocks: func(m attachmentMocks) {
				m.repo.On("FindByID", ctx, "missing-id").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage delete error keeps the row",
			id:   "storage-fail-id",
			setupMocks: func(m attachmentMocks) {
				m.repo.On("FindByID", ctx, "storage-fail-id").Return(&model.Attachment{ID: "id", StoragePath: "path"}, nil)
				m.store.On("Delete", ctx, "path").Return(errors.New("storage fail"))
			},
			wantErrMsg: "delete storage: storage fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAttachmentFixture(true)
			tt.setupMocks(m)

			err := svc.Delete(ctx, tt.id)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
			}
			m.store.AssertExpectations(t)
			m.repo.AssertExpectations(t)
		})
	}
}
