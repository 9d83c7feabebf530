package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"propdesk/internal/events"
	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/storage"
	"propdesk/internal/validation"
)

const entityAttachment = "attachment"

// AttachmentService stores files for units, leases and service requests.
type AttachmentService interface {
	// Upload streams r to object storage under attachments/<entity_type>/<uuid><ext>,
	// then saves metadata. The object is removed again when the DB save fails.
	Upload(ctx context.Context, entityType, entityID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Attachment, error)
	// List returns every attachment of one entity, newest first.
	List(ctx context.Context, entityType, entityID string) ([]model.Attachment, error)
	// Get returns the metadata with a presigned download URL.
	Get(ctx context.Context, id string) (*model.AttachmentLink, error)
	// Open streams the file content; the caller closes the reader.
	Open(ctx context.Context, id string) (io.ReadCloser, *model.Attachment, error)
	// Delete removes the object first, then the metadata row.
	Delete(ctx context.Context, id string) error
}

type attachmentService struct {
	store   storage.Storage
	repo    repository.AttachmentRepository
	owners  map[string]func(ctx context.Context, id string) error
	presign time.Duration
	events  *events.Emitter
	clock   clock
}

// NewAttachmentService constructs an AttachmentService. A nil store disables uploads.
func NewAttachmentService(
	store storage.Storage,
	repo repository.AttachmentRepository,
	units repository.UnitRepository,
	leases repository.LeaseRepository,
	requests repository.ServiceRequestRepository,
	presign time.Duration,
	em *events.Emitter,
) AttachmentService {
	if store == nil {
		store = storage.Disabled{}
	}
	if presign <= 0 {
		presign = 15 * time.Minute
	}
	return &attachmentService{
		store: store,
		repo:  repo,
		owners: map[string]func(ctx context.Context, id string) error{
			model.AttachmentUnit: func(ctx context.Context, id string) error {
				_, err := units.FindByID(ctx, id)
				return err
			},
			model.AttachmentLease: func(ctx context.Context, id string) error {
				_, err := leases.FindByID(ctx, id)
				return err
			},
			model.AttachmentServiceRequest: func(ctx context.Context, id string) error {
				_, err := requests.FindByID(ctx, id)
				return err
			},
		},
		presign: presign,
		events:  em,
	}
}

func storageErr(op string, err error) error {
	if errors.Is(err, storage.ErrDisabled) {
		return ErrStorageDisabled
	}
	if errors.Is(err, storage.ErrObjectNotFound) {
		return fmt.Errorf("%w: attachment file is missing from storage", ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// checkOwner verifies the entity the attachment hangs off.
func (s *attachmentService) checkOwner(ctx context.Context, entityType, entityID string) error {
	find, ok := s.owners[entityType]
	if !ok {
		var errs validation.Errors
		errs.Add("entity_type", "validation_oneof", "must be one of unit, lease, service_request")
		return errs
	}
	if entityID == "" {
		return ErrIDRequired
	}
	if err := find(ctx, entityID); err != nil {
		return findErr(entityType, err)
	}
	return nil
}

func (s *attachmentService) Upload(ctx context.Context, entityType, entityID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Attachment, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if err := s.checkOwner(ctx, entityType, entityID); err != nil {
		return nil, err
	}

	name := uuid.NewString()
	key := storage.ObjectKey(entityType, name, originalFilename)
	obj, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"entity-type":       entityType,
			"entity-id":         entityID,
		},
	})
	if err != nil {
		return nil, storageErr("upload to storage", err)
	}

	a := &model.Attachment{
		ID:          uuid.NewString(),
		EntityType:  entityType,
		EntityID:    entityID,
		Filename:    originalFilename,
		StoragePath: obj.Key,
		Size:        obj.Size,
		ContentType: obj.ContentType,
		CreatedAt:   s.clock.now(),
	}
	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	s.events.Emit(ctx, entityAttachment, events.ActionCreated, stored.ID)
	return stored, nil
}

func (s *attachmentService) List(ctx context.Context, entityType, entityID string) ([]model.Attachment, error) {
	if err := s.checkOwner(ctx, entityType, entityID); err != nil {
		return nil, err
	}
	return s.repo.ListByEntity(ctx, entityType, entityID)
}

func (s *attachmentService) find(ctx context.Context, id string) (*model.Attachment, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, findErr(entityAttachment, err)
	}
	return a, nil
}

func (s *attachmentService) Get(ctx context.Context, id string) (*model.AttachmentLink, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.store.PresignGet(ctx, a.StoragePath, s.presign)
	if err != nil {
		return nil, storageErr("presign", err)
	}
	return &model.AttachmentLink{Attachment: *a, URL: url}, nil
}

func (s *attachmentService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Attachment, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, a.StoragePath)
	if err != nil {
		return nil, nil, storageErr("read from storage", err)
	}
	return rc, a, nil
}

func (s *attachmentService) Delete(ctx context.Context, id string) error {
	a, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	// Keep the row when the object cannot be removed so it can be retried.
	if err := s.store.Delete(ctx, a.StoragePath); err != nil {
		return storageErr("delete storage", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Emit(ctx, entityAttachment, events.ActionDeleted, id)
	return nil
}
