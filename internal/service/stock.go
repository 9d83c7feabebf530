package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"propdesk/internal/events"
	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/validation"
)

const entityStock = "stock_item"

// StockService manages inventory.
type StockService interface {
	// Create defaults ReorderLevel to the settings' low-stock threshold when zero.
	Create(ctx context.Context, s *model.StockItem) (*model.StockItem, error)
	Get(ctx context.Context, id string) (*model.StockItem, error)
	List(ctx context.Context, f repository.StockFilter, p Page) (*ListResult[model.StockItem], error)
	Update(ctx context.Context, id string, s *model.StockItem) (*model.StockItem, error)
	Delete(ctx context.Context, id string) error
	// Adjust adds delta (negative to consume) and fails with ErrInsufficientStock
	// when the quantity would drop below zero.
	Adjust(ctx context.Context, id string, adj model.StockAdjustment) (*model.StockItem, error)
	View(ctx context.Context, id string) (*StockItemView, error)
}

type stockService struct {
	repo     repository.StockRepository
	settings SettingsService
	events   *events.Emitter
	log      logrus.FieldLogger
	clock    clock
}

// NewStockService constructs a StockService. Adjustments are written to log as an audit trail.
func NewStockService(repo repository.StockRepository, settings SettingsService, em *events.Emitter, log logrus.FieldLogger) StockService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &stockService{repo: repo, settings: settings, events: em, log: log}
}

func (s *stockService) Create(ctx context.Context, item *model.StockItem) (*model.StockItem, error) {
	validation.TrimSpace(&item.Name, &item.SKU, &item.Category, &item.Location)
	if item.ReorderLevel == 0 {
		set, err := s.settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		item.ReorderLevel = set.LowStockThreshold
	}
	if err := validation.Struct(item).Err(); err != nil {
		return nil, err
	}
	now := s.clock.now()
	item.ID = uuid.NewString()
	item.CreatedAt, item.UpdatedAt = now, now
	out, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, saveErr(entityStock, err)
	}
	s.events.Emit(ctx, entityStock, events.ActionCreated, out.ID)
	return out, nil
}

func (s *stockService) Get(ctx context.Context, id string) (*model.StockItem, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, findErr(entityStock, err)
	}
	return item, nil
}

func (s *stockService) List(ctx context.Context, f repository.StockFilter, p Page) (*ListResult[model.StockItem], error) {
	res, err := s.repo.List(ctx, f, p.query())
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *stockService) Update(ctx context.Context, id string, item *model.StockItem) (*model.StockItem, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	validation.TrimSpace(&item.Name, &item.SKU, &item.Category, &item.Location)
	if err := validation.Struct(item).Err(); err != nil {
		return nil, err
	}
	item.ID = current.ID
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = s.clock.now()
	out, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, saveErr(entityStock, err)
	}
	s.events.Emit(ctx, entityStock, events.ActionUpdated, out.ID)
	return out, nil
}

func (s *stockService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(entityStock, err)
	}
	s.events.Emit(ctx, entityStock, events.ActionDeleted, id)
	return nil
}

func (s *stockService) Adjust(ctx context.Context, id string, adj model.StockAdjustment) (*model.StockItem, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	validation.TrimSpace(&adj.Reason)
	if err := validation.Struct(adj).Err(); err != nil {
		return nil, err
	}
	out, err := s.repo.AdjustQuantity(ctx, id, adj.Delta)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: cannot remove %d", ErrInsufficientStock, -adj.Delta)
		}
		return nil, findErr(entityStock, err)
	}
	s.log.WithFields(logrus.Fields{
		"stock_item_id": out.ID,
		"delta":         adj.Delta,
		"quantity":      out.Quantity,
		"reason":        adj.Reason,
	}).Info("stock adjusted")
	s.events.Emit(ctx, entityStock, events.ActionAdjusted, out.ID)
	return out, nil
}

func (s *stockService) View(ctx context.Context, id string) (*StockItemView, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	set, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return newStockItemView(display{set: set}, item), nil
}
