package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-orlov/sheet-order-service/internal/domain"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/postgres/mappers"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

// UpsertOrder merges the record into the row with the same id inside one
// transaction. The update set never contains the notified column, so a
// re-ingested order keeps its notification state. The returned order is
// re-read after the merge and reflects the committed row.
func (r *DefaultOrderRepository) UpsertOrder(ctx context.Context, record *domain.OrderRecord) (*domain.PersistedOrder, error) {
	var persisted *domain.PersistedOrder

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.OrderModel
		err := tx.First(&existing, "id = ?", record.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			orderModel := mappers.ToGORMOrder(record)
			if err := tx.Create(orderModel).Error; err != nil {
				return err
			}
			persisted = mappers.ToDomainOrder(orderModel)
			return nil
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"order_number":  record.OrderNumber,
			"cost_usd":      record.CostUSD,
			"cost_local":    record.CostLocal,
			"delivery_date": record.DeliveryDate,
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}

		var merged models.OrderModel
		if err := tx.First(&merged, "id = ?", record.ID).Error; err != nil {
			return err
		}
		persisted = mappers.ToDomainOrder(&merged)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: upsert order %d: %v", domain.ErrStorageUnavailable, record.ID, err)
	}

	return persisted, nil
}

func (r *DefaultOrderRepository) MarkNotified(ctx context.Context, orderID int64) error {
	err := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("notified", true).Error
	if err != nil {
		return fmt.Errorf("%w: mark order %d notified: %v", domain.ErrStorageUnavailable, orderID, err)
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*domain.PersistedOrder, error) {
	var order models.OrderModel
	err := r.DB.WithContext(ctx).First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get order %d: %v", domain.ErrStorageUnavailable, orderID, err)
	}

	return mappers.ToDomainOrder(&order), nil
}
