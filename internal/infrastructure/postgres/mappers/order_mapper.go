package mappers

import (
	"github.com/m-orlov/sheet-order-service/internal/domain"
	"github.com/m-orlov/sheet-order-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.PersistedOrder {
	return &domain.PersistedOrder{
		OrderRecord: domain.OrderRecord{
			ID:           model.ID,
			OrderNumber:  model.OrderNumber,
			CostUSD:      model.CostUSD,
			CostLocal:    model.CostLocal,
			DeliveryDate: model.DeliveryDate,
		},
		Notified: model.Notified,
	}
}

func ToGORMOrder(record *domain.OrderRecord) *models.OrderModel {
	return &models.OrderModel{
		ID:           record.ID,
		OrderNumber:  record.OrderNumber,
		CostUSD:      record.CostUSD,
		CostLocal:    record.CostLocal,
		DeliveryDate: record.DeliveryDate,
	}
}
