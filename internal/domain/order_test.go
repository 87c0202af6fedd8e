package domain_test

import (
	"testing"
	"time"

	"github.com/m-orlov/sheet-order-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPersistedOrderOverdue(t *testing.T) {
	delivery := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	order := &domain.PersistedOrder{
		OrderRecord: domain.OrderRecord{ID: 7, DeliveryDate: delivery},
	}

	// Strict comparison: the delivery day itself is not overdue.
	assert.False(t, order.Overdue(time.Date(2020, 1, 1, 23, 59, 0, 0, time.UTC)))
	assert.True(t, order.Overdue(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, order.Overdue(time.Date(2019, 12, 31, 12, 0, 0, 0, time.UTC)))
}
