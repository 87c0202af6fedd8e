package background

import (
	"context"
	"log"
	"time"

	"github.com/m-orlov/sheet-order-service/internal/domain"
)

type BackgroundTasks struct {
	SyncUsecase  domain.SyncUsecase
	Interval     time.Duration
	CycleTimeout time.Duration
}

func NewBackgroundTasks(syncUC domain.SyncUsecase, interval, cycleTimeout time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		SyncUsecase:  syncUC,
		Interval:     interval,
		CycleTimeout: cycleTimeout,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startOrderSync(ctx)
}

// startOrderSync runs cycles synchronously inside the tick loop, so two
// cycles never overlap; ticks that fire while a cycle is running are dropped
// by the ticker. A failed cycle is logged and retried on the next tick.
func (bt *BackgroundTasks) startOrderSync(ctx context.Context) {
	ticker := time.NewTicker(bt.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cycleCtx, cancel := context.WithTimeout(ctx, bt.CycleTimeout)
			if err := bt.SyncUsecase.RunCycle(cycleCtx); err != nil {
				log.Printf("Reconciliation cycle error: %v\n", err)
			}
			cancel()
		}
	}
}
