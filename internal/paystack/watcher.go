package paystack

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var payingOut sync.Map

// Watcher polls for disbursements whose processing fee has cleared and
// releases the loan amount to the borrower.
type Watcher struct {
	disbursementRepo DisbursementRepo
	publisher        Publisher
	limit            uint32
	workerPool       WorkerPoolI
	pollInterval     time.Duration
}

func NewWatcher(disbursementRepo DisbursementRepo, publisher Publisher) *Watcher {
	return &Watcher{
		disbursementRepo: disbursementRepo,
		publisher:        publisher,
		limit:            1000,
		workerPool:       NewWorkerPool(10, 100),
		pollInterval:     time.Second * 5,
	}
}

func (w *Watcher) Start(ctx context.Context) {
	zap.L().Info("Payout watcher started")
	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payout watcher")
			w.workerPool.Close()
			return
		case <-ticker.C:
			w.processPayouts(ctx)
		}
	}
}

func (w *Watcher) processPayouts(ctx context.Context) {
	ready, err := w.disbursementRepo.FindPayoutReady(ctx, atomic.LoadUint32(&w.limit))
	if err != nil {
		zap.L().Error("Failed to fetch disbursements for payout", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, disbursement := range ready {
		disbursement := disbursement

		if _, loaded := payingOut.LoadOrStore(disbursement.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := w.workerPool.AddTask(ctx, func() error {
				defer payingOut.Delete(disbursement.ID)
				return w.payOut(ctx, disbursement)
			})
			if err != nil {
				payingOut.Delete(disbursement.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing payouts", zap.Error(err))
	}
}

func (w *Watcher) payOut(ctx context.Context, disbursement domain.LoanDisbursement) error {
	ok, err := w.disbursementRepo.MarkDisbursed(ctx, disbursement.ID)
	if err != nil {
		return err
	}
	if !ok {
		// Another replica beat us to it.
		return nil
	}

	zap.L().Info("Loan disbursed",
		zap.Int("disbursementID", disbursement.ID),
		zap.Int("applicationID", disbursement.ApplicationID),
		zap.Float64("amount", disbursement.LoanAmount))
	metrics.LoansDisbursed.Inc()
	w.publisher.Publish("loan_disbursements", "UPDATE", disbursement.ID)
	return nil
}
