package commands

import (
	"context"
	"time"

	"orderlifecycle/internal/core/domain/model/redelivery"
	"orderlifecycle/internal/core/domain/model/routing"
	"orderlifecycle/internal/core/ports"
)

// RedeliveryReport counts what happened to the entries of one batch.
type RedeliveryReport struct {
	Delivered    int
	Rescheduled  int
	DeadLettered int
}

// RedeliverEventsCommandHandler retries due entries inside one unit of work.
// A delivered entry is removed. A failed entry is rescheduled, or, once its attempts
// are exhausted, published to routing.DeadLetter and removed.
//
// Example:
//
//	handler := NewRedeliverEventsCommandHandler(uowFactory, publisher)
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("delivered %d, dead-lettered %d", report.Delivered, report.DeadLettered)
type RedeliverEventsCommandHandler struct {
	uowFactory RedeliveryUoWFactory
	publisher  ports.EventPublisher
}

func NewRedeliverEventsCommandHandler(
	uowFactory RedeliveryUoWFactory,
	publisher ports.EventPublisher,
) RedeliverEventsCommandHandler {
	return RedeliverEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes one batch. Repository errors abort the batch and roll it back.
func (h RedeliverEventsCommandHandler) Handle(
	ctx context.Context,
	cmd RedeliverEventsCommand,
) (RedeliveryReport, error) {
	var report RedeliveryReport
	if err := cmd.Validate(); err != nil {
		return report, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return report, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RedeliveryRepository()
	now := time.Now().UTC()

	entries, err := repo.GetDue(ctx, now, cmd.BatchSize())
	if err != nil {
		return report, err
	}

	for _, entry := range entries {
		if err = h.retry(ctx, repo, entry, cmd.MaxAttempts(), now, &report); err != nil {
			return RedeliveryReport{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return RedeliveryReport{}, err
	}

	return report, nil
}

func (h RedeliverEventsCommandHandler) retry(
	ctx context.Context,
	repo ports.RedeliveryRepository,
	entry *redelivery.Entry,
	maxAttempts int,
	now time.Time,
	report *RedeliveryReport,
) error {
	publishErr := h.publisher.Publish(ctx, entry.Destination(), entry.Message())
	if publishErr == nil {
		report.Delivered++
		return repo.Remove(ctx, entry.ID())
	}

	entry.RecordFailure(publishErr, now)
	if !entry.IsExhausted(maxAttempts) {
		report.Rescheduled++
		return repo.Update(ctx, entry)
	}

	if dlqErr := h.publisher.Publish(ctx, routing.DeadLetter(), entry.Message()); dlqErr != nil {
		entry.RecordFailure(dlqErr, now)
		report.Rescheduled++
		return repo.Update(ctx, entry)
	}

	report.DeadLettered++
	return repo.Remove(ctx, entry.ID())
}
