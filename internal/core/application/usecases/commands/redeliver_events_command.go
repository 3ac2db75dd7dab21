package commands

import (
	"errors"
	"math"

	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"
)

var ErrRedeliverEventsCommandIsNotConstructed = errors.New(
	"RedeliverEventsCommand must be created via NewRedeliverEventsCommand constructor",
)

const maxBatchSize = 1000

// RedeliverEventsCommand retries up to batchSize parked messages. Messages that fail
// for the maxAttempts-th time go to the dead-letter destination.
//
// Example:
//
//	cmd, err := NewRedeliverEventsCommand(50, 5)
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, cmd)
type RedeliverEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize   int
	maxAttempts int

	guard guard.ConstructorGuard
}

func NewRedeliverEventsCommand(batchSize, maxAttempts int) (RedeliverEventsCommand, error) {
	cmd := RedeliverEventsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchSize(batchSize),
		cmd.setMaxAttempts(maxAttempts),
	); err != nil {
		return RedeliverEventsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RedeliverEventsCommand) Validate() error {
	return c.guard.Validate(ErrRedeliverEventsCommandIsNotConstructed)
}

func (c RedeliverEventsCommand) BatchSize() int {
	return c.batchSize
}

func (c RedeliverEventsCommand) MaxAttempts() int {
	return c.maxAttempts
}

func (c *RedeliverEventsCommand) setBatchSize(batchSize int) error {
	if batchSize < 1 || batchSize > maxBatchSize {
		return errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxBatchSize)
	}

	c.batchSize = batchSize
	return nil
}

func (c *RedeliverEventsCommand) setMaxAttempts(maxAttempts int) error {
	if maxAttempts < 1 {
		return errs.NewValueIsOutOfRangeError("maxAttempts", maxAttempts, 1, math.MaxInt)
	}

	c.maxAttempts = maxAttempts
	return nil
}
