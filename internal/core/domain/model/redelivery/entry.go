package redelivery

import (
	"errors"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/routing"
	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"
)

const (
	// BaseBackoff is the delay after the first failed attempt.
	BaseBackoff = 30 * time.Second
	// MaxBackoff caps the delay between attempts.
	MaxBackoff = 30 * time.Minute

	maxErrorLength = 1024
)

var (
	ErrCauseIsRequired       = errs.NewValueIsRequiredError("cause")
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")
)

// Entry is a lifecycle message waiting to be published again.
//
// Example:
//
//	entry, err := redelivery.NewEntry(kernel.NewUUID(), msg, destination, publishErr, time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//	err = repo.Add(ctx, entry)
type Entry struct {
	id            kernel.UUID
	message       lifecycle.Message
	destination   routing.Destination
	attempts      int
	lastError     string
	nextAttemptAt time.Time
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewEntry records the first failed publication of message.
func NewEntry(
	id kernel.UUID,
	message lifecycle.Message,
	destination routing.Destination,
	cause error,
	now time.Time,
) (*Entry, error) {
	if cause == nil {
		return nil, ErrCauseIsRequired
	}

	entry := &Entry{
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setMessage(message),
		entry.setDestination(destination),
	); err != nil {
		return nil, err
	}

	entry.RecordFailure(cause, now)
	return entry, nil
}

// RestoreEntry rebuilds an Entry read from storage.
func RestoreEntry(
	id kernel.UUID,
	message lifecycle.Message,
	destination routing.Destination,
	attempts int,
	lastError string,
	nextAttemptAt, createdAt time.Time,
) (*Entry, error) {
	entry := &Entry{
		lastError:     lastError,
		nextAttemptAt: nextAttemptAt,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	var attemptsErr error
	if attempts < 1 {
		attemptsErr = errs.NewValueIsOutOfRangeError("attempts", attempts, 1, "unbounded")
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setMessage(message),
		entry.setDestination(destination),
		attemptsErr,
	); err != nil {
		return nil, err
	}

	entry.attempts = attempts
	return entry, nil
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setMessage(message lifecycle.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}
	e.message = message
	return nil
}

func (e *Entry) setDestination(destination routing.Destination) error {
	if destination.Exchange == "" || destination.Queue == "" {
		return ErrDestinationIsRequired
	}
	e.destination = destination
	return nil
}

// RecordFailure counts a failed attempt and schedules the next one.
func (e *Entry) RecordFailure(cause error, now time.Time) {
	e.attempts++
	if cause != nil {
		e.lastError = truncate(cause.Error())
	}
	e.nextAttemptAt = now.Add(Backoff(e.attempts))
}

// IsExhausted reports whether no further attempt is allowed.
func (e *Entry) IsExhausted(maxAttempts int) bool {
	return e.attempts >= maxAttempts
}

// IsDue reports whether the next attempt may run at now.
func (e *Entry) IsDue(now time.Time) bool {
	return !now.Before(e.nextAttemptAt)
}

// Backoff returns the delay scheduled after the given number of failed attempts.
func Backoff(attempts int) time.Duration {
	if attempts < 1 {
		return 0
	}

	delay := BaseBackoff
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= MaxBackoff {
			return MaxBackoff
		}
	}
	return delay
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) Message() lifecycle.Message {
	return e.message
}

func (e *Entry) Destination() routing.Destination {
	return e.destination
}

func (e *Entry) Attempts() int {
	return e.attempts
}

func (e *Entry) LastError() string {
	return e.lastError
}

func (e *Entry) NextAttemptAt() time.Time {
	return e.nextAttemptAt
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func truncate(s string) string {
	if len(s) > maxErrorLength {
		return s[:maxErrorLength]
	}
	return s
}
