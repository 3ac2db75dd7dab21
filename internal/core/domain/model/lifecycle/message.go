package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/core/domain/model/routing"
	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"
	"orderlifecycle/internal/pkg/result"
)

// Message is one lifecycle event: the shared Base plus exactly one Payload variant.
type Message struct { //nolint:recvcheck //using for validation
	base    Base
	payload Payload

	guard guard.ConstructorGuard
}

// New combines base and payload into a Message. Status variants must announce
// the status carried by base.
func New(base Base, payload Payload) result.Result[Message] {
	if err := base.Validate(); err != nil {
		return result.Err[Message](err.Error(), result.CodeValidationError)
	}
	if payload == nil {
		return result.Err[Message](errs.NewValueIsRequiredError("payload").Error(), result.CodeValidationError)
	}

	if err := errors.Join(payload.validate(), matchStatus(base.Status(), payload.Kind())); err != nil {
		return validationFailure[Message](err)
	}

	return result.Ok(Message{
		base:    base,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	})
}

func matchStatus(status order.Status, kind Kind) error {
	want, ok := kind.Status()
	if !ok || want == status {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s message carries status %s", kind, status),
	)
}

// Validate ensures the Message was created through New.
func (m Message) Validate() error {
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

// Kind is empty for a Message not created through New.
func (m Message) Kind() Kind {
	if m.payload == nil {
		return ""
	}
	return m.payload.Kind()
}

func (m Message) Base() Base {
	return m.base
}

func (m Message) Payload() Payload {
	return m.payload
}

func (m Message) OrderID() string {
	return m.base.OrderID()
}

func (m Message) Status() order.Status {
	return m.base.Status()
}

func (m Message) EventDate() time.Time {
	return m.base.EventDate()
}

// Destination resolves where the message is published.
func (m Message) Destination() result.Result[routing.Destination] {
	return m.Kind().Destination()
}

// PayloadAs returns the payload of m as P.
//
// Example:
//
//	if cancelled, ok := lifecycle.PayloadAs[lifecycle.Cancelled](msg); ok {
//	    log.Println(cancelled.CancelReason)
//	}
func PayloadAs[P Payload](m Message) (P, bool) {
	p, ok := m.payload.(P)
	return p, ok
}
