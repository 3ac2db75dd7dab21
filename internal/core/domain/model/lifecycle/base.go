package lifecycle

import (
	"errors"
	"strings"
	"time"

	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"
	"orderlifecycle/internal/pkg/result"
)

var (
	// ErrBaseIsNotConstructed is returned when a Base was not created through NewBase.
	ErrBaseIsNotConstructed = errors.New("Base must be created via NewBase constructor")

	// ErrMessageIsNotConstructed is returned when a Message was not created through New.
	ErrMessageIsNotConstructed = errors.New("Message must be created via New constructor")
)

// Base holds the fields shared by every lifecycle message.
type Base struct { //nolint:recvcheck //using for validation
	orderID    string
	eventType  string
	eventDate  time.Time
	customerID string
	status     order.Status

	guard guard.ConstructorGuard
}

// NewBase validates and builds the shared message fields. orderID is required and
// status must be a valid order status; eventType, eventDate and customerID are optional.
//
// Example:
//
//	base := lifecycle.NewBase("ord-42", "OrderAccepted", time.Now().UTC(), "cus-7", order.Accepted)
//	if base.IsFailure() {
//	    return base.Err()
//	}
func NewBase(
	orderID, eventType string,
	eventDate time.Time,
	customerID string,
	status order.Status,
) result.Result[Base] {
	b := Base{
		eventType:  eventType,
		eventDate:  eventDate,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(b.setOrderID(orderID), b.setStatus(status)); err != nil {
		return validationFailure[Base](err)
	}

	return result.Ok(b)
}

// Validate ensures the Base was created through NewBase.
func (b Base) Validate() error {
	return b.guard.Validate(ErrBaseIsNotConstructed)
}

func (b Base) OrderID() string {
	return b.orderID
}

// EventType is a free-form tag chosen by the producer.
func (b Base) EventType() string {
	return b.eventType
}

func (b Base) EventDate() time.Time {
	return b.eventDate
}

func (b Base) CustomerID() string {
	return b.customerID
}

func (b Base) Status() order.Status {
	return b.status
}

func (b *Base) setOrderID(orderID string) error {
	if err := requireText("orderId", orderID); err != nil {
		return err
	}

	b.orderID = orderID
	return nil
}

func (b *Base) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	b.status = status
	return nil
}

func requireText(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requireTime(name string, value time.Time) error {
	if value.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// validationFailure turns constructor errors into a failure. Joined errors are
// reported on one line separated by "; ".
func validationFailure[T any](err error) result.Result[T] {
	code := result.CodeValidationError
	if errors.Is(err, ErrItemsRequired) {
		code = result.CodeOrderItemsRequired
	}

	return result.Err[T](strings.Join(flatten(err), "; "), code)
}

func flatten(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error }) //nolint:errorlint // only errors.Join output is flattened
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range joined.Unwrap() {
		messages = append(messages, flatten(e)...)
	}
	return messages
}
