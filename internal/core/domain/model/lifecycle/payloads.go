package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemsRequired is returned when a Created payload has no items.
var ErrItemsRequired = errs.NewValueIsRequiredError("items")

// Payload is the variant part of a Message. The set of implementations is closed.
type Payload interface {
	Kind() Kind
	validate() error
}

// Item is one line of a created order.
type Item struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Created announces a new order with its items.
type Created struct {
	Items          []Item
	DeliveryMethod string
	Total          decimal.Decimal
}

// Pending announces an order waiting for the restaurant.
type Pending struct {
	UpdatedBy string
	Notes     string
}

// Accepted announces an order accepted by the restaurant.
type Accepted struct {
	UpdatedBy                string
	EstimatedPreparationTime time.Time
}

// Preparing announces an order being prepared.
type Preparing struct {
	UpdatedBy            string
	StartedPreparationAt time.Time
	EstimatedMinutes     int
}

// Ready announces an order ready for delivery.
type Ready struct {
	UpdatedBy string
	ReadyAt   time.Time
}

// Delivered announces an order handed to the customer.
type Delivered struct {
	UpdatedBy         string
	DeliveredAt       time.Time
	DeliveredBy       string
	DeliveryNotes     string
	CustomerSignature string
}

// Completed closes an order after delivery.
type Completed struct {
	PreviousStatus  order.Status
	UpdatedBy       string
	CompletedAt     time.Time
	DeliveredBy     string
	CompletionNotes string
	FinalAmount     decimal.Decimal
}

// Cancelled announces a cancelled order.
type Cancelled struct {
	CancelReason string
	CancelledBy  string
	CancelledAt  time.Time
}

func (Created) Kind() Kind   { return KindCreated }
func (Pending) Kind() Kind   { return KindPending }
func (Accepted) Kind() Kind  { return KindAccepted }
func (Preparing) Kind() Kind { return KindPreparing }
func (Ready) Kind() Kind     { return KindReady }
func (Delivered) Kind() Kind { return KindDelivered }
func (Completed) Kind() Kind { return KindCompleted }
func (Cancelled) Kind() Kind { return KindCancelled }

func (p Created) validate() error {
	itemErrs := make([]error, 0, len(p.Items)+1)
	if len(p.Items) == 0 {
		itemErrs = append(itemErrs, ErrItemsRequired)
	}
	for i, item := range p.Items {
		itemErrs = append(itemErrs, item.validate(i))
	}

	return errors.Join(
		errors.Join(itemErrs...),
		requireText("deliveryMethod", p.DeliveryMethod),
		requireNonNegative("total", p.Total),
	)
}

func (i Item) validate(index int) error {
	prefix := fmt.Sprintf("items[%d].", index)

	var quantityErr error
	if i.Quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			prefix+"quantity",
			fmt.Errorf("%d is not greater than 0", i.Quantity),
		)
	}

	return errors.Join(
		requireText(prefix+"productId", i.ProductID),
		requireText(prefix+"name", i.Name),
		quantityErr,
		requireNonNegative(prefix+"unitPrice", i.UnitPrice),
	)
}

func (p Pending) validate() error {
	return requireText("updatedBy", p.UpdatedBy)
}

func (p Accepted) validate() error {
	return errors.Join(
		requireText("updatedBy", p.UpdatedBy),
		requireTime("estimatedPreparationTime", p.EstimatedPreparationTime),
	)
}

func (p Preparing) validate() error {
	var minutesErr error
	if p.EstimatedMinutes < 0 {
		minutesErr = errs.NewValueIsInvalidErrorWithCause(
			"estimatedMinutes",
			fmt.Errorf("%d is negative", p.EstimatedMinutes),
		)
	}

	return errors.Join(
		requireText("updatedBy", p.UpdatedBy),
		requireTime("startedPreparationAt", p.StartedPreparationAt),
		minutesErr,
	)
}

func (p Ready) validate() error {
	return errors.Join(
		requireText("updatedBy", p.UpdatedBy),
		requireTime("readyAt", p.ReadyAt),
	)
}

func (p Delivered) validate() error {
	return errors.Join(
		requireText("updatedBy", p.UpdatedBy),
		requireTime("deliveredAt", p.DeliveredAt),
	)
}

func (p Completed) validate() error {
	var previousErr error
	if err := p.PreviousStatus.Validate(); err != nil {
		previousErr = errs.NewValueIsRequiredErrorWithCause("previousStatus", err)
	}

	return errors.Join(
		previousErr,
		requireText("updatedBy", p.UpdatedBy),
		requireTime("completedAt", p.CompletedAt),
		requireNonNegative("finalAmount", p.FinalAmount),
	)
}

func (p Cancelled) validate() error {
	return errors.Join(
		requireText("cancelReason", p.CancelReason),
		requireText("cancelledBy", p.CancelledBy),
		requireTime("cancelledAt", p.CancelledAt),
	)
}

func requireNonNegative(name string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", amount))
	}
	return nil
}
