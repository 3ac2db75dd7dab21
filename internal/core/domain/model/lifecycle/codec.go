package lifecycle

import (
	"encoding/json"
	"fmt"
	"time"

	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/result"

	"github.com/shopspring/decimal"
)

// wireMessage is the flat JSON form shared by every kind. Fields that do not
// belong to a kind stay empty and are omitted.
type wireMessage struct {
	OrderID    string     `json:"orderId"`
	EventType  string     `json:"eventType,omitempty"`
	EventDate  *time.Time `json:"eventDate,omitempty"`
	CustomerID string     `json:"customerId,omitempty"`
	Status     string     `json:"status"`

	Items          []wireItem  `json:"items,omitempty"`
	DeliveryMethod string      `json:"deliveryMethod,omitempty"`
	Total          json.Number `json:"total,omitempty"`

	UpdatedBy                string     `json:"updatedBy,omitempty"`
	Notes                    string     `json:"notes,omitempty"`
	EstimatedPreparationTime *time.Time `json:"estimatedPreparationTime,omitempty"`
	StartedPreparationAt     *time.Time `json:"startedPreparationAt,omitempty"`
	EstimatedMinutes         *int       `json:"estimatedMinutes,omitempty"`
	ReadyAt                  *time.Time `json:"readyAt,omitempty"`

	DeliveredAt       *time.Time `json:"deliveredAt,omitempty"`
	DeliveredBy       string     `json:"deliveredBy,omitempty"`
	DeliveryNotes     string     `json:"deliveryNotes,omitempty"`
	CustomerSignature string     `json:"customerSignature,omitempty"`

	PreviousStatus  string      `json:"previousStatus,omitempty"`
	CompletedAt     *time.Time  `json:"completedAt,omitempty"`
	CompletionNotes string      `json:"completionNotes,omitempty"`
	FinalAmount     json.Number `json:"finalAmount,omitempty"`

	CancelReason string     `json:"cancelReason,omitempty"`
	CancelledBy  string     `json:"cancelledBy,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
}

type wireItem struct {
	ProductID string      `json:"productId"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice json.Number `json:"unitPrice"`
}

// MarshalJSON writes the flat camelCase wire form. Amounts are JSON numbers.
func (m Message) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	w := wireMessage{
		OrderID:    m.base.orderID,
		EventType:  m.base.eventType,
		EventDate:  timeRef(m.base.eventDate),
		CustomerID: m.base.customerID,
		Status:     m.base.status.String(),
	}

	switch p := m.payload.(type) {
	case Created:
		w.Items = make([]wireItem, 0, len(p.Items))
		for _, item := range p.Items {
			w.Items = append(w.Items, wireItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: json.Number(item.UnitPrice.String()),
			})
		}
		w.DeliveryMethod = p.DeliveryMethod
		w.Total = json.Number(p.Total.String())
	case Pending:
		w.UpdatedBy = p.UpdatedBy
		w.Notes = p.Notes
	case Accepted:
		w.UpdatedBy = p.UpdatedBy
		w.EstimatedPreparationTime = timeRef(p.EstimatedPreparationTime)
	case Preparing:
		w.UpdatedBy = p.UpdatedBy
		w.StartedPreparationAt = timeRef(p.StartedPreparationAt)
		minutes := p.EstimatedMinutes
		w.EstimatedMinutes = &minutes
	case Ready:
		w.UpdatedBy = p.UpdatedBy
		w.ReadyAt = timeRef(p.ReadyAt)
	case Delivered:
		w.UpdatedBy = p.UpdatedBy
		w.DeliveredAt = timeRef(p.DeliveredAt)
		w.DeliveredBy = p.DeliveredBy
		w.DeliveryNotes = p.DeliveryNotes
		w.CustomerSignature = p.CustomerSignature
	case Completed:
		w.PreviousStatus = p.PreviousStatus.String()
		w.UpdatedBy = p.UpdatedBy
		w.CompletedAt = timeRef(p.CompletedAt)
		w.DeliveredBy = p.DeliveredBy
		w.CompletionNotes = p.CompletionNotes
		w.FinalAmount = json.Number(p.FinalAmount.String())
	case Cancelled:
		w.CancelReason = p.CancelReason
		w.CancelledBy = p.CancelledBy
		w.CancelledAt = timeRef(p.CancelledAt)
	}

	return json.Marshal(w)
}

// Decode parses a message received from the queue of kind. The document runs
// through NewBase and New, so every construction rule applies.
func Decode(kind Kind, data []byte) result.Result[Message] {
	if _, ok := ParseKind(string(kind)); !ok {
		return result.Err[Message](fmt.Sprintf("unknown message kind '%s'", kind), result.CodeValidationError)
	}

	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return result.Err[Message](fmt.Sprintf("malformed %s message: %s", kind, err), result.CodeValidationError)
	}

	return result.Bind(order.ParseStatusResult(w.Status), func(status order.Status) result.Result[Message] {
		return result.Bind(
			NewBase(w.OrderID, w.EventType, timeValue(w.EventDate), w.CustomerID, status),
			func(base Base) result.Result[Message] {
				return result.Bind(w.payload(kind), func(p Payload) result.Result[Message] {
					return New(base, p)
				})
			},
		)
	})
}

func (w wireMessage) payload(kind Kind) result.Result[Payload] {
	switch kind {
	case KindCreated:
		return w.created()
	case KindPending:
		return result.Ok[Payload](Pending{UpdatedBy: w.UpdatedBy, Notes: w.Notes})
	case KindAccepted:
		return result.Ok[Payload](Accepted{
			UpdatedBy:                w.UpdatedBy,
			EstimatedPreparationTime: timeValue(w.EstimatedPreparationTime),
		})
	case KindPreparing:
		p := Preparing{UpdatedBy: w.UpdatedBy, StartedPreparationAt: timeValue(w.StartedPreparationAt)}
		if w.EstimatedMinutes != nil {
			p.EstimatedMinutes = *w.EstimatedMinutes
		}
		return result.Ok[Payload](p)
	case KindReady:
		return result.Ok[Payload](Ready{UpdatedBy: w.UpdatedBy, ReadyAt: timeValue(w.ReadyAt)})
	case KindDelivered:
		return result.Ok[Payload](Delivered{
			UpdatedBy:         w.UpdatedBy,
			DeliveredAt:       timeValue(w.DeliveredAt),
			DeliveredBy:       w.DeliveredBy,
			DeliveryNotes:     w.DeliveryNotes,
			CustomerSignature: w.CustomerSignature,
		})
	case KindCompleted:
		return w.completed()
	case KindCancelled:
		return result.Ok[Payload](Cancelled{
			CancelReason: w.CancelReason,
			CancelledBy:  w.CancelledBy,
			CancelledAt:  timeValue(w.CancelledAt),
		})
	default:
		return result.Err[Payload](fmt.Sprintf("unknown message kind '%s'", kind), result.CodeValidationError)
	}
}

func (w wireMessage) created() result.Result[Payload] {
	total, err := amount("total", w.Total)
	if err != nil {
		return result.Err[Payload](err.Error(), result.CodeValidationError)
	}

	items := make([]Item, 0, len(w.Items))
	for i, wi := range w.Items {
		price, err := amount(fmt.Sprintf("items[%d].unitPrice", i), wi.UnitPrice)
		if err != nil {
			return result.Err[Payload](err.Error(), result.CodeValidationError)
		}
		items = append(items, Item{
			ProductID: wi.ProductID,
			Name:      wi.Name,
			Quantity:  wi.Quantity,
			UnitPrice: price,
		})
	}

	return result.Ok[Payload](Created{Items: items, DeliveryMethod: w.DeliveryMethod, Total: total})
}

func (w wireMessage) completed() result.Result[Payload] {
	finalAmount, err := amount("finalAmount", w.FinalAmount)
	if err != nil {
		return result.Err[Payload](err.Error(), result.CodeValidationError)
	}

	// an absent previous status stays Unknown and is rejected by New
	previous, _ := order.ParseStatus(w.PreviousStatus)

	return result.Ok[Payload](Completed{
		PreviousStatus:  previous,
		UpdatedBy:       w.UpdatedBy,
		CompletedAt:     timeValue(w.CompletedAt),
		DeliveredBy:     w.DeliveredBy,
		CompletionNotes: w.CompletionNotes,
		FinalAmount:     finalAmount,
	})
}

func amount(name string, n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s is not a number: %w", name, err)
	}
	return d, nil
}

func timeRef(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
