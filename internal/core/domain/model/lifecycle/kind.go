package lifecycle

import (
	"strings"

	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/core/domain/model/routing"
	"orderlifecycle/internal/pkg/result"
)

// Kind selects the payload variant of a Message. Its value is the routing key
// used by the routing package.
type Kind string

const (
	KindCreated   Kind = "created"
	KindPending   Kind = "pending"
	KindAccepted  Kind = "accepted"
	KindPreparing Kind = "preparing"
	KindReady     Kind = "ready"
	KindDelivered Kind = "delivered"
	KindCompleted Kind = "completed"
	KindCancelled Kind = "cancelled"
)

var kindStatuses = map[Kind]order.Status{
	KindPending:   order.Pending,
	KindAccepted:  order.Accepted,
	KindPreparing: order.Preparing,
	KindReady:     order.Ready,
	KindDelivered: order.Delivered,
	KindCancelled: order.Cancelled,
}

// Kinds returns every kind in lifecycle order.
func Kinds() []Kind {
	return []Kind{
		KindCreated, KindPending, KindAccepted, KindPreparing,
		KindReady, KindDelivered, KindCompleted, KindCancelled,
	}
}

// ParseKind matches text case-insensitively against the known kinds.
func ParseKind(text string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(text)))
	for _, known := range Kinds() {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Status returns the order status a status variant announces. Created and
// Completed are not order statuses and return false.
func (k Kind) Status() (order.Status, bool) {
	s, ok := kindStatuses[k]
	return s, ok
}

// Destination resolves where messages of this kind are published.
func (k Kind) Destination() result.Result[routing.Destination] {
	return routing.Resolve(string(k))
}

func (k Kind) String() string {
	return string(k)
}
