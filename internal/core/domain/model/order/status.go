package order

import (
	"fmt"
	"strings"

	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/result"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed transition table:
//
//	Pending ──> Accepted ──> Preparing ──> Ready ──> Delivered
//	   │           │             │
//	   └───────────┴─────────────┴──> Cancelled
//
// Cancellation is allowed up to and including Preparing. Once an order is Ready
// the only way forward is Delivered. Cancelled and Delivered are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly placed order.
	Pending

	// Accepted indicates the restaurant accepted the order.
	Accepted

	// Preparing indicates the kitchen started preparing the order.
	Preparing

	// Ready indicates the order is prepared and waiting for delivery.
	Ready

	// Cancelled is a terminal status for orders that will not be delivered.
	Cancelled

	// Delivered is a terminal status for orders handed to the customer.
	Delivered
)

// receivedAlias is the legacy name some producers still send for Pending.
// It is accepted by ParseStatus and never produced by String.
const receivedAlias = "received"

var canonicalNames = map[Status]string{
	Pending:   "pending",
	Accepted:  "accepted",
	Preparing: "preparing",
	Ready:     "ready",
	Cancelled: "cancelled",
	Delivered: "delivered",
}

var descriptions = map[Status]string{
	Pending:   "Pending",
	Accepted:  "Accepted",
	Preparing: "In Preparation",
	Ready:     "Ready",
	Cancelled: "Cancelled",
	Delivered: "Delivered",
}

var parseTable = map[string]Status{
	"pending":     Pending,
	"accepted":    Accepted,
	"preparing":   Preparing,
	"ready":       Ready,
	"cancelled":   Cancelled,
	"delivered":   Delivered,
	receivedAlias: Pending,
}

var transitions = map[Status][]Status{
	Pending:   {Accepted, Cancelled},
	Accepted:  {Preparing, Cancelled},
	Preparing: {Ready, Cancelled},
	Ready:     {Delivered},
	Cancelled: nil,
	Delivered: nil,
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return []Status{Pending, Accepted, Preparing, Ready, Cancelled, Delivered}
}

// ValidStatuses returns the canonical names of every valid status in declaration order.
func ValidStatuses() []string {
	statuses := Statuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}

// ParseStatus matches text case-insensitively against the canonical names and the
// legacy "received" alias. Unrecognized text yields (Unknown, false); callers decide
// how an absent status is reported.
//
// Example:
//
//	s, ok := order.ParseStatus("RECEIVED") // s == order.Pending, ok == true
func ParseStatus(text string) (Status, bool) {
	s, ok := parseTable[strings.ToLower(strings.TrimSpace(text))]
	return s, ok
}

// ParseStatusResult is ParseStatus reporting absence as an ORDER_INVALID_STATUS failure.
func ParseStatusResult(text string) result.Result[Status] {
	s, ok := ParseStatus(text)
	if !ok {
		return result.Err[Status](
			fmt.Sprintf("status '%s' is not a valid order status", text),
			result.CodeOrderInvalidStatus,
		)
	}
	return result.Ok(s)
}

// IsValidStatus reports whether text parses to a status.
func IsValidStatus(text string) bool {
	_, ok := ParseStatus(text)
	return ok
}

// IsValidTransition reports whether an order may move from current to next.
// It is false for every pair involving Unknown or an out-of-range value.
func IsValidTransition(current, next Status) bool {
	for _, allowed := range transitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Validate checks if the Status value is one of the six lifecycle statuses.
func (s Status) Validate() error {
	if _, ok := canonicalNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical lowercase name used on the wire, or "unknown".
func (s Status) String() string {
	if name, ok := canonicalNames[s]; ok {
		return name
	}
	return "unknown"
}

// Describe returns a human-readable label for diagnostics. It is not meant for logic.
func (s Status) Describe() string {
	if d, ok := descriptions[s]; ok {
		return d
	}
	return "Unknown Status"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(transitions[s]) == 0
}

// NextStatuses returns the statuses reachable from s in one transition.
func (s Status) NextStatuses() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo is IsValidTransition(s, next).
func (s Status) CanTransitionTo(next Status) bool {
	return IsValidTransition(s, next)
}

// TransitionTo validates the move from s to next and returns next on success.
//
// Failures:
//   - ORDER_INVALID_STATUS if either side is not a valid status
//   - ORDER_ALREADY_CANCELLED if s is Cancelled
//   - ORDER_STATUS_TRANSITION_INVALID for any other rejected move
func (s Status) TransitionTo(next Status) result.Result[Status] {
	if err := s.Validate(); err != nil {
		return result.Err[Status](err.Error(), result.CodeOrderInvalidStatus)
	}
	if err := next.Validate(); err != nil {
		return result.Err[Status](err.Error(), result.CodeOrderInvalidStatus)
	}

	if IsValidTransition(s, next) {
		return result.Ok(next)
	}

	if s == Cancelled {
		return result.Err[Status](
			fmt.Sprintf("order is already cancelled and cannot move to %s", next),
			result.CodeOrderAlreadyCancelled,
		)
	}

	return result.Err[Status](
		fmt.Sprintf("transition from %s to %s is not allowed", s, next),
		result.CodeOrderStatusTransitionInvalid,
	)
}

// MarshalText writes the canonical name. Unknown values are rejected.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText reads any name accepted by ParseStatus, including "received".
func (s *Status) UnmarshalText(text []byte) error {
	parsed, ok := ParseStatus(string(text))
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("'%s' is not a valid status", sanitizeStatus(string(text))),
		)
	}
	*s = parsed
	return nil
}

func sanitizeStatus(text string) string {
	const maxLen = 64
	if len(text) > maxLen {
		return text[:maxLen] + "..."
	}
	return text
}
