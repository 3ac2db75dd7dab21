// Package lifecycle defines the event messages published at each stage of an
// order's life.
//
// A Message is a tagged union: one Base with the identity and timestamp fields
// shared by every event, and one Payload selected by Kind (created, pending,
// accepted, preparing, ready, delivered, completed, cancelled) carrying only the
// fields of that stage.
//
// Key business rules:
//   - Messages are built only through NewBase and New; a missing required field
//     fails construction with a VALIDATION_ERROR (ORDER_ITEMS_REQUIRED for an
//     order without items)
//   - Status variants must carry the status they announce in Base
//   - Payload fields never override Base fields
//
// The JSON form is flat: Base fields and Payload fields side by side, the way
// consumers read them from the kind-specific queue.
package lifecycle
