// Package order holds the order status state machine shared by every service in
// the ordering pipeline.
//
// The package includes:
//   - Status: the closed set Pending, Accepted, Preparing, Ready, Cancelled, Delivered
//   - ParseStatus / String: parsing (with the legacy "received" alias) and canonical names
//   - IsValidTransition / Status.TransitionTo: the transition table
//
// Key business rules:
//   - Pending, Accepted and Preparing may be cancelled; Ready may only be delivered
//   - Cancelled and Delivered are terminal
//   - "received" is read as Pending but never written
//
// All tables are immutable package values, so every function is safe for concurrent use.
package order
