// Package kernel holds identifier primitives shared by the domain model.
//
// UUID wraps github.com/google/uuid so that a zero identifier is detectable through
// Validate. Redelivery entries use it as their primary key, and the HTTP adapter
// uses it for correlation ids.
package kernel
