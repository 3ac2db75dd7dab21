// Package redelivery models lifecycle messages that could not be published.
//
// An Entry keeps the message with the destination it was meant for, counts failed
// attempts and schedules the next one with exponential backoff. Entries that exhaust
// their attempts are sent to the dead-letter destination by the redelivery command
// and removed.
//
// Key business rules:
//   - An Entry is created after the first failed publication, so Attempts starts at 1
//   - The delay before attempt n+1 is BaseBackoff * 2^(n-1), capped at MaxBackoff
//   - An Entry is exhausted once Attempts reaches the configured maximum
package redelivery
