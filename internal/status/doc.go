// Package status implements the read-through/write-through account-status
// cache. The cache is an accelerator, never authoritative: misses and
// unparsable values fall through to the system of record and repopulate the
// cache; explicit changes write to both.
//
// # What this package must NOT do
//
//   - Treat a failed lookup as any default status.
//   - Honor cancellation between the two writes of Set (a split would leave
//     cache and system of record disagreeing).
//   - Be imported outside this module.
package status
