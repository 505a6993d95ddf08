// Package cache provides the TTL key-value contract that backs cooldown
// tracking, attempt counters, and account-status caching, together with the
// lifecycle of the shared Redis connection.
//
// # Connection model
//
// A [Manager] owns at most one lazily constructed client with process-wide
// lifetime. Construction uses double-checked locking so concurrent first
// callers build the client once. Invalidate drops the client; the next
// operation reconstructs it from the current configuration. Operations racing
// an invalidation may observe either client.
//
// # What this package must NOT do
//
//   - Retry failed operations (retry policy belongs to the transport layer).
//   - Interpret values; callers own key namespaces and value encodings.
//   - Be imported outside this module.
package cache
