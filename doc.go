// Package authcore is the account-security core shared by registration,
// email-verification, password-reset, and sign-in flows: verification-token
// encoding, password strength policy, store-backed rate limiting, cached
// account status, and session/persistent credential issuance.
//
// The package is designed for concurrent server workloads: Engine methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// authcore is the public surface. It exposes [Engine], [Builder], [Config],
// and value types (CooldownStatus, SessionCredential, PersistentCredential).
// Store plumbing (cache connection lifecycle, cooldown/counter primitives,
// the status cache) lives under internal/ and is never exported. The
// verification codec, password policy, and session signing live in the
// public vtoken, password, and jwt packages.
//
// # What this package must NOT do
//
//   - Expose Redis clients or internal stores in its public API.
//   - Perform I/O outside of Engine methods (construction via Builder is
//     allocation-only until Build).
//   - Emit credential secrets through audit events, metrics, or errors.
//   - Retry failed store operations; retry policy belongs to the transport.
package authcore
