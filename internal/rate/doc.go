// Package rate provides the two store-backed throttling primitives used by
// security-sensitive flows: a cooldown gate and a sliding-window counter.
//
// # Window semantics
//
// Cooldown: SET sentinel GET EX. The write and the prior-value read are one
// atomic call, so two racing callers cannot both observe an open window. A
// second PTTL round-trip reads the remaining window; it is informational
// only. Counter: single Lua INCR+PEXPIRE; every increment refreshes the
// window, capping it at ttl from the most recent hit.
//
// # Cancellation
//
// Cancellation between the cooldown call's two round-trips surfaces the
// context error, but the first round-trip's side effect stands. Callers must
// fail closed: treat a cancelled check as on-cooldown.
//
// # What this package must NOT do
//
//   - Impose a key namespace (callers supply prefixed keys).
//   - Implement domain policies (attempt budgets live with the caller).
//   - Be imported outside this module.
package rate
