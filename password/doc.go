// Package password judges whether a candidate password is strong enough to
// accept, and hashes accepted passwords with Argon2id.
//
// # Strength model
//
// Entropy is estimated against a coarse character-space model: each
// character class present in the password contributes a fixed cardinality to
// the space, and the estimate is length * log2(space). Precisely sizing a
// Unicode character space is not worth the complexity; all non-ASCII text is
// treated as one class so no single exotic rune inflates the estimate.
//
// # Hash format
//
// Hashes use the PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// # What this package must NOT do
//
//   - Store or retrieve passwords; callers supply plaintext and receive
//     results or hashes.
//   - Log plaintext passwords.
//   - Import any other package of this module.
package password
