// Package jwt issues and verifies short-lived signed session credentials
// carrying identity claims, using a symmetric key and strict validation
// semantics.
package jwt
