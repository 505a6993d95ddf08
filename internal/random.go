package internal

import (
	"crypto"
	"crypto/rand"
	"encoding/base64"
	"errors"
)

const minClientSecretSize = 16

// RandomBytes returns length cryptographically random bytes.
func RandomBytes(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.New("invalid random length")
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// NewClientSecret returns a base64-encoded random secret of length raw bytes
// for use as a persistent-credential token.
func NewClientSecret(length int) (string, error) {
	if length < minClientSecretSize {
		return "", errors.New("client secret length too small")
	}
	buf, err := RandomBytes(length)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// NewVerificationSecret derives a digest-sized verification token by hashing
// fresh random material with h. The digest length matches what the codec
// expects for the same hash configuration.
func NewVerificationSecret(h crypto.Hash) ([]byte, error) {
	if !h.Available() {
		return nil, errors.New("hash algorithm not linked into binary")
	}
	seed, err := RandomBytes(h.Size())
	if err != nil {
		return nil, err
	}
	digest := h.New()
	digest.Write(seed)
	return digest.Sum(nil), nil
}
