package vtoken

import (
	"crypto"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// ErrInvalidToken reports a malformed verification token: bad base64, an
// undersized payload, or a non-UTF-8 username tail.
var ErrInvalidToken = errors.New("invalid verification token")

var hashNames = map[string]crypto.Hash{
	"MD5":    crypto.MD5,
	"SHA1":   crypto.SHA1,
	"SHA256": crypto.SHA256,
	"SHA384": crypto.SHA384,
	"SHA512": crypto.SHA512,
}

// Codec packs and unpacks verification tokens for one pepper-length and
// hash-algorithm configuration.
//
// Codec instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Codec struct {
	pepperLength int
	hash         crypto.Hash
}

// NewCodec resolves the configured hash algorithm and pepper length. An
// unknown algorithm or non-positive pepper length is a configuration error,
// not a per-token one.
func NewCodec(pepperLength int, hashName string) (*Codec, error) {
	if pepperLength <= 0 {
		return nil, errors.New("pepper length must be positive")
	}

	h, ok := hashNames[normalizeHashName(hashName)]
	if !ok {
		return nil, fmt.Errorf("unknown hash algorithm %q", hashName)
	}
	if !h.Available() {
		return nil, fmt.Errorf("hash algorithm %q not linked into binary", hashName)
	}

	return &Codec{pepperLength: pepperLength, hash: h}, nil
}

// Hash returns the configured hash algorithm.
func (c *Codec) Hash() crypto.Hash {
	return c.hash
}

// PepperLength returns the configured pepper length in bytes.
func (c *Codec) PepperLength() int {
	return c.pepperLength
}

// TokenLength returns the token field length in bytes, derived from the
// configured hash algorithm's digest size.
func (c *Codec) TokenLength() int {
	return c.hash.Size()
}

// Encode concatenates the base64-decoded pepper, token, and username in
// fixed order and re-encodes the result as one base64 string. Field lengths
// are not validated; the caller supplies lengths consistent with Decode's
// configuration.
func (c *Codec) Encode(pepper, token, username string) (string, error) {
	rawPepper, err := base64.StdEncoding.DecodeString(pepper)
	if err != nil {
		return "", fmt.Errorf("%w: pepper: %v", ErrInvalidToken, err)
	}
	rawToken, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: token: %v", ErrInvalidToken, err)
	}
	rawUsername, err := base64.StdEncoding.DecodeString(username)
	if err != nil {
		return "", fmt.Errorf("%w: username: %v", ErrInvalidToken, err)
	}

	raw := make([]byte, 0, len(rawPepper)+len(rawToken)+len(rawUsername))
	raw = append(raw, rawPepper...)
	raw = append(raw, rawToken...)
	raw = append(raw, rawUsername...)

	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode splits an encoded verification token into its base64-encoded pepper
// and token fields and its UTF-8 username tail. At least one username byte
// must follow the fixed-length prefix.
func (c *Codec) Decode(encoded string) (pepper, token, username string, err error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	prefix := c.pepperLength + c.hash.Size()
	if len(raw) <= prefix {
		return "", "", "", fmt.Errorf("%w: payload too short", ErrInvalidToken)
	}

	rawUsername := raw[prefix:]
	if !utf8.Valid(rawUsername) {
		return "", "", "", fmt.Errorf("%w: username is not utf-8", ErrInvalidToken)
	}

	pepper = base64.StdEncoding.EncodeToString(raw[:c.pepperLength])
	token = base64.StdEncoding.EncodeToString(raw[c.pepperLength:prefix])
	return pepper, token, string(rawUsername), nil
}

func normalizeHashName(name string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "")
}
