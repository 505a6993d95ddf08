package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	hasherMinMemoryKB    uint32 = 8 * 1024
	hasherMinTime        uint32 = 1
	hasherMinParallelism uint8  = 1
	hasherMinSaltLength  uint32 = 16
	hasherMinKeyLength   uint32 = 16
	hasherAlgorithmID           = "argon2id"
)

// Params holds the Argon2id cost parameters.
type Params struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// Hasher hashes accepted passwords with Argon2id and verifies candidates
// against stored PHC strings.
//
// Hasher instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Hasher struct {
	params Params
}

// NewHasher validates the cost parameters against conservative floors.
func NewHasher(params Params) (*Hasher, error) {
	switch {
	case params.Memory < hasherMinMemoryKB:
		return nil, errors.New("argon2 memory below minimum")
	case params.Time < hasherMinTime:
		return nil, errors.New("argon2 time cost below minimum")
	case params.Parallelism < hasherMinParallelism:
		return nil, errors.New("argon2 parallelism below minimum")
	case params.SaltLength < hasherMinSaltLength:
		return nil, errors.New("argon2 salt length below minimum")
	case params.KeyLength < hasherMinKeyLength:
		return nil, errors.New("argon2 key length below minimum")
	}
	return &Hasher{params: params}, nil
}

// Hash derives an Argon2id hash of password with a fresh random salt and
// returns it in PHC string format. The password is used byte-for-byte as
// provided; no Unicode normalization is applied.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	key := argon2.IDKey(
		[]byte(password),
		salt,
		h.params.Time,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		hasherAlgorithmID,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Parallelism,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches encoded. The comparison is
// constant time over the derived key.
func (h *Hasher) Verify(password, encoded string) (bool, error) {
	parsed, err := parseHash(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(password),
		parsed.salt,
		parsed.time,
		parsed.memory,
		parsed.parallelism,
		uint32(len(parsed.key)),
	)

	return subtle.ConstantTimeCompare(computed, parsed.key) == 1, nil
}

type parsedHash struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func parseHash(encoded string) (*parsedHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, errors.New("invalid PHC format")
	}
	if parts[1] != hasherAlgorithmID {
		return nil, errors.New("unsupported algorithm")
	}

	version, ok := strings.CutPrefix(parts[2], "v=")
	if !ok {
		return nil, errors.New("missing argon2 version")
	}
	if v, err := strconv.Atoi(version); err != nil || v != argon2.Version {
		return nil, errors.New("unsupported argon2 version")
	}

	var parsed parsedHash
	for _, field := range strings.Split(parts[3], ",") {
		name, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, errors.New("invalid argon2 parameters")
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, errors.New("invalid argon2 parameters")
		}
		switch name {
		case "m":
			parsed.memory = uint32(n)
		case "t":
			parsed.time = uint32(n)
		case "p":
			if n == 0 || n > 255 {
				return nil, errors.New("invalid argon2 parallelism")
			}
			parsed.parallelism = uint8(n)
		default:
			return nil, errors.New("invalid argon2 parameters")
		}
	}
	if parsed.memory == 0 || parsed.time == 0 || parsed.parallelism == 0 {
		return nil, errors.New("incomplete argon2 parameters")
	}

	salt, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil || uint32(len(salt)) < hasherMinSaltLength {
		return nil, errors.New("invalid salt")
	}
	key, err := base64.StdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, errors.New("invalid key")
	}

	parsed.salt = salt
	parsed.key = key
	return &parsed, nil
}
