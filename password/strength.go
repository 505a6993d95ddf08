package password

import (
	"errors"
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"
)

// Result classifies the outcome of a strength check.
//
// Result instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Result uint8

const (
	// ResultValid is an exported constant or variable used by the account-security core.
	ResultValid Result = iota
	// ResultInsufficientEntropy is an exported constant or variable used by the account-security core.
	ResultInsufficientEntropy
	// ResultTooLong is an exported constant or variable used by the account-security core.
	ResultTooLong
	// ResultBlacklisted is an exported constant or variable used by the account-security core.
	ResultBlacklisted
)

// String describes the string operation and its observable behavior.
func (r Result) String() string {
	switch r {
	case ResultValid:
		return "valid"
	case ResultInsufficientEntropy:
		return "insufficient entropy"
	case ResultTooLong:
		return "too long"
	case ResultBlacklisted:
		return "blacklisted"
	default:
		return "unknown"
	}
}

// Character-class cardinalities of the entropy model.
const (
	spaceDigits      = 10
	spaceLowercase   = 26
	spaceUppercase   = 26
	spacePunctuation = 15
	spaceSymbols     = 19
	spaceNonASCII    = 94
)

// Config tunes the strength validator.
type Config struct {
	MinEntropyBits float64
	MaxLength      int
	// BlacklistPath points at a newline-separated list of disallowed
	// passwords. Empty disables the blacklist check.
	BlacklistPath string
}

// Validator scores password entropy against the character-space model and
// rejects blacklisted or over-long passwords. Safe for concurrent use; the
// blacklist is loaded at most once per Validator.
type Validator struct {
	config    Config
	blacklist func() (map[string]struct{}, error)
}

// NewValidator creates a strength Validator. The blacklist file, if
// configured, is not read until the first validation that reaches the
// blacklist check.
func NewValidator(cfg Config) (*Validator, error) {
	if cfg.MinEntropyBits <= 0 {
		return nil, errors.New("minimum entropy must be positive")
	}
	if cfg.MaxLength <= 0 {
		return nil, errors.New("maximum length must be positive")
	}

	return &Validator{
		config:    cfg,
		blacklist: newBlacklist(cfg.BlacklistPath),
	}, nil
}

// Validate classifies password. The error slot is reserved for blacklist
// load failures; policy outcomes are reported through the Result.
func (v *Validator) Validate(password string) (Result, error) {
	if EntropyBits(password) < v.config.MinEntropyBits {
		return ResultInsufficientEntropy, nil
	}

	if utf8.RuneCountInString(password) > v.config.MaxLength {
		return ResultTooLong, nil
	}

	list, err := v.blacklist()
	if err != nil {
		return ResultValid, fmt.Errorf("password blacklist: %w", err)
	}
	if _, ok := list[password]; ok {
		return ResultBlacklisted, nil
	}

	return ResultValid, nil
}

// EntropyBits estimates password entropy as length * log2(C), where C sums
// the cardinalities of the character classes present. The empty password has
// entropy zero.
func EntropyBits(password string) float64 {
	if password == "" {
		return 0
	}

	var digits, lower, upper, punct, symbol, nonASCII bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= utf8.RuneSelf:
			nonASCII = true
		case unicode.IsPunct(r):
			punct = true
		case unicode.IsSymbol(r):
			symbol = true
		}
	}

	var space float64
	if digits {
		space += spaceDigits
	}
	if lower {
		space += spaceLowercase
	}
	if upper {
		space += spaceUppercase
	}
	if punct {
		space += spacePunctuation
	}
	if symbol {
		space += spaceSymbols
	}
	if nonASCII {
		space += spaceNonASCII
	}
	if space == 0 {
		return 0
	}

	return float64(utf8.RuneCountInString(password)) * math.Log2(space)
}
