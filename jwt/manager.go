package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SigningMethod names a supported symmetric signing algorithm.
//
// SigningMethod instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SigningMethod string

const (
	// MethodHS256 is an exported constant or variable used by the account-security core.
	MethodHS256 SigningMethod = "hs256"
	// MethodHS384 is an exported constant or variable used by the account-security core.
	MethodHS384 SigningMethod = "hs384"
	// MethodHS512 is an exported constant or variable used by the account-security core.
	MethodHS512 SigningMethod = "hs512"
)

const minSecretBytes = 32

// Config defines the session-credential parameters.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Issuer        string
	Audience      string
	Expiry        time.Duration
	Secret        []byte
	SigningMethod SigningMethod

	// Now anchors time-bound claim validation; nil means time.Now.
	Now func() time.Time
}

// SessionClaims carries the identity claims of a session credential.
//
// SessionClaims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionClaims struct {
	Name   string `json:"name,omitempty"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session credentials for one configuration.
//
// Manager instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Manager struct {
	config Config
	method jwt.SigningMethod
}

// NewManager validates the configuration. Missing secrets or an unsupported
// algorithm fail here, never per call.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Expiry <= 0 {
		return nil, errors.New("invalid expiry configuration")
	}
	if len(cfg.Secret) < minSecretBytes {
		return nil, fmt.Errorf("signing secret must be at least %d bytes", minSecretBytes)
	}
	if strings.TrimSpace(cfg.Issuer) == "" {
		return nil, errors.New("issuer is required")
	}
	if strings.TrimSpace(cfg.Audience) == "" {
		return nil, errors.New("audience is required")
	}

	var method jwt.SigningMethod
	switch cfg.SigningMethod {
	case MethodHS256, "":
		method = jwt.SigningMethodHS256
	case MethodHS384:
		method = jwt.SigningMethodHS384
	case MethodHS512:
		method = jwt.SigningMethodHS512
	default:
		return nil, errors.New("unsupported signing method")
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Manager{config: cfg, method: method}, nil
}

// Expiry returns the configured default credential lifetime.
func (m *Manager) Expiry() time.Duration {
	return m.config.Expiry
}

// Issue signs a credential with subject username and the given identity
// claims, valid from now until expiresAt. Pure given its inputs; no I/O.
func (m *Manager) Issue(userID, displayName, username string, now, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		Name:   displayName,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    m.config.Issuer,
			Audience:  jwt.ClaimStrings{m.config.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	return jwt.NewWithClaims(m.method, claims).SignedString(m.config.Secret)
}

// Parse verifies the signature, algorithm, issuer, audience, and time
// bounds of token and returns its claims.
func (m *Manager) Parse(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return m.config.Secret, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.config.Now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
