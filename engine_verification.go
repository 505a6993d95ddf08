package authcore

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/nicholsonjon/authcore/internal"
)

// EncodeVerificationToken packs a base64-encoded (pepper, token, username)
// triple into the opaque string embedded in emailed links. Field lengths are
// the caller's responsibility; DecodeVerificationToken expects them to match
// the configured pepper length and hash digest size.
func (e *Engine) EncodeVerificationToken(pepper, token, username string) (string, error) {
	if e == nil || e.codec == nil {
		return "", ErrEngineNotReady
	}

	encoded, err := e.codec.Encode(pepper, token, username)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	return encoded, nil
}

// DecodeVerificationToken splits an opaque verification token back into its
// structured triple. The codec re-derives fields only; validating the triple
// against the stored verification record remains with the caller.
func (e *Engine) DecodeVerificationToken(ctx context.Context, encoded string) (VerificationToken, error) {
	if e == nil || e.codec == nil {
		return VerificationToken{}, ErrEngineNotReady
	}

	pepper, token, username, err := e.codec.Decode(encoded)
	if err != nil {
		e.metricInc(MetricTokenDecodeFailed)
		e.emitAudit(ctx, auditEventTokenDecodeFailed, false, "", ErrInvalidToken, nil)
		return VerificationToken{}, errors.Join(ErrInvalidToken, err)
	}

	return VerificationToken{
		Pepper:   pepper,
		Token:    token,
		Username: username,
	}, nil
}

// NewVerificationParts generates fresh base64-encoded pepper and token
// material sized to the codec configuration, the upstream producer of what
// EncodeVerificationToken packs.
func (e *Engine) NewVerificationParts() (pepper, token string, err error) {
	if e == nil || e.codec == nil {
		return "", "", ErrEngineNotReady
	}

	rawPepper, err := internal.RandomBytes(e.codec.PepperLength())
	if err != nil {
		return "", "", err
	}
	rawToken, err := internal.NewVerificationSecret(e.codec.Hash())
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(rawPepper),
		base64.StdEncoding.EncodeToString(rawToken),
		nil
}
