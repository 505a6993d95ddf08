package authcore

import (
	"context"

	"github.com/nicholsonjon/authcore/password"
)

// ValidatePassword classifies a candidate password against the configured
// strength policy: entropy first, then maximum length, then the blacklist.
// Policy outcomes come back in the Result; the error slot is reserved for a
// blacklist load failure.
func (e *Engine) ValidatePassword(ctx context.Context, candidate string) (password.Result, error) {
	if e == nil || e.validator == nil {
		return password.ResultValid, ErrEngineNotReady
	}

	result, err := e.validator.Validate(candidate)
	if err != nil {
		return result, err
	}

	if result != password.ResultValid {
		e.metricInc(MetricPasswordRejected)
		e.emitAudit(ctx, auditEventPasswordRejected, false, "", nil, func() map[string]string {
			return map[string]string{
				"reason": result.String(),
			}
		})
	}

	return result, nil
}

// HashPassword hashes an accepted password with the configured Argon2id
// parameters. Callers run ValidatePassword first; Hash does not re-check
// policy.
func (e *Engine) HashPassword(candidate string) (string, error) {
	if e == nil || e.hasher == nil {
		return "", ErrEngineNotReady
	}
	return e.hasher.Hash(candidate)
}

// VerifyPassword reports whether candidate matches the stored hash.
func (e *Engine) VerifyPassword(candidate, encodedHash string) (bool, error) {
	if e == nil || e.hasher == nil {
		return false, ErrEngineNotReady
	}
	return e.hasher.Verify(candidate, encodedHash)
}
