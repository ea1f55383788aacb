package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/caatpension/pension-api/internal/config"
	"github.com/caatpension/pension-api/internal/domain"
)

// Generate creates a signed JWT access token for the given subject. Extra
// claims are merged into the payload alongside sub/iat/exp.
func Generate(cfg *config.Config, subject string, extra map[string]interface{}, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}

// VerifySubject checks signature and expiry and returns the subject claim.
// Tampered, malformed and expired tokens all collapse to ErrTokenInvalid so
// callers cannot tell the cases apart.
func VerifySubject(cfg *config.Config, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrTokenInvalid
	}
	return sub, nil
}
