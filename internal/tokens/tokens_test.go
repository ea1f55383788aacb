package tokens

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/caatpension/pension-api/internal/config"
	"github.com/caatpension/pension-api/internal/domain"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	return cfg
}

func TestGenerate_ValidAndClaims(t *testing.T) {
	cfg := testConfig("test-secret-32-bytes-should-be-long-enough")

	tokenStr, err := Generate(cfg, "john.doe@example.com", map[string]interface{}{"user_type": "member"}, 2*time.Minute)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// parse and validate
	parsed, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatalf("token should be valid")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims type assertion failed")
	}
	if claims["sub"] != "john.doe@example.com" {
		t.Fatalf("unexpected sub claim: got=%v", claims["sub"])
	}
	if claims["user_type"] != "member" {
		t.Fatalf("unexpected user_type claim: got=%v", claims["user_type"])
	}
}

func TestVerifySubject_RoundTrip(t *testing.T) {
	cfg := testConfig("another-secret-32-bytes-longgggg")
	tokenStr, err := Generate(cfg, "a@b.c", nil, 2*time.Minute)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	sub, err := VerifySubject(cfg, tokenStr)
	if err != nil {
		t.Fatalf("VerifySubject error: %v", err)
	}
	if sub != "a@b.c" {
		t.Fatalf("unexpected subject: %q", sub)
	}
}

func TestVerifySubject_Expired(t *testing.T) {
	cfg := testConfig("another-secret-32-bytes-longgggg")
	tokenStr, err := Generate(cfg, "a@b.c", nil, -1*time.Second)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	_, err = VerifySubject(cfg, tokenStr)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestVerifySubject_WrongSecret(t *testing.T) {
	cfg := testConfig("secret-one-32-bytes-xxxxxxxxxxxxxxxx")
	tokenStr, err := Generate(cfg, "a@b.c", nil, 2*time.Minute)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	_, err = VerifySubject(testConfig("different-secret-xxxxxxxxxxxxxxxx"), tokenStr)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestVerifySubject_Malformed(t *testing.T) {
	cfg := testConfig("x")
	for _, tok := range []string{"not.a.jwt", "", "a.b"} {
		if _, err := VerifySubject(cfg, tok); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", tok, err)
		}
	}
}

func TestVerifySubject_WrongAlgorithm(t *testing.T) {
	// unsigned token must be rejected even if structurally well-formed
	jt := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "a@b.c"})
	tokenStr, err := jt.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}
	if _, err := VerifySubject(testConfig("secret"), tokenStr); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg=none token, got %v", err)
	}
}
