package auth

import (
	"context"

	"github.com/caatpension/pension-api/internal/config"
	"github.com/caatpension/pension-api/internal/domain"
	"github.com/caatpension/pension-api/internal/models"
	"github.com/caatpension/pension-api/internal/passwords"
	"github.com/caatpension/pension-api/internal/sessions"
	"github.com/caatpension/pension-api/internal/tokens"
)

// account pairs the wire-visible user with its credential hash. The hash
// never leaves this package.
type account struct {
	user models.User
	hash string
}

// Service implements the staff auth flow: login issues a token and registers
// it as active; logout removes it; verify requires both registry presence and
// a structurally valid token.
type Service struct {
	cfg      *config.Config
	registry sessions.Registry
	accounts []*account
}

func NewService(cfg *config.Config, registry sessions.Registry) *Service {
	return &Service{cfg: cfg, registry: registry, accounts: seedAccounts()}
}

func seedAccounts() []*account {
	mk := func(u models.User, password string) *account {
		h, err := passwords.Hash(password)
		if err != nil {
			// bcrypt only fails on absurd cost values; seeding uses the default
			panic(err)
		}
		return &account{user: u, hash: h}
	}
	return []*account{
		mk(models.User{
			ID:        1,
			Email:     "john.doe@example.com",
			FirstName: "John",
			LastName:  "Doe",
			IsActive:  true,
			UserType:  "member",
		}, "password123"),
		mk(models.User{
			ID:        2,
			Email:     "admin@caatpension.ca",
			FirstName: "Admin",
			LastName:  "User",
			IsActive:  true,
			UserType:  "admin",
		}, "admin123"),
	}
}

func (s *Service) findByEmail(email string) *account {
	for _, a := range s.accounts {
		if a.user.Email == email {
			return a
		}
	}
	return nil
}

// Login authenticates by email and password and returns a registered access
// token. Unknown email, wrong password and inactive accounts all fail with
// the same ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Token, error) {
	acct := s.findByEmail(email)
	if acct == nil || !passwords.Verify(password, acct.hash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !acct.user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	ttl := s.cfg.JWT.AccessTokenTTL
	access, err := tokens.Generate(s.cfg, acct.user.Email, map[string]interface{}{"user_type": acct.user.UserType}, ttl)
	if err != nil {
		return nil, err
	}
	if err := s.registry.Activate(ctx, access, ttl); err != nil {
		return nil, err
	}
	return &models.Token{
		AccessToken: access,
		TokenType:   "bearer",
		ExpiresIn:   int(ttl.Seconds()),
	}, nil
}

// Logout removes the token from the active registry. A token the registry
// does not hold fails with ErrTokenInvalid.
func (s *Service) Logout(ctx context.Context, token string) error {
	err := s.registry.Deactivate(ctx, token)
	if err == domain.ErrNotActive {
		return domain.ErrTokenInvalid
	}
	return err
}

// Verify succeeds only when the token is registry-active AND passes codec
// verification. A registered token that fails the codec check is discarded
// from the registry before the failure is reported.
func (s *Service) Verify(ctx context.Context, token string) (*models.User, error) {
	active, err := s.registry.IsActive(ctx, token)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, domain.ErrTokenInvalid
	}

	email, err := tokens.VerifySubject(s.cfg, token)
	if err != nil {
		_ = s.registry.Discard(ctx, token)
		return nil, domain.ErrTokenInvalid
	}

	acct := s.findByEmail(email)
	if acct == nil {
		return nil, domain.ErrTokenInvalid
	}
	u := acct.user
	return &u, nil
}
