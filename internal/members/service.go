package members

import (
	"errors"

	"github.com/caatpension/pension-api/internal/config"
	"github.com/caatpension/pension-api/internal/domain"
	"github.com/caatpension/pension-api/internal/models"
	"github.com/caatpension/pension-api/internal/passwords"
	"github.com/caatpension/pension-api/internal/tokens"
)

// Service implements the member-facing flow. Member login issues bare JWTs
// with no active-set registration: unlike the staff flow there is no logout,
// and a member token stays usable until it expires.
type Service struct {
	cfg  *config.Config
	repo *Repository
}

func NewService(cfg *config.Config, repo *Repository) *Service {
	return &Service{cfg: cfg, repo: repo}
}

// Register creates a new member account. The returned record never carries
// the password or its hash.
func (s *Service) Register(data models.MemberCreate) (models.Member, error) {
	hash, err := passwords.Hash(data.Password)
	if err != nil {
		return models.Member{}, err
	}
	return s.repo.Create(data, hash)
}

// Login authenticates a member and returns a signed access token. Unknown
// email, wrong password and inactive accounts collapse to
// ErrInvalidCredentials.
func (s *Service) Login(email, password string) (string, error) {
	m, hash, err := s.repo.GetByEmail(email)
	if err != nil || !passwords.Verify(password, hash) {
		return "", domain.ErrInvalidCredentials
	}
	if !m.IsActive {
		return "", domain.ErrInvalidCredentials
	}
	return tokens.Generate(s.cfg, m.Email, nil, s.cfg.JWT.AccessTokenTTL)
}

// memberByToken resolves the token subject to a member record. Token
// failures and a missing member both surface as ErrTokenInvalid, matching
// the 401 the member endpoints return in either case.
func (s *Service) memberByToken(token string) (models.Member, error) {
	email, err := tokens.VerifySubject(s.cfg, token)
	if err != nil {
		return models.Member{}, domain.ErrTokenInvalid
	}
	m, _, err := s.repo.GetByEmail(email)
	if err != nil {
		return models.Member{}, domain.ErrTokenInvalid
	}
	return m, nil
}

// ProfileByToken returns the authenticated member's record.
func (s *Service) ProfileByToken(token string) (models.Member, error) {
	return s.memberByToken(token)
}

// UpdateProfileByToken applies a partial update to the authenticated
// member's record.
func (s *Service) UpdateProfileByToken(token string, upd models.MemberUpdate) (models.Member, error) {
	m, err := s.memberByToken(token)
	if err != nil {
		return models.Member{}, err
	}
	return s.repo.Update(m.Email, upd)
}

// PensionInfoByToken returns the authenticated member's pension summary.
// A member without a pension record yields ErrNotFound.
func (s *Service) PensionInfoByToken(token string) (models.PensionInfo, error) {
	m, err := s.memberByToken(token)
	if err != nil {
		return models.PensionInfo{}, err
	}
	p, err := s.repo.PensionByMemberID(m.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return models.PensionInfo{}, domain.ErrNotFound
		}
		return models.PensionInfo{}, err
	}
	return p, nil
}
