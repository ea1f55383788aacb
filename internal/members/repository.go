package members

import (
	"sync"
	"time"

	"github.com/caatpension/pension-api/internal/domain"
	"github.com/caatpension/pension-api/internal/models"
	"github.com/caatpension/pension-api/internal/passwords"
)

// record pairs the wire-visible member with its credential hash.
type record struct {
	member models.Member
	hash   string
}

// Repository is the in-memory member store. All mutation goes through the
// mutex; ids come from a monotonic counter, never from the slice length.
type Repository struct {
	mu      sync.RWMutex
	records []*record
	nextID  int
	pension []models.PensionInfo
}

func NewRepository() *Repository {
	r := &Repository{nextID: 1}
	r.seed()
	return r
}

func (r *Repository) seed() {
	hash, err := passwords.Hash("password123")
	if err != nil {
		panic(err)
	}
	employerID := 1
	r.records = append(r.records, &record{
		member: models.Member{
			ID:         r.nextID,
			Email:      "john.doe@example.com",
			FirstName:  "John",
			LastName:   "Doe",
			EmployeeID: "EMP001",
			EmployerID: &employerID,
			IsActive:   true,
			CreatedAt:  time.Now().UTC(),
		},
		hash: hash,
	})
	r.pension = append(r.pension, models.PensionInfo{
		MemberID:               r.nextID,
		TotalContributions:     45000.00,
		EmployerContributions:  27000.00,
		MemberContributions:    18000.00,
		EstimatedAnnualPension: 12500.00,
		YearsOfService:         5.5,
		VestingStatus:          "vested",
		LastUpdated:            time.Now().UTC(),
	})
	r.nextID++
}

func (r *Repository) findByEmail(email string) *record {
	for _, rec := range r.records {
		if rec.member.Email == email {
			return rec
		}
	}
	return nil
}

// Create inserts a new member. Fails with ErrConflict when the email is
// already registered.
func (r *Repository) Create(data models.MemberCreate, hash string) (models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByEmail(data.Email) != nil {
		return models.Member{}, domain.ErrConflict
	}

	m := models.Member{
		ID:         r.nextID,
		Email:      data.Email,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		EmployeeID: data.EmployeeID,
		EmployerID: data.EmployerID,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
	}
	r.nextID++
	r.records = append(r.records, &record{member: m, hash: hash})
	return m, nil
}

// GetByEmail returns the member and its credential hash.
func (r *Repository) GetByEmail(email string) (models.Member, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec := r.findByEmail(email)
	if rec == nil {
		return models.Member{}, "", domain.ErrNotFound
	}
	return rec.member, rec.hash, nil
}

// Update applies the non-nil fields of upd to the member looked up by email
// and refreshes updated_at. An email change to an address another member
// holds fails with ErrConflict.
func (r *Repository) Update(email string, upd models.MemberUpdate) (models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.findByEmail(email)
	if rec == nil {
		return models.Member{}, domain.ErrNotFound
	}

	if upd.Email != nil && *upd.Email != rec.member.Email {
		if r.findByEmail(*upd.Email) != nil {
			return models.Member{}, domain.ErrConflict
		}
		rec.member.Email = *upd.Email
	}
	if upd.FirstName != nil {
		rec.member.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		rec.member.LastName = *upd.LastName
	}

	now := time.Now().UTC()
	rec.member.UpdatedAt = &now
	return rec.member, nil
}

// PensionByMemberID looks up the pension record for one member.
func (r *Repository) PensionByMemberID(id int) (models.PensionInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.pension {
		if p.MemberID == id {
			return p, nil
		}
	}
	return models.PensionInfo{}, domain.ErrNotFound
}
