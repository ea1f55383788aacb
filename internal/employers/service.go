package employers

import (
	"time"

	"github.com/caatpension/pension-api/internal/domain"
	"github.com/caatpension/pension-api/internal/models"
)

// Service serves the seeded employer directory and service catalog. Both
// collections are read-only after construction.
type Service struct {
	employers []models.Employer
	catalog   []models.EmployerOffering
}

func NewService() *Service {
	return &Service{employers: seedEmployers(), catalog: seedCatalog()}
}

func seedEmployers() []models.Employer {
	return []models.Employer{
		{
			ID:            1,
			Name:          "Toronto District School Board",
			Sector:        "Education",
			Status:        "active",
			JoinDate:      time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC),
			EmployeeCount: 15000,
			ContactPerson: "Sarah Johnson",
			ContactEmail:  "pension@tdsb.on.ca",
		},
		{
			ID:            2,
			Name:          "Seneca College",
			Sector:        "Post-Secondary Education",
			Status:        "active",
			JoinDate:      time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC),
			EmployeeCount: 3500,
			ContactPerson: "Michael Chen",
			ContactEmail:  "hr@senecacollege.ca",
		},
		{
			ID:            3,
			Name:          "York Region District School Board",
			Sector:        "Education",
			Status:        "active",
			JoinDate:      time.Date(2020, 2, 10, 0, 0, 0, 0, time.UTC),
			EmployeeCount: 12000,
			ContactPerson: "Lisa Wang",
			ContactEmail:  "benefits@yrdsb.ca",
		},
	}
}

func seedCatalog() []models.EmployerOffering {
	cost := 500.00
	return []models.EmployerOffering{
		{
			ID:          1,
			Name:        "Payroll Integration Support",
			Description: "Technical assistance for integrating pension deductions with your payroll system",
			Category:    "payroll",
			Available:   true,
		},
		{
			ID:          2,
			Name:        "Employee Education Sessions",
			Description: "On-site or virtual pension education sessions for your employees",
			Category:    "education",
			Available:   true,
		},
		{
			ID:          3,
			Name:        "Customized Reporting",
			Description: "Tailored pension reporting to meet your organization's specific needs",
			Category:    "reporting",
			Available:   true,
			Cost:        &cost,
		},
		{
			ID:          4,
			Name:        "HR Support Services",
			Description: "Dedicated HR liaison for pension-related inquiries and support",
			Category:    "support",
			Available:   true,
		},
	}
}

// All returns every participating employer in insertion order.
func (s *Service) All() []models.Employer {
	return s.employers
}

// ByID returns one employer.
func (s *Service) ByID(id int) (models.Employer, error) {
	for _, e := range s.employers {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Employer{}, domain.ErrNotFound
}

// AvailableServices filters the catalog to available entries, preserving
// insertion order.
func (s *Service) AvailableServices() []models.EmployerOffering {
	out := make([]models.EmployerOffering, 0, len(s.catalog))
	for _, o := range s.catalog {
		if o.Available {
			out = append(out, o)
		}
	}
	return out
}
