package contact

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/caatpension/pension-api/internal/models"
)

// Service keeps an append-only log of contact submissions. Submissions are
// never read back through the API; the log exists so a reference number can
// be traced if needed.
type Service struct {
	mu          sync.Mutex
	submissions []models.ContactSubmission
	nextID      int
}

func NewService() *Service {
	return &Service{nextID: 1}
}

// Submit records a contact form and returns a receipt with a generated
// reference number and a response-time estimate based on the inquiry type.
func (s *Service) Submit(form models.ContactForm) models.ContactReceipt {
	inquiryType := form.InquiryType
	if inquiryType == "" {
		inquiryType = "general"
	}

	now := time.Now().UTC()
	ref := fmt.Sprintf("CAAT-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))

	s.mu.Lock()
	s.submissions = append(s.submissions, models.ContactSubmission{
		ID:              s.nextID,
		ReferenceNumber: ref,
		Name:            form.Name,
		Email:           form.Email,
		Phone:           form.Phone,
		Subject:         form.Subject,
		Message:         form.Message,
		MemberID:        form.MemberID,
		InquiryType:     inquiryType,
		SubmittedAt:     now,
		Status:          "submitted",
	})
	s.nextID++
	s.mu.Unlock()

	responseTime := "1-2 business days"
	switch inquiryType {
	case "member_services":
		responseTime = "24 hours"
	case "employer_services":
		responseTime = "2-3 business days"
	}

	return models.ContactReceipt{
		Success:               true,
		Message:               "Thank you for contacting CAAT Pension Plan. We have received your message and will respond shortly.",
		ReferenceNumber:       ref,
		EstimatedResponseTime: responseTime,
	}
}

// Count reports how many submissions have been logged.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submissions)
}

// Info returns the static contact metadata served by GET /contact/info.
func Info() map[string]interface{} {
	return map[string]interface{}{
		"phone": "1-800-668-CAAT (2228)",
		"email": "info@caatpension.ca",
		"address": map[string]string{
			"street":      "250 Yonge Street, Suite 2900",
			"city":        "Toronto",
			"province":    "Ontario",
			"postal_code": "M5B 2L7",
			"country":     "Canada",
		},
		"business_hours": map[string]string{
			"monday_friday": "8:30 AM - 5:00 PM ET",
			"saturday":      "Closed",
			"sunday":        "Closed",
		},
		"member_services_hours": map[string]string{
			"monday_friday": "8:30 AM - 5:00 PM ET",
			"phone":         "1-800-668-CAAT (2228)",
		},
	}
}
