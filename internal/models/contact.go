package models

import "time"

// ContactForm is an inbound contact submission.
type ContactForm struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject" binding:"required"`
	Message     string `json:"message" binding:"required"`
	MemberID    string `json:"member_id"`
	InquiryType string `json:"inquiry_type"` // general, member_services, employer_services
}

// ContactSubmission is the stored record for a submitted form.
type ContactSubmission struct {
	ID              int       `json:"id"`
	ReferenceNumber string    `json:"reference_number"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Subject         string    `json:"subject"`
	Message         string    `json:"message"`
	MemberID        string    `json:"member_id,omitempty"`
	InquiryType     string    `json:"inquiry_type"`
	SubmittedAt     time.Time `json:"submitted_at"`
	Status          string    `json:"status"`
}

// ContactReceipt acknowledges a submission.
type ContactReceipt struct {
	Success               bool   `json:"success"`
	Message               string `json:"message"`
	ReferenceNumber       string `json:"reference_number"`
	EstimatedResponseTime string `json:"estimated_response_time"`
}
