package models

import "time"

// Employer is a participating employer organization.
type Employer struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Sector        string    `json:"sector"`
	Status        string    `json:"status"`
	JoinDate      time.Time `json:"join_date"`
	EmployeeCount int       `json:"employee_count"`
	ContactPerson string    `json:"contact_person,omitempty"`
	ContactEmail  string    `json:"contact_email,omitempty"`
}

// EmployerOffering is an entry in the employer service catalog (distinct
// from the Employer entity itself).
type EmployerOffering struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Available   bool     `json:"available"`
	Cost        *float64 `json:"cost"`
}
