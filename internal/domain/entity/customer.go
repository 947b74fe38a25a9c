// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Customer is a tracked customer record. CurrentStage is never empty once the
// customer exists.
type Customer struct {
	ID           int64      `json:"id"` // System-assigned identifier.
	FirstName    string     `json:"first_name,omitempty"`
	LastName     string     `json:"last_name,omitempty"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Segment      string     `json:"segment,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	CurrentStage Stage      `json:"current_stage"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CustomerDetails are the descriptive attributes supplied at registration.
type CustomerDetails struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Segment     string
	Gender      string
	DateOfBirth *time.Time
}

// NewCustomer builds a customer at the NEW stage.
func NewCustomer(details CustomerDetails) *Customer {
	now := time.Now().UTC()

	return &Customer{
		FirstName:    details.FirstName,
		LastName:     details.LastName,
		Email:        details.Email,
		Phone:        details.Phone,
		Segment:      details.Segment,
		Gender:       details.Gender,
		DateOfBirth:  details.DateOfBirth,
		CurrentStage: StageNew,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MoveTo sets the current stage and reports the stage it replaced.
func (c *Customer) MoveTo(stage Stage) (previous Stage) {
	previous = c.CurrentStage
	c.CurrentStage = stage
	c.UpdatedAt = time.Now().UTC()

	return previous
}
