package entities

import "time"

// Volunteer acompanha trail matches
type Volunteer struct {
	ID          uint
	Name        string
	Email       string
	Location    string
	Level       int
	Role        string
	PhoneNumber *string
	Image       *string
	Status      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasImage indica se existe arquivo armazenado para o voluntário
func (v *Volunteer) HasImage() bool {
	return v.Image != nil && *v.Image != ""
}
