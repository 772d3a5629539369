package domain

import "errors"

// Roles recognised across the marketplace. Professionals sign as the
// freelancer party; companies sign as the client party.
const (
	RoleAdmin        = "admin"
	RoleCompany      = "company"
	RoleClient       = "client"
	RoleProfessional = "professional"
	RoleFreelancer   = "freelancer"
)

var ErrForbidden = errors.New("access forbidden")
