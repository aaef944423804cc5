package entity

import "time"

// Pharmacy staff roles. Reporting and notification routes require Manager.
const (
	RoleManager    = "manager"
	RolePharmacist = "pharmacist"
)

// User is a staff account.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
