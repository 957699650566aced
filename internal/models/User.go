package models

import "time"

// Role values the backend issues inside user records and token claims.
const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
	RoleAdmin    = "admin"
)

// Account status values for admin-managed users.
const (
	UserActive    = "active"
	UserInactive  = "inactive"
	UserSuspended = "suspended"
)

// User is both the authenticated principal and the admin-managed account
// record. The backend assigns the id; the client never invents one.
type User struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"` // "customer", "driver", "admin"
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// RecordID implements the collection record contract.
func (u User) RecordID() string { return u.ID }
