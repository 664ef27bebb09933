package model

import "time"

// Camp statuses. New proposals start as pending until an admin moderates them.
const (
	CampStatusApproved = "approved"
	CampStatusPending  = "pending"
	CampStatusRejected = "rejected"
)

// CampContact holds the contact details for a camp site.
type CampContact struct {
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Responsible string `json:"responsible"`
}

// Camp is a camp site proposed by a member and moderated by an admin.
type Camp struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	Province    string      `json:"province"`
	Contact     CampContact `json:"contact"`
	Capacity    int         `json:"capacity"`
	Services    []string    `json:"services"`
	Status      string      `json:"status"`
	Images      []string    `json:"images"`
	AddedBy     string      `json:"added_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
