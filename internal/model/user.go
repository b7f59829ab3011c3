package model

import (
	"time"

	"samaritans-api/pkg/geo"
)

// User is the shared identity record for both actor roles.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	UserType     UserType
	CreatedAt    time.Time
}

// Organization is a recipient account. Location anchors proximity search.
type Organization struct {
	User
	Name         string
	Location     geo.Point
	AddressLine1 string
	AddressLine2 string
	City         string
	Province     string
	PostalCode   string
}

// Samaritan is a donor account.
type Samaritan struct {
	User
	City     string
	Province string
	Rating   float64
}
