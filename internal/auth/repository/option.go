package repository

import "samaritans-api/pkg/geo"

// CreateOrganizationOptions carries the fields for a new organization account.
// PasswordHash is the bcrypt digest, never the plaintext.
type CreateOrganizationOptions struct {
	Username     string
	Email        string
	PasswordHash string

	Name         string
	Location     geo.Point
	AddressLine1 string
	AddressLine2 string
	City         string
	Province     string
	PostalCode   string
}

// CreateSamaritanOptions carries the fields for a new samaritan account.
type CreateSamaritanOptions struct {
	Username     string
	Email        string
	PasswordHash string

	City     string
	Province string
}

// GetOneUserOptions identifies a user. Exactly one field should be set;
// when several are set the first non-empty one in field order wins.
type GetOneUserOptions struct {
	ID       string
	Username string
	Email    string
}
