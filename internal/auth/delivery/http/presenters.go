package http

import (
	"errors"

	"samaritans-api/internal/auth"
	"samaritans-api/internal/model"
	"samaritans-api/pkg/geo"
)

// --- Request DTOs ---

type locationReq struct {
	Latitude  float64 `json:"latitude"  binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

type signupOrganizationReq struct {
	Username string `json:"username" binding:"required,min=1,max=150"`
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`

	Name string `json:"name" binding:"required,max=255"`

	// Either location {latitude, longitude} or point ("SRID=4326;POINT (lon lat)").
	Location *locationReq `json:"location"`
	Point    string       `json:"point"`

	AddressLine1 string `json:"address_line1" binding:"max=255"`
	AddressLine2 string `json:"address_line2" binding:"max=255"`
	City         string `json:"city" binding:"required,max=100"`
	Province     string `json:"province" binding:"required"`
	PostalCode   string `json:"postal_code" binding:"required"`
}

func (r signupOrganizationReq) validate() error {
	if r.Location == nil && r.Point == "" {
		return errors.New("location or point is required")
	}
	if r.Point != "" {
		if _, err := geo.ParsePoint(r.Point); err != nil {
			return err
		}
	}
	return nil
}

func (r signupOrganizationReq) toInput() auth.SignupOrganizationInput {
	in := auth.SignupOrganizationInput{
		Username:     r.Username,
		Email:        r.Email,
		Password:     r.Password,
		Name:         r.Name,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		Province:     r.Province,
		PostalCode:   r.PostalCode,
	}
	if r.Location != nil {
		in.Location.Lat = r.Location.Latitude
		in.Location.Lon = r.Location.Longitude
	} else if p, err := geo.ParsePoint(r.Point); err == nil {
		in.Location = p
	}
	return in
}

// ---

type signupSamaritanReq struct {
	Username string `json:"username" binding:"required,min=1,max=150"`
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`

	City     string `json:"city" binding:"max=100"`
	Province string `json:"province"`
}

func (r signupSamaritanReq) validate() error { return nil }

func (r signupSamaritanReq) toInput() auth.SignupSamaritanInput {
	return auth.SignupSamaritanInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		City:     r.City,
		Province: r.Province,
	}
}

// ---

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		UserType: string(u.UserType),
	}
}

type signupResp struct {
	User userResp `json:"user"`
}

func (h *handler) newSignupResp(out auth.SignupOutput) signupResp {
	return signupResp{User: newUserResp(out.User)}
}

type loginResp struct {
	User userResp `json:"user"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{User: newUserResp(out.User)}
}

type meResp struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

func newMeResp(sc model.Scope) meResp {
	return meResp{
		UserID:   sc.UserID,
		Username: sc.Username,
		Email:    sc.Email,
		UserType: string(sc.UserType),
	}
}
