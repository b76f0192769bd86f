// Package transport defines the profile wire contracts.
package transport

import (
	"time"

	"github.com/google/uuid"

	"maatwerk_backend/internal/merchants/domain"
)

// UpsertProfileRequest creates or replaces the caller's contact profile.
type UpsertProfileRequest struct {
	DisplayName string `json:"displayName" validate:"required,min=1,max=120"`
	CompanyName string `json:"companyName" validate:"max=120"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=20"`
}

// ProfileResponse is the profile read contract.
type ProfileResponse struct {
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	CompanyName string    `json:"companyName,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PublicProfileResponse hides contact details from other users.
type PublicProfileResponse struct {
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	CompanyName string    `json:"companyName,omitempty"`
}

// FromDomain converts a profile to its owner-facing response shape.
func FromDomain(p domain.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		CompanyName: p.CompanyName,
		Email:       p.Email,
		Phone:       p.Phone,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PublicFromDomain converts a profile to its public response shape.
func PublicFromDomain(p domain.Profile) PublicProfileResponse {
	return PublicProfileResponse{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		CompanyName: p.CompanyName,
	}
}
