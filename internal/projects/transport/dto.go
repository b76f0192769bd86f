// Package transport defines the project wire contracts.
package transport

import (
	"time"

	"github.com/google/uuid"

	"maatwerk_backend/internal/projects/domain"
	qtransport "maatwerk_backend/internal/quotes/transport"
)

// SubmitProjectRequest creates or resubmits a project from the builder state.
// The quote shape is inlined per the submission contract; the additional
// items ride in the nested items list.
type SubmitProjectRequest struct {
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description" validate:"max=5000"`
	qtransport.QuoteRequest
}

// ProjectResponse is the project read contract. The status is always
// canonical; raw legacy representations never cross this boundary outward.
type ProjectResponse struct {
	ID              uuid.UUID                 `json:"id"`
	OwnerID         uuid.UUID                 `json:"ownerId"`
	Title           string                    `json:"title"`
	Description     string                    `json:"description,omitempty"`
	Total           int64                     `json:"total"`
	Days            int                       `json:"days"`
	Status          string                    `json:"status"`
	BiddingDeadline *time.Time                `json:"biddingDeadline,omitempty"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
	Quote           *qtransport.QuoteResponse `json:"quote,omitempty"`
}

// FromDomain converts a project to its response shape.
func FromDomain(p domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Title:           p.Title,
		Description:     p.Description,
		Total:           p.BaselineTotalCents,
		Days:            p.Days,
		Status:          domain.NormalizeStatus(p.Status),
		BiddingDeadline: p.BiddingDeadline,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FromDomainList converts a list of projects.
func FromDomainList(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = FromDomain(p)
	}
	return out
}
