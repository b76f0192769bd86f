// Package transport defines the bid wire contracts.
package transport

import (
	"time"

	"github.com/google/uuid"

	"maatwerk_backend/internal/bids/domain"
	projdomain "maatwerk_backend/internal/projects/domain"
)

// SubmitBidRequest is a merchant's proposal against a project baseline.
type SubmitBidRequest struct {
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	Price     int64     `json:"price" validate:"min=0"`
	Days      int       `json:"days" validate:"min=1"`
	Message   string    `json:"message" validate:"max=2000"`
}

// BidResponse is the bid read contract. The status is always canonical.
type BidResponse struct {
	ID         uuid.UUID  `json:"id"`
	ProjectID  uuid.UUID  `json:"projectId"`
	MerchantID uuid.UUID  `json:"merchantId"`
	Price      int64      `json:"price"`
	Days       int        `json:"days"`
	Message    string     `json:"message,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	DecidedAt  *time.Time `json:"decidedAt,omitempty"`
}

// FromDomain converts a bid to its response shape.
func FromDomain(b domain.Bid) BidResponse {
	return BidResponse{
		ID:         b.ID,
		ProjectID:  b.ProjectID,
		MerchantID: b.MerchantID,
		Price:      b.PriceCents,
		Days:       b.Days,
		Message:    b.Message,
		Status:     projdomain.NormalizeStatus(b.Status),
		CreatedAt:  b.CreatedAt,
		DecidedAt:  b.DecidedAt,
	}
}

// FromDomainList converts a list of bids.
func FromDomainList(bids []domain.Bid) []BidResponse {
	out := make([]BidResponse, len(bids))
	for i, b := range bids {
		out[i] = FromDomain(b)
	}
	return out
}
