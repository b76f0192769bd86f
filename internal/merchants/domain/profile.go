// Package domain holds the contact profile model. Accounts live in an
// external identity service; this module only stores the contact details the
// marketplace needs to display bids and send notifications.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a user's public contact card. Merchants fill it so customers
// can see who is bidding; customers fill it to receive bid notifications.
type Profile struct {
	UserID      uuid.UUID
	DisplayName string
	CompanyName string
	Email       string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
