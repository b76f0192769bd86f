// Package email delivers transactional mail for the bid lifecycle.
package email

import "context"

// Sender delivers the bid lifecycle emails.
type Sender interface {
	// SendBidReceivedEmail tells a project owner a new bid arrived.
	SendBidReceivedEmail(ctx context.Context, toEmail, projectTitle string, priceCents int64, days int, viewURL string) error
	// SendBidAcceptedEmail tells a merchant their bid was accepted.
	SendBidAcceptedEmail(ctx context.Context, toEmail, projectTitle string, priceCents int64, viewURL string) error
	// SendBidRejectedEmail tells a merchant their bid was rejected or expired.
	SendBidRejectedEmail(ctx context.Context, toEmail, projectTitle string, expired bool) error
}
