package email

const (
	subjectBidReceived = "Nieuw bod op uw project"
	subjectBidAccepted = "Uw bod is geaccepteerd"
	subjectBidRejected = "Uw bod is afgewezen"
	subjectBidExpired  = "Uw bod is verlopen"
)
