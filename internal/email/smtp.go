package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"

	"maatwerk_backend/platform/config"
)

// SMTPSender implements Sender over a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender from the email configuration.
func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
	}
}

// Compile-time check that SMTPSender implements Sender.
var _ Sender = (*SMTPSender)(nil)

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// SendBidReceivedEmail tells a project owner a new bid arrived.
func (s *SMTPSender) SendBidReceivedEmail(ctx context.Context, toEmail, projectTitle string, priceCents int64, days int, viewURL string) error {
	content, err := renderEmailTemplate("bid_received.html", bidReceivedEmailData{
		baseEmailData: baseEmailData{
			Title:    subjectBidReceived,
			Heading:  "Nieuw bod ontvangen",
			CTALabel: "Bekijk het bod",
			CTAURL:   viewURL,
		},
		ProjectTitle:   projectTitle,
		PriceFormatted: formatCurrencyEUR(priceCents),
		Days:           days,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subjectBidReceived, content)
}

// SendBidAcceptedEmail tells a merchant their bid was accepted.
func (s *SMTPSender) SendBidAcceptedEmail(ctx context.Context, toEmail, projectTitle string, priceCents int64, viewURL string) error {
	content, err := renderEmailTemplate("bid_accepted.html", bidAcceptedEmailData{
		baseEmailData: baseEmailData{
			Title:    subjectBidAccepted,
			Heading:  "Bod geaccepteerd",
			CTALabel: "Bekijk het project",
			CTAURL:   viewURL,
		},
		ProjectTitle:   projectTitle,
		PriceFormatted: formatCurrencyEUR(priceCents),
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subjectBidAccepted, content)
}

// SendBidRejectedEmail tells a merchant their bid was rejected or expired.
func (s *SMTPSender) SendBidRejectedEmail(ctx context.Context, toEmail, projectTitle string, expired bool) error {
	subject := subjectBidRejected
	heading := "Bod afgewezen"
	if expired {
		subject = subjectBidExpired
		heading = "Bod verlopen"
	}

	content, err := renderEmailTemplate("bid_rejected.html", bidRejectedEmailData{
		baseEmailData: baseEmailData{Title: subject, Heading: heading},
		ProjectTitle:  projectTitle,
		Expired:       expired,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}
