package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender delivers verification emails through the Resend API. The
// raw token is embedded in a confirmation link under AppBaseURL.
type ResendEmailSender struct {
	Client      *resend.Client
	From        string
	AppBaseURL  string
	ConfirmPath string
}

func NewResendEmailSender(apiKey string, from string, appBaseURL string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendEmailSender{}
	}
	return &ResendEmailSender{
		Client:      resend.NewClient(apiKey),
		From:        from,
		AppBaseURL:  strings.TrimRight(appBaseURL, "/"),
		ConfirmPath: "/auth/confirm-email",
	}
}

func (s *ResendEmailSender) SendVerificationEmail(ctx context.Context, email string, token string) error {
	if s.Client == nil {
		return errors.New("email sender not configured")
	}
	link := s.buildURL(token)
	params := &resend.SendEmailRequest{
		From:    s.From,
		To:      []string{email},
		Subject: "Verify your email",
		Html:    fmt.Sprintf("<p>Click to verify your email:</p><p><a href=\"%s\">Verify Email</a></p>", link),
		Text:    fmt.Sprintf("Verify your email: %s", link),
	}
	_, err := s.Client.Emails.Send(params)
	return err
}

func (s *ResendEmailSender) buildURL(token string) string {
	base := strings.TrimRight(s.AppBaseURL, "/")
	if base == "" {
		return token
	}
	path := s.ConfirmPath
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s%s?token=%s", base, path, token)
}
