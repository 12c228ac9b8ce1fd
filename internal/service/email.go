package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"roomstay-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, body string) error {
	if s.apiKey == "" {
		// No key configured (dev/test); notifications are best-effort.
		logger.Debug("Email sending skipped, no API key", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendRentalConfirmation(ctx context.Context, email, name, roomNo string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental of room %s has been confirmed.\n\nBest regards,\nThe Roomstay Team", name, roomNo)
	return s.send(ctx, email, name, fmt.Sprintf("Rental Confirmed - Room %s", roomNo), body)
}

func (s *emailService) SendInvoiceIssued(ctx context.Context, email, name, invoiceNo string, total int64) error {
	body := fmt.Sprintf("Hello %s,\n\nInvoice %s has been issued for a total of %d.\n\nBest regards,\nThe Roomstay Team", name, invoiceNo, total)
	return s.send(ctx, email, name, fmt.Sprintf("Invoice Issued - %s", invoiceNo), body)
}

func (s *emailService) SendPaymentReceived(ctx context.Context, email, name, invoiceNo string, total int64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour payment of %d for invoice %s has been received. Thank you.\n\nBest regards,\nThe Roomstay Team", name, total, invoiceNo)
	return s.send(ctx, email, name, fmt.Sprintf("Payment Received - %s", invoiceNo), body)
}

func (s *emailService) SendInvoiceReminder(ctx context.Context, email, name, invoiceNo string, total int64) error {
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that invoice %s for a total of %d is still unpaid.\n\nBest regards,\nThe Roomstay Team", name, invoiceNo, total)
	return s.send(ctx, email, name, fmt.Sprintf("Payment Reminder - %s", invoiceNo), body)
}
