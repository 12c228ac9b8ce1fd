package jobs

import (
	"context"

	"roomstay-backend/internal/logger"
)

// SendInvoiceReminders emails every customer that still has an UNPAID
// invoice. Customers without an email address on file are skipped.
func (jr *JobRunner) SendInvoiceReminders() {
	jr.runWithRecovery("SendInvoiceReminders", func() {
		ctx := context.Background()

		invoices, err := jr.store.InvoiceRepository.ListUnpaid(ctx)
		if err != nil {
			logger.Error("Failed to list unpaid invoices", "error", err)
			return
		}

		count := 0
		for _, inv := range invoices {
			customer, err := jr.store.CustomerRepository.GetByID(ctx, inv.CustomerID)
			if err != nil {
				logger.Error("Failed to load customer for reminder", "invoice_id", inv.ID, "customer_id", inv.CustomerID, "error", err)
				continue
			}
			if customer.Email == "" {
				logger.Debug("Skipping reminder, customer has no email", "invoice_id", inv.ID, "customer_id", customer.ID)
				continue
			}
			if err := jr.services.Email.SendInvoiceReminder(ctx, customer.Email, customer.Name, inv.InvoiceNo, inv.Total); err != nil {
				logger.Error("Failed to send invoice reminder", "invoice_id", inv.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent invoice reminders", "count", count)
	})
}
