package jobs

import (
	"context"
	"time"

	"roomstay-backend/internal/logger"
)

// CloseExpiredRentals closes ACTIVE rentals whose check-out period has
// already passed and releases their rooms. Daily rentals expire the day
// after check-out, monthly rentals the month after their final month.
func (jr *JobRunner) CloseExpiredRentals() {
	jr.runWithRecovery("CloseExpiredRentals", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		query := `
			SELECT id, check_out
			FROM rentals
			WHERE status = 'ACTIVE'
			  AND ((rent_type = 'DAILY' AND check_out < $1)
			    OR (rent_type = 'MONTHLY' AND check_out < $2))
		`

		rows, err := jr.db.QueryContext(ctx, query, now.Format("2006-01-02"), now.Format("2006-01"))
		if err != nil {
			logger.Error("Failed to find expired rentals", "error", err)
			return
		}
		defer rows.Close()

		type expired struct {
			ID       int32
			CheckOut string
		}
		var candidates []expired
		for rows.Next() {
			var e expired
			if err := rows.Scan(&e.ID, &e.CheckOut); err != nil {
				logger.Error("Failed to scan expired rental", "error", err)
				continue
			}
			candidates = append(candidates, e)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expired rentals", "error", err)
			return
		}

		count := 0
		for _, e := range candidates {
			// Close releases the room in the same transaction.
			if err := jr.store.RentalRepository.Close(ctx, e.ID, e.CheckOut); err != nil {
				logger.Error("Failed to close expired rental", "rental_id", e.ID, "error", err)
				continue
			}
			logger.Debug("Closed expired rental", "rental_id", e.ID, "check_out", e.CheckOut)
			count++
		}

		logger.Info("Closed expired rentals", "count", count)
	})
}
