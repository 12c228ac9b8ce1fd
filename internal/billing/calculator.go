// Package billing derives an invoice breakdown from a rental snapshot and
// metered readings. It is pure computation: no storage access, no clock other
// than the one passed in, exact integer arithmetic throughout.
package billing

import (
	"time"

	"github.com/google/uuid"

	"roomstay-backend/internal/domain"
)

// Rates are the authoritative per-unit utility prices, configured server-side.
// Clients never supply or imply a rate.
type Rates struct {
	Water    int64
	Electric int64
}

// MeterReadings are customer-reported consumption units for the period.
type MeterReadings struct {
	WaterUnits    int64
	ElectricUnits int64
}

// Period returns the billing span an invoice for the rental would cover now:
// a daily rental has a single span (check-in .. check-out), a monthly rental
// is billed per calendar month.
func Period(rental *domain.Rental, now time.Time) (start, end string) {
	if rental.RentType == domain.RentTypeDaily {
		return rental.CheckIn, rental.CheckOut
	}
	month := now.UTC().Format("2006-01")
	return month, month
}

// Calculate produces a fully populated UNPAID invoice for the rental plus the
// ids of the one-time extras it bills, which the caller must mark billed in
// the same transaction that persists the invoice.
//
// Utility fees apply to monthly rentals only; for daily rentals both fees are
// forced to zero regardless of the supplied readings, because the client is
// not trusted to zero them.
func Calculate(room *domain.Room, rental *domain.Rental, customer *domain.Customer, readings MeterReadings, rates Rates, now time.Time) (*domain.Invoice, []int32, error) {
	var baseRent int64
	switch rental.RentType {
	case domain.RentTypeDaily:
		baseRent = room.DailyRate
	case domain.RentTypeMonthly:
		baseRent = room.MonthlyRate
	default:
		return nil, nil, domain.ErrInvalidRentType
	}

	var acFee int64
	if room.HasAC {
		acFee = room.ACFee
	}

	var waterFee, electricFee int64
	var waterUnit, electricUnit int64
	if rental.RentType == domain.RentTypeMonthly {
		if readings.WaterUnits < 0 || readings.ElectricUnits < 0 {
			return nil, nil, domain.ErrInvalidMeterReading
		}
		waterUnit = readings.WaterUnits
		electricUnit = readings.ElectricUnits
		waterFee = waterUnit * rates.Water
		electricFee = electricUnit * rates.Electric
	}

	lines := []domain.InvoiceLine{}
	var billedOneTime []int32
	var extrasTotal int64
	for _, ex := range rental.Extras {
		if ex.ChargeType == domain.ChargeTypeOneTime {
			if ex.Billed {
				// Already billed on an earlier invoice for this rental.
				continue
			}
			billedOneTime = append(billedOneTime, ex.ID)
		}
		amount := int64(ex.Quantity) * ex.UnitPrice
		lines = append(lines, domain.InvoiceLine{
			RentalExtraID: ex.ID,
			Name:          ex.Name,
			Quantity:      ex.Quantity,
			UnitPrice:     ex.UnitPrice,
			Amount:        amount,
		})
		extrasTotal += amount
	}

	periodStart, periodEnd := Period(rental, now)

	inv := &domain.Invoice{
		InvoiceNo:    uuid.NewString(),
		RentalID:     rental.ID,
		RoomNo:       room.RoomNo,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		RentType:     rental.RentType,
		BaseRent:     baseRent,
		ACFee:        acFee,
		WaterUnit:    waterUnit,
		WaterRate:    rates.Water,
		WaterFee:     waterFee,
		ElectricUnit: electricUnit,
		ElectricRate: rates.Electric,
		ElectricFee:  electricFee,
		Lines:        lines,
		Total:        baseRent + acFee + waterFee + electricFee + extrasTotal,
		Status:       domain.InvoiceStatusUnpaid,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		CreatedAt:    now,
	}
	return inv, billedOneTime, nil
}
