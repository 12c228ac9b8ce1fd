package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roomstay-backend/internal/domain"
)

var testRates = Rates{Water: 3, Electric: 5}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:          1,
		RoomNo:      "301",
		HasAC:       true,
		ACFee:       120,
		DailyRate:   200,
		MonthlyRate: 3000,
		Status:      domain.RoomStatusRented,
	}
}

func testCustomer() *domain.Customer {
	return &domain.Customer{ID: 7, Name: "Wang Lei"}
}

func TestCalculate_MonthlyWithUtilities(t *testing.T) {
	rental := &domain.Rental{
		ID:         11,
		RoomID:     1,
		CustomerID: 7,
		RentType:   domain.RentTypeMonthly,
		CheckIn:    "2026-01",
		CheckOut:   "2026-06",
		Status:     domain.RentalStatusActive,
	}
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	inv, billed, err := Calculate(testRoom(), rental, testCustomer(), MeterReadings{WaterUnits: 10, ElectricUnits: 20}, testRates, now)
	assert.NoError(t, err)
	assert.Empty(t, billed)

	assert.Equal(t, int64(3000), inv.BaseRent)
	assert.Equal(t, int64(120), inv.ACFee)
	assert.Equal(t, int64(30), inv.WaterFee)
	assert.Equal(t, int64(100), inv.ElectricFee)
	assert.Equal(t, int64(3250), inv.Total)
	assert.Equal(t, "2026-03", inv.PeriodStart)
	assert.Equal(t, "2026-03", inv.PeriodEnd)
	assert.Equal(t, domain.InvoiceStatusUnpaid, inv.Status)
	assert.Equal(t, "301", inv.RoomNo)
	assert.Equal(t, "Wang Lei", inv.CustomerName)
	assert.NotEmpty(t, inv.InvoiceNo)
}

func TestCalculate_DailyIgnoresUtilities(t *testing.T) {
	rental := &domain.Rental{
		ID:       12,
		RentType: domain.RentTypeDaily,
		CheckIn:  "2026-03-10",
		CheckOut: "2026-03-14",
	}
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// Readings are supplied but must not produce a fee on a daily rental.
	inv, _, err := Calculate(testRoom(), rental, testCustomer(), MeterReadings{WaterUnits: 10, ElectricUnits: 20}, testRates, now)
	assert.NoError(t, err)

	assert.Equal(t, int64(200), inv.BaseRent)
	assert.Equal(t, int64(0), inv.WaterFee)
	assert.Equal(t, int64(0), inv.ElectricFee)
	assert.Equal(t, int64(0), inv.WaterUnit)
	assert.Equal(t, int64(0), inv.ElectricUnit)
	assert.Equal(t, int64(320), inv.Total)
	assert.Equal(t, "2026-03-10", inv.PeriodStart)
	assert.Equal(t, "2026-03-14", inv.PeriodEnd)
}

func TestCalculate_DailyNoACIsFlatRate(t *testing.T) {
	room := &domain.Room{RoomNo: "102", DailyRate: 500}
	rental := &domain.Rental{RentType: domain.RentTypeDaily, CheckIn: "2026-03-10", CheckOut: "2026-03-12"}

	inv, _, err := Calculate(room, rental, testCustomer(), MeterReadings{WaterUnits: 10, ElectricUnits: 20}, testRates, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(500), inv.Total)
}

func TestCalculate_NoACRoomSkipsACFee(t *testing.T) {
	room := testRoom()
	room.HasAC = false
	rental := &domain.Rental{RentType: domain.RentTypeMonthly, CheckIn: "2026-01", CheckOut: "2026-02"}

	inv, _, err := Calculate(room, rental, testCustomer(), MeterReadings{}, testRates, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), inv.ACFee)
	assert.Equal(t, int64(3000), inv.Total)
}

func TestCalculate_Extras(t *testing.T) {
	rental := &domain.Rental{
		ID:       13,
		RentType: domain.RentTypeMonthly,
		CheckIn:  "2026-01",
		CheckOut: "2026-06",
		Extras: []domain.RentalExtra{
			{ID: 1, Name: "Cleaning", UnitPrice: 50, Quantity: 2, ChargeType: domain.ChargeTypeMonthly},
			{ID: 2, Name: "Deposit", UnitPrice: 500, Quantity: 1, ChargeType: domain.ChargeTypeOneTime},
			{ID: 3, Name: "Key card", UnitPrice: 20, Quantity: 1, ChargeType: domain.ChargeTypeOneTime, Billed: true},
		},
	}

	inv, billed, err := Calculate(testRoom(), rental, testCustomer(), MeterReadings{}, testRates, time.Now())
	assert.NoError(t, err)

	// The already billed one-time extra is excluded entirely.
	assert.Len(t, inv.Lines, 2)
	assert.Equal(t, []int32{2}, billed)
	assert.Equal(t, int64(100), inv.Lines[0].Amount)
	assert.Equal(t, int64(500), inv.Lines[1].Amount)
	assert.Equal(t, int64(3000+120+100+500), inv.Total)
}

func TestCalculate_ExtrasTotalMatchesLines(t *testing.T) {
	rental := &domain.Rental{
		RentType: domain.RentTypeMonthly,
		CheckIn:  "2026-01",
		CheckOut: "2026-06",
		Extras: []domain.RentalExtra{
			{ID: 1, Name: "Cleaning", UnitPrice: 50, Quantity: 3, ChargeType: domain.ChargeTypeMonthly},
			{ID: 2, Name: "Parking", UnitPrice: 150, Quantity: 1, ChargeType: domain.ChargeTypeMonthly},
		},
	}

	inv, _, err := Calculate(testRoom(), rental, testCustomer(), MeterReadings{WaterUnits: 4, ElectricUnits: 6}, testRates, time.Now())
	assert.NoError(t, err)

	var lineSum int64
	for _, l := range inv.Lines {
		lineSum += l.Amount
	}
	assert.Equal(t, lineSum, inv.ExtrasTotal())
	assert.Equal(t, inv.BaseRent+inv.ACFee+inv.WaterFee+inv.ElectricFee+lineSum, inv.Total)
}

func TestCalculate_NegativeMeterReading(t *testing.T) {
	rental := &domain.Rental{RentType: domain.RentTypeMonthly, CheckIn: "2026-01", CheckOut: "2026-02"}

	_, _, err := Calculate(testRoom(), rental, testCustomer(), MeterReadings{WaterUnits: -1}, testRates, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidMeterReading)

	_, _, err = Calculate(testRoom(), rental, testCustomer(), MeterReadings{ElectricUnits: -5}, testRates, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidMeterReading)
}

func TestCalculate_UnknownRentType(t *testing.T) {
	rental := &domain.Rental{RentType: domain.RentType("WEEKLY")}

	_, _, err := Calculate(testRoom(), rental, testCustomer(), MeterReadings{}, testRates, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidRentType)
}

func TestPeriod(t *testing.T) {
	daily := &domain.Rental{RentType: domain.RentTypeDaily, CheckIn: "2026-03-10", CheckOut: "2026-03-14"}
	start, end := Period(daily, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-10", start)
	assert.Equal(t, "2026-03-14", end)

	monthly := &domain.Rental{RentType: domain.RentTypeMonthly, CheckIn: "2026-01", CheckOut: "2026-06"}
	start, end = Period(monthly, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-05", start)
	assert.Equal(t, "2026-05", end)
}
