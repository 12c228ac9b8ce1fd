package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
)

// InvoiceLine is one billed rental extra.
type InvoiceLine struct {
	ID            int32  `json:"id"`
	InvoiceID     int32  `json:"invoice_id"`
	RentalExtraID int32  `json:"rental_extra_id"`
	Name          string `json:"name"`
	Quantity      int32  `json:"quantity"`
	UnitPrice     int64  `json:"unit_price"`
	Amount        int64  `json:"amount"`
}

// Invoice is one billing event for a rental period.
// Room number, customer name and rent type are snapshots so the invoice
// renders the same regardless of later rental or catalog mutation.
// Immutable once created except for the one-way UNPAID -> PAID transition.
// Invariant: Total == BaseRent + ACFee + WaterFee + ElectricFee + sum(lines).
type Invoice struct {
	ID           int32         `json:"id"`
	InvoiceNo    string        `json:"invoice_no"`
	RentalID     int32         `json:"rental_id"`
	RoomNo       string        `json:"room_no"`
	CustomerID   int32         `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	RentType     RentType      `json:"rent_type"`
	BaseRent     int64         `json:"base_rent"`
	ACFee        int64         `json:"ac_fee"`
	WaterUnit    int64         `json:"water_unit"`
	WaterRate    int64         `json:"water_rate"`
	WaterFee     int64         `json:"water_fee"`
	ElectricUnit int64         `json:"electric_unit"`
	ElectricRate int64         `json:"electric_rate"`
	ElectricFee  int64         `json:"electric_fee"`
	Lines        []InvoiceLine `json:"lines,omitempty"`
	Total        int64         `json:"total"`
	Status       InvoiceStatus `json:"status"`
	PeriodStart  string        `json:"period_start"`
	PeriodEnd    string        `json:"period_end"`
	CreatedAt    time.Time     `json:"created_at"`
	PaidAt       *time.Time    `json:"paid_at,omitempty"`
}

// ExtrasTotal sums the line amounts.
func (i *Invoice) ExtrasTotal() int64 {
	var sum int64
	for _, l := range i.Lines {
		sum += l.Amount
	}
	return sum
}
