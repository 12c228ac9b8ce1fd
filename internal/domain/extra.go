package domain

type ChargeType string

const (
	ChargeTypeOneTime ChargeType = "ONE_TIME"
	ChargeTypeMonthly ChargeType = "MONTHLY"
)

// Extra is an immutable catalog entry for an add-on charge (extra bed,
// parking, ...). ONE_TIME extras are billed on the first invoice of a rental
// only; MONTHLY extras on every invoicing cycle.
type Extra struct {
	ID         int32      `json:"id"`
	Name       string     `json:"name"`
	UnitPrice  int64      `json:"unit_price"`
	ChargeType ChargeType `json:"charge_type"`
}

// RentalExtra attaches an Extra to a Rental.
// Name and unit price are snapshots captured when the extra is attached;
// later catalog price changes never touch historical rentals.
type RentalExtra struct {
	ID         int32      `json:"id"`
	RentalID   int32      `json:"rental_id"`
	ExtraID    int32      `json:"extra_id"`
	Name       string     `json:"name"`
	UnitPrice  int64      `json:"unit_price"`
	Quantity   int32      `json:"quantity"`
	ChargeType ChargeType `json:"charge_type"`
	Billed     bool       `json:"billed"`
}
