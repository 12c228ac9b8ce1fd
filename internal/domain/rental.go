package domain

type RentType string

const (
	RentTypeDaily   RentType = "DAILY"
	RentTypeMonthly RentType = "MONTHLY"
)

type RentalStatus string

const (
	RentalStatusActive RentalStatus = "ACTIVE"
	RentalStatusClosed RentalStatus = "CLOSED"
)

// Rental links a room and a customer for a term. Check-in/check-out use day
// granularity ("2006-01-02") for DAILY rentals and month granularity
// ("2006-01") for MONTHLY rentals; both are collected at creation time
// (fixed-term lease). A CLOSED rental is terminal and immutable.
type Rental struct {
	ID         int32         `json:"id"`
	RoomID     int32         `json:"room_id"`
	CustomerID int32         `json:"customer_id"`
	RentType   RentType      `json:"rent_type"`
	CheckIn    string        `json:"check_in"`
	CheckOut   string        `json:"check_out"`
	Status     RentalStatus  `json:"status"`
	Extras     []RentalExtra `json:"extras,omitempty"`
	CreatedAt  string        `json:"created_at"`
	UpdatedAt  string        `json:"updated_at"`
}
