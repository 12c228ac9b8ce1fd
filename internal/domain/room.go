package domain

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "AVAILABLE"
	RoomStatusRented      RoomStatus = "RENTED"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
)

// Room is a rentable unit. Rates and the AC surcharge are integral currency
// units; invoices snapshot them at invoicing time, so editing a room never
// alters an issued invoice.
type Room struct {
	ID          int32      `json:"id"`
	RoomNo      string     `json:"room_no"`
	Floor       int32      `json:"floor"`
	HasAC       bool       `json:"has_ac"`
	ACFee       int64      `json:"ac_fee"`
	DailyRate   int64      `json:"daily_rate"`
	MonthlyRate int64      `json:"monthly_rate"`
	Status      RoomStatus `json:"status"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}
