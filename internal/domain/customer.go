package domain

// Customer is an opaque reference from the rental core's point of view;
// only the name is denormalized onto invoices.
type Customer struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IDCardNo string `json:"id_card_no"`
}
