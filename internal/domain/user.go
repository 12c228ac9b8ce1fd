package domain

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// User is a login account. Customer accounts carry the customer record they
// belong to; role gating is verified server-side on every request.
type User struct {
	ID           int32  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	CustomerID   *int32 `json:"customer_id,omitempty"`
}
