package domain

import "errors"

// ErrorKind classifies request failures for the transport layer. Anything
// not matched by KindOf is reported as an internal error and the operation
// is treated as not-applied.
type ErrorKind string

const (
	KindConflict   ErrorKind = "CONFLICT"
	KindValidation ErrorKind = "VALIDATION"
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindInternal   ErrorKind = "INTERNAL"
)

var (
	// Conflict
	ErrRoomUnavailable   = errors.New("room is not available")
	ErrRoomOccupied      = errors.New("room has an active rental")
	ErrDuplicateInvoice      = errors.New("rental is already invoiced for this period")
	ErrRentalAlreadyInvoiced = errors.New("rental already has an invoice for this period")
	ErrInvoiceAlreadyPaid = errors.New("invoice is already paid")
	ErrRentalClosed      = errors.New("rental is already closed")

	// Validation
	ErrInvalidRentType     = errors.New("rent type must be DAILY or MONTHLY")
	ErrInvalidDateRange    = errors.New("check-out must not be before check-in")
	ErrInvalidMeterReading = errors.New("meter reading must not be negative")
	ErrInvalidQuantity     = errors.New("extra quantity must be positive")
	ErrInvalidChargeType   = errors.New("charge type must be ONE_TIME or MONTHLY")

	// NotFound
	ErrRoomNotFound     = errors.New("room not found")
	ErrRentalNotFound   = errors.New("rental not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrExtraNotFound    = errors.New("extra not found")
	ErrUserNotFound     = errors.New("user not found")
)

// KindOf maps a domain error to its kind.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrRoomUnavailable),
		errors.Is(err, ErrRoomOccupied),
		errors.Is(err, ErrDuplicateInvoice),
		errors.Is(err, ErrRentalAlreadyInvoiced),
		errors.Is(err, ErrInvoiceAlreadyPaid),
		errors.Is(err, ErrRentalClosed):
		return KindConflict
	case errors.Is(err, ErrInvalidRentType),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidMeterReading),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidChargeType):
		return KindValidation
	case errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrRentalNotFound),
		errors.Is(err, ErrInvoiceNotFound),
		errors.Is(err, ErrCustomerNotFound),
		errors.Is(err, ErrExtraNotFound),
		errors.Is(err, ErrUserNotFound):
		return KindNotFound
	}
	return KindInternal
}
