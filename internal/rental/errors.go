package rental

import (
	"errors"
	"fmt"
)

// Field names, shared by FieldError and the validator keys.
const (
	FieldToolCode     = "tool_code"
	FieldRentalDays   = "rental_days"
	FieldDiscount     = "discount_percent"
	FieldCheckoutDate = "checkout_date"
)

var (
	ErrInvalidToolCode     = errors.New("tool code does not match a tool available for rent")
	ErrInvalidRentalDays   = errors.New("rental days must be a whole number between 1 and 36500")
	ErrInvalidDiscount     = errors.New("discount percent must be a whole number between 0 and 100")
	ErrInvalidCheckoutDate = errors.New("checkout date must be a valid date in M/D/YYYY format")

	// ErrIncomplete is returned by Finalize when a required field is unset.
	ErrIncomplete = errors.New("rental agreement not complete")
)

// FieldError is a rejected input for one agreement field.
type FieldError struct {
	Field string // one of the Field* constants
	Input string // the raw value that was rejected
	Err   error  // one of the ErrInvalid* sentinels
	cause error
}

func (e *FieldError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s %q: %v: %v", e.Field, e.Input, e.Err, e.cause)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Input, e.Err)
}

func (e *FieldError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}
