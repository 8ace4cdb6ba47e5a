// Package rental drafts tool rental agreements and computes their charges.
//
// An Agreement collects the four inputs of a rental through validating
// setters. Finalize turns a complete Agreement into a Receipt; the Agreement
// itself never holds derived values.
package rental

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/aoideee/toolrenter/internal/data"
	"github.com/aoideee/toolrenter/internal/validator"
)

// InputDateLayout is the accepted checkout date format (M/D/YYYY).
const InputDateLayout = "1/2/2006"

// ToolLookup resolves tool codes. *data.Catalog satisfies it.
type ToolLookup interface {
	Lookup(code string) (data.Tool, error)
}

// Input is the raw, unvalidated form of an agreement.
type Input struct {
	ToolCode        string `json:"tool_code"`
	RentalDays      string `json:"rental_days"`
	DiscountPercent string `json:"discount_percent"`
	CheckoutDate    string `json:"checkout_date"`
}

// Agreement is a rental agreement being drafted. The zero value is not
// usable; create one with NewAgreement.
type Agreement struct {
	tools ToolLookup

	tool        data.Tool
	hasTool     bool
	rentalDays  int
	discount    int
	checkout    civil.Date
	hasCheckout bool
}

// NewAgreement starts a draft that resolves tool codes through tools.
func NewAgreement(tools ToolLookup) *Agreement {
	return &Agreement{tools: tools}
}

// SetTool selects the tool to rent by code, ignoring case.
func (a *Agreement) SetTool(code string) error {
	tool, err := a.tools.Lookup(strings.ToUpper(code))
	if err != nil {
		return &FieldError{Field: FieldToolCode, Input: code, Err: ErrInvalidToolCode, cause: err}
	}
	a.tool, a.hasTool = tool, true
	return nil
}

// SetRentalDays sets the rental duration in days, from 1 to MaxRentalDays.
// Only plain digits are accepted.
func (a *Agreement) SetRentalDays(s string) error {
	n, err := parseDigits(s)
	if err != nil || !validator.Between(n, 1, MaxRentalDays) {
		return &FieldError{Field: FieldRentalDays, Input: s, Err: ErrInvalidRentalDays}
	}
	a.rentalDays = n
	return nil
}

// SetDiscount sets the discount percent; it must be within [0, 100].
func (a *Agreement) SetDiscount(s string) error {
	n, err := parseDigits(s)
	if err != nil || !validator.Between(n, 0, 100) {
		return &FieldError{Field: FieldDiscount, Input: s, Err: ErrInvalidDiscount}
	}
	a.discount = n
	return nil
}

// SetCheckoutDate parses a M/D/YYYY checkout date.
func (a *Agreement) SetCheckoutDate(s string) error {
	t, err := time.Parse(InputDateLayout, s)
	if err != nil {
		return &FieldError{Field: FieldCheckoutDate, Input: s, Err: ErrInvalidCheckoutDate}
	}
	a.checkout, a.hasCheckout = civil.DateOf(t), true
	return nil
}

// parseDigits parses s as a non-negative integer without sign or spaces.
func parseDigits(s string) (int, error) {
	if !validator.Matches(s, validator.DigitsRX) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return strconv.Atoi(s)
}

// Tool returns the selected tool and whether one was set.
func (a *Agreement) Tool() (data.Tool, bool) { return a.tool, a.hasTool }

// RentalDays returns the rental duration and whether it was set.
func (a *Agreement) RentalDays() (int, bool) { return a.rentalDays, a.rentalDays > 0 }

// Discount returns the discount percent. It defaults to 0.
func (a *Agreement) Discount() int { return a.discount }

// CheckoutDate returns the checkout date and whether it was set.
func (a *Agreement) CheckoutDate() (civil.Date, bool) { return a.checkout, a.hasCheckout }

// Apply runs every setter against in and collects the rejected fields.
// An empty discount is treated as 0.
func (a *Agreement) Apply(in Input) *validator.Validator {
	v := validator.New()

	discount := in.DiscountPercent
	if !validator.NotBlank(discount) {
		discount = "0"
	}

	fields := []struct {
		key   string
		value string
		set   func(string) error
	}{
		{FieldToolCode, in.ToolCode, a.SetTool},
		{FieldRentalDays, in.RentalDays, a.SetRentalDays},
		{FieldDiscount, discount, a.SetDiscount},
		{FieldCheckoutDate, in.CheckoutDate, a.SetCheckoutDate},
	}
	for _, f := range fields {
		provided := validator.NotBlank(f.value)
		v.Check(provided, f.key, "must be provided")
		if !provided {
			continue
		}
		if err := f.set(f.value); err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				v.AddError(fe.Field, fe.Err.Error())
				continue
			}
			v.AddError(f.key, err.Error())
		}
	}
	return v
}

// Key identifies the agreement's input set, including the selected tool's
// billing policy, and reports whether the agreement is complete. Equal keys
// finalize to equal receipts.
func (a *Agreement) Key() (string, bool) {
	if len(a.missing()) > 0 {
		return "", false
	}
	t := a.tool
	return fmt.Sprintf("%s|%s|%t|%t|%t|%d|%d|%s",
		t.Code, t.DailyCharge.StringFixed(2), t.WeekdayCharge, t.WeekendCharge, t.HolidayCharge,
		a.rentalDays, a.discount, a.checkout), true
}

func (a *Agreement) missing() []string {
	var missing []string
	if !a.hasTool {
		missing = append(missing, FieldToolCode)
	}
	if a.rentalDays < 1 {
		missing = append(missing, FieldRentalDays)
	}
	if !a.hasCheckout {
		missing = append(missing, FieldCheckoutDate)
	}
	return missing
}

// Finalize computes the due date, charge days and charges of a complete
// agreement. It fails with ErrIncomplete when the tool, rental days or
// checkout date is unset. Calling it again with unchanged inputs returns an
// equal Receipt.
func (a *Agreement) Finalize() (Receipt, error) {
	if missing := a.missing(); len(missing) > 0 {
		return Receipt{}, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	due, err := DueDate(a.checkout, a.rentalDays)
	if err != nil {
		return Receipt{}, err
	}

	chargeDays := ChargeDays(a.tool, CountDays(a.checkout, due))
	pre := PreDiscountCharge(chargeDays, a.tool.DailyCharge)
	discount := DiscountAmount(pre, a.discount)

	return Receipt{
		Tool:              a.tool,
		RentalDays:        a.rentalDays,
		CheckoutDate:      a.checkout,
		DueDate:           due,
		ChargeDays:        chargeDays,
		PreDiscountCharge: pre,
		DiscountPercent:   a.discount,
		DiscountAmount:    discount,
		FinalCharge:       FinalCharge(pre, discount),
	}, nil
}
