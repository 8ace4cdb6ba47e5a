package rental

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/aoideee/toolrenter/internal/data"
)

// OutputDateLayout is the receipt date format (MM/DD/YY).
const OutputDateLayout = "01/02/06"

// Receipt is the billing breakdown of a finalized agreement.
type Receipt struct {
	Tool              data.Tool       `json:"tool"`
	RentalDays        int             `json:"rental_days"`
	CheckoutDate      civil.Date      `json:"checkout_date"`
	DueDate           civil.Date      `json:"due_date"`
	ChargeDays        int             `json:"charge_days"`
	PreDiscountCharge decimal.Decimal `json:"pre_discount_charge"`
	DiscountPercent   int             `json:"discount_percent"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	FinalCharge       decimal.Decimal `json:"final_charge"`
}

// String renders the receipt, one "Label: value" line per field.
func (r Receipt) String() string {
	lines := []struct {
		label string
		value string
	}{
		{"Tool Code", r.Tool.Code},
		{"Tool Type", r.Tool.Type},
		{"Tool Brand", r.Tool.Brand},
		{"Rental Days", fmt.Sprint(r.RentalDays)},
		{"Checkout Date", FormatDate(r.CheckoutDate)},
		{"Due Date", FormatDate(r.DueDate)},
		{"Daily Rental Charge", FormatCurrency(r.Tool.DailyCharge)},
		{"Charge Days", fmt.Sprint(r.ChargeDays)},
		{"Pre-discount Charge", FormatCurrency(r.PreDiscountCharge)},
		{"Discount Percent", fmt.Sprintf("%d%%", r.DiscountPercent)},
		{"Discount Amount", FormatCurrency(r.DiscountAmount)},
		{"Final Charge", FormatCurrency(r.FinalCharge)},
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.label)
		b.WriteString(": ")
		b.WriteString(l.value)
	}
	return b.String()
}

// FormatDate renders d as MM/DD/YY.
func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format(OutputDateLayout)
}

// FormatCurrency renders amount in US dollars, e.g. $1,234.50. The digits
// come straight from the decimal so large amounts stay exact.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(centsPlaces)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, cents, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}
