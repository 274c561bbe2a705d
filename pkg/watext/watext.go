package watext

import (
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted for delivery dates.
const DateLayout = "2006-01-02"

// DefaultRefPrefix is the purchase order reference prefix.
const DefaultRefPrefix = "SR"

// Line is one validated order line: a denormalized snapshot of a catalog
// item plus the quantity the outlet asked for.
type Line struct {
	Name string
	Qty  decimal.Decimal
	Unit string
}

// DigitsOnly strips everything but digits from a phone number, which is the
// only form wa.me accepts. Empty input yields an empty string.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Reference builds a human-readable purchase order reference such as
// "SR-2026-08-31-1405" from the caller's clock. References are not unique;
// two orders placed within the same minute share one.
func Reference(prefix string, now time.Time) string {
	return prefix + "-" + now.Format("2006-01-02-1504")
}

// Order holds everything needed to render an order message.
type Order struct {
	OutletName   string
	Address      string
	Notes        string
	DeliveryDate string // raw YYYY-MM-DD input; may be empty or unparsable
	Lines        []Line
	RefPrefix    string
}

// Build renders the order message deterministically for the given clock
// reading. The delivery warning appears only when the delivery date parses
// and is not exactly tomorrow relative to the clock's UTC date; an
// unparsable date keeps its line but never warns.
func (o *Order) Build(now time.Time) string {
	lines := []string{"*Order from: " + o.OutletName + "*"}

	if o.Address != "" {
		lines = append(lines, "Address: "+o.Address)
	}
	if o.DeliveryDate != "" {
		lines = append(lines, "Date of Delivery: "+o.DeliveryDate)
		if d, err := time.Parse(DateLayout, o.DeliveryDate); err == nil {
			tomorrow := now.UTC().AddDate(0, 0, 1).Format(DateLayout)
			if d.Format(DateLayout) != tomorrow {
				lines = append(lines, "❗️Order is NOT for next day!")
			}
		}
	}

	lines = append(lines, "", "Items:")
	for _, l := range o.Lines {
		lines = append(lines, "- "+l.Name+": "+l.Qty.String()+" "+l.Unit)
	}

	if o.Notes != "" {
		lines = append(lines, "", "Notes: "+o.Notes)
	}

	prefix := o.RefPrefix
	if prefix == "" {
		prefix = DefaultRefPrefix
	}
	lines = append(lines, "PO Ref: "+Reference(prefix, now))

	return strings.Join(lines, "\n")
}

// Link builds the wa.me URL for the given phone digits and message text.
// Empty digits produce a link without a target number, which WhatsApp
// treats as "pick a recipient".
func Link(digits, text string) string {
	encoded := url.QueryEscape(text)
	if digits == "" {
		return "https://wa.me/?text=" + encoded
	}
	return "https://wa.me/" + digits + "?text=" + encoded
}
