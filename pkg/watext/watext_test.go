package watext

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	// A Tuesday afternoon, UTC
	return time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "15551234567", DigitsOnly("+1 (555) 123-4567"))
	assert.Equal(t, "254700111222", DigitsOnly("254 700 111 222"))
	assert.Equal(t, "", DigitsOnly(""))
	assert.Equal(t, "", DigitsOnly("no digits here"))
	assert.Equal(t, "42", DigitsOnly("a4b2c"))
}

func TestReference(t *testing.T) {
	assert.Equal(t, "SR-2026-03-10-1405", Reference("SR", fixedClock()))
	assert.Equal(t, "PO-2026-03-10-1405", Reference("PO", fixedClock()))
}

func TestBuildFullMessage(t *testing.T) {
	o := Order{
		OutletName:   "Downtown Cafe",
		Address:      "12 Main St",
		Notes:        "Ring the back door",
		DeliveryDate: "2026-03-11", // tomorrow relative to fixedClock
		Lines: []Line{
			{Name: "Tomatoes", Qty: decimal.RequireFromString("3"), Unit: "kg"},
			{Name: "Olive Oil", Qty: decimal.RequireFromString("2.5"), Unit: "l"},
		},
	}

	got := o.Build(fixedClock())

	want := strings.Join([]string{
		"*Order from: Downtown Cafe*",
		"Address: 12 Main St",
		"Date of Delivery: 2026-03-11",
		"",
		"Items:",
		"- Tomatoes: 3 kg",
		"- Olive Oil: 2.5 l",
		"",
		"Notes: Ring the back door",
		"PO Ref: SR-2026-03-10-1405",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestBuildDeliveryWarning(t *testing.T) {
	base := Order{
		OutletName: "Downtown Cafe",
		Lines:      []Line{{Name: "Milk", Qty: decimal.RequireFromString("2"), Unit: "l"}},
	}

	t.Run("tomorrow has no warning", func(t *testing.T) {
		o := base
		o.DeliveryDate = "2026-03-11"
		assert.NotContains(t, o.Build(fixedClock()), "NOT for next day")
	})

	t.Run("same day warns", func(t *testing.T) {
		o := base
		o.DeliveryDate = "2026-03-10"
		assert.Contains(t, o.Build(fixedClock()), "❗️Order is NOT for next day!")
	})

	t.Run("far future warns", func(t *testing.T) {
		o := base
		o.DeliveryDate = "2026-04-01"
		assert.Contains(t, o.Build(fixedClock()), "❗️Order is NOT for next day!")
	})

	t.Run("unparsable date keeps line without warning", func(t *testing.T) {
		o := base
		o.DeliveryDate = "next tuesday"
		got := o.Build(fixedClock())
		assert.Contains(t, got, "Date of Delivery: next tuesday")
		assert.NotContains(t, got, "NOT for next day")
	})

	t.Run("empty date omits line", func(t *testing.T) {
		o := base
		got := o.Build(fixedClock())
		assert.NotContains(t, got, "Date of Delivery:")
	})
}

func TestBuildMinimalMessage(t *testing.T) {
	o := Order{
		OutletName: "Kiosk 7",
		Lines:      []Line{{Name: "Bread", Qty: decimal.RequireFromString("10"), Unit: "pcs"}},
	}

	got := o.Build(fixedClock())

	want := strings.Join([]string{
		"*Order from: Kiosk 7*",
		"",
		"Items:",
		"- Bread: 10 pcs",
		"PO Ref: SR-2026-03-10-1405",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestBuildFractionalQtyRoundTrip(t *testing.T) {
	qty := decimal.RequireFromString("2.5")
	o := Order{
		OutletName: "Kiosk 7",
		Lines:      []Line{{Name: "Flour", Qty: qty, Unit: "kg"}},
	}
	assert.Contains(t, o.Build(fixedClock()), "- Flour: 2.5 kg")
}

func TestLink(t *testing.T) {
	link := Link("15551234567", "*Order from: Downtown Cafe*\nItems:")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/15551234567?text="))
	assert.Contains(t, link, "%2AOrder+from%3A+Downtown+Cafe%2A%0AItems%3A")
}

func TestLinkWithoutNumber(t *testing.T) {
	link := Link("", "hello world")
	assert.Equal(t, "https://wa.me/?text=hello+world", link)
}
