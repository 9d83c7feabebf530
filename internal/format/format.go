// Package format renders amounts, dates and statuses for read-only views.
package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"propdesk/internal/model"
)

// Date layouts selectable on the settings page.
var dateLayouts = map[string]string{
	"iso": "2006-01-02",
	"us":  "01/02/2006",
	"eu":  "02/01/2006",
}

// Currency renders amount as "<ISO code> <grouped amount>" using the locale's
// digit grouping, e.g. "USD 1,250.00" or "EUR 1.250,00" for de-DE.
// Unknown currencies or locales fall back to USD and en-US.
func Currency(amount float64, code, locale string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(tag)
	return unit.String() + " " + p.Sprintf(fmt.Sprintf("%%.%df", scale), amount)
}

// Date renders d using a settings date-format key. Zero dates render as "-".
func Date(d model.Date, layoutKey string) string {
	if d.IsZero() {
		return "-"
	}
	layout, ok := dateLayouts[layoutKey]
	if !ok {
		layout = dateLayouts["iso"]
	}
	return d.Format(layout)
}

// Badge colours.
const (
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorRed    = "red"
	ColorBlue   = "blue"
	ColorOrange = "orange"
	ColorGray   = "gray"
)

var statusColors = map[string]string{
	"paid":        ColorGreen,
	"active":      ColorGreen,
	"completed":   ColorGreen,
	"vacant":      ColorGreen,
	"pending":     ColorYellow,
	"open":        ColorYellow,
	"upcoming":    ColorYellow,
	"low":         ColorGray,
	"medium":      ColorYellow,
	"high":        ColorOrange,
	"overdue":     ColorRed,
	"urgent":      ColorRed,
	"low_stock":   ColorRed,
	"in_progress": ColorBlue,
	"occupied":    ColorBlue,
	"maintenance": ColorOrange,
	"cancelled":   ColorGray,
	"terminated":  ColorGray,
	"expired":     ColorGray,
}

// StatusColor maps any entity status (or priority) to a badge colour.
func StatusColor(status string) string {
	if c, ok := statusColors[strings.ToLower(status)]; ok {
		return c
	}
	return ColorGray
}

// Label turns a status key into display text: "in_progress" -> "In progress".
func Label(status string) string {
	if status == "" {
		return ""
	}
	s := strings.ReplaceAll(status, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
