package literal

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders quantity bounds with thousands separators (e.g.
// "4,700" rather than "4700") so that large resistor/capacitor values
// read the way a datasheet would print them.
var printer = message.NewPrinter(language.English)

// FormatBound renders a single interval endpoint using locale-aware
// digit grouping, followed by the unit symbol.
func FormatBound(v float64, unit Unit) string {
	if unit.IsDimensionless() {
		return printer.Sprintf("%v", v)
	}
	return printer.Sprintf("%v%s", v, unit)
}

// Format renders a QuantityIntervalDisjoint the way String does, but
// with locale-aware digit grouping on every bound and without the "1"
// that String appends for the dimensionless unit.
func Format(q QuantityIntervalDisjoint) string {
	if q.IsEmpty() {
		return "{}"
	}
	s := ""
	for i, r := range q.Ranges() {
		if i > 0 {
			s += " | "
		}
		if r.Min == r.Max {
			s += FormatBound(r.Min, q.Unit())
			continue
		}
		s += "[" + FormatBound(r.Min, q.Unit()) + ", " + FormatBound(r.Max, q.Unit()) + "]"
	}
	return s
}
