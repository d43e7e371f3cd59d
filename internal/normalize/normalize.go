// Package normalize canonicalizes unit strings so that two spellings of
// the same unit (ohm vs Ω, u vs µ) compare equal.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// baseAliases maps a whole unit string to its canonical Unicode symbol.
var baseAliases = map[string]string{
	"ohm":  "Ω",
	"Ohm":  "Ω",
	"OHM":  "Ω",
	"deg":  "°",
	"degC": "°C",
	"degF": "°F",
}

// ohmSuffixes are the ASCII spellings of "ohm" that can appear after an SI
// prefix, e.g. "k" + "Ohm".
var ohmSuffixes = []string{"Ohm", "OHM", "ohm"}

// Unit canonicalizes a unit symbol: known ASCII spellings of ohm and
// degree are replaced by their Unicode symbol (with any SI prefix kept
// intact), "u" as a micro prefix becomes "µ", and the result is put into
// Unicode Normalization Form C so that precomposed and combining-mark
// spellings of the same glyph compare equal.
func Unit(symbol string) string {
	if symbol == "" {
		return ""
	}
	if canon, ok := baseAliases[symbol]; ok {
		return norm.NFC.String(canon)
	}
	for _, suf := range ohmSuffixes {
		if prefix, ok := strings.CutSuffix(symbol, suf); ok && prefix != "" {
			return norm.NFC.String(normalizePrefix(prefix) + "Ω")
		}
	}
	if rest, ok := strings.CutPrefix(symbol, "u"); ok && rest != "" {
		return norm.NFC.String("µ" + rest)
	}
	return norm.NFC.String(symbol)
}

func normalizePrefix(p string) string {
	if p == "u" {
		return "µ"
	}
	return p
}

// Equal reports whether two unit strings name the same unit after
// normalization.
func Equal(a, b string) bool {
	return Unit(a) == Unit(b)
}
