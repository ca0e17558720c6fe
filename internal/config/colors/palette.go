package colors

import "strings"

// Swatch is one entry of the column color palette. Color and BgColor are
// the class-style names stored on a column; Hex is what the terminal
// renders.
type Swatch struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	BgColor string `json:"bgColor"`
	Hex     string `json:"hex"`
}

var palette = []Swatch{
	{"Slate", "text-slate-700", "bg-slate-50", "#94A3B8"},
	{"Blue", "text-blue-700", "bg-blue-50", "#60A5FA"},
	{"Indigo", "text-indigo-700", "bg-indigo-50", "#818CF8"},
	{"Purple", "text-purple-700", "bg-purple-50", "#C084FC"},
	{"Pink", "text-pink-700", "bg-pink-50", "#F472B6"},
	{"Red", "text-red-700", "bg-red-50", "#F87171"},
	{"Orange", "text-orange-700", "bg-orange-50", "#FB923C"},
	{"Amber", "text-amber-700", "bg-amber-50", "#FBBF24"},
	{"Yellow", "text-yellow-700", "bg-yellow-50", "#FACC15"},
	{"Lime", "text-lime-700", "bg-lime-50", "#A3E635"},
	{"Green", "text-green-700", "bg-green-50", "#4ADE80"},
	{"Emerald", "text-emerald-700", "bg-emerald-50", "#34D399"},
	{"Teal", "text-teal-700", "bg-teal-50", "#2DD4BF"},
	{"Cyan", "text-cyan-700", "bg-cyan-50", "#22D3EE"},
}

// Palette returns the column color choices in display order
func Palette() []Swatch {
	out := make([]Swatch, len(palette))
	copy(out, palette)
	return out
}

// SwatchByName finds a palette entry by name, case-insensitively
func SwatchByName(name string) (Swatch, bool) {
	for _, s := range palette {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s, true
		}
	}
	return Swatch{}, false
}

// SwatchForColor finds the palette entry a stored column color belongs to
func SwatchForColor(color string) (Swatch, bool) {
	for _, s := range palette {
		if s.Color == color {
			return s, true
		}
	}
	return Swatch{}, false
}

// TerminalColor maps a stored column color to a hex value. Hex values
// pass through unchanged; unknown names get fallback.
func TerminalColor(color, fallback string) string {
	if strings.HasPrefix(color, "#") {
		return color
	}
	if s, ok := SwatchForColor(color); ok {
		return s.Hex
	}
	return fallback
}
