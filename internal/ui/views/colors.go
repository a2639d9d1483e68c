package views

// ANSI 256 codes for the color names counters carry. Names outside the
// table fall back to the terminal default foreground.
var colorCodes = map[string]string{
	"black":   "240", // lifted so it stays visible on dark terminals
	"red":     "196",
	"green":   "40",
	"blue":    "33",
	"yellow":  "220",
	"magenta": "201",
	"cyan":    "45",
	"white":   "255",
	"orange":  "208",
	"gray":    "245",
}

// ColorCode maps a counter color name to an ANSI 256 code, or "" when the
// name is unknown.
func ColorCode(name string) string {
	return colorCodes[name]
}
