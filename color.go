package main

import "strconv"

// SGR foreground codes for the colour names accepted in config.json.
var colorCodes = map[string]int{
	"black":          30,
	"red":            31,
	"green":          32,
	"yellow":         33,
	"blue":           34,
	"magenta":        35,
	"cyan":           36,
	"white":          37,
	"bright_black":   90,
	"bright_red":     91,
	"bright_green":   92,
	"bright_yellow":  93,
	"bright_blue":    94,
	"bright_magenta": 95,
	"bright_cyan":    96,
	"bright_white":   97,
}

// painter wraps text in ANSI colour sequences. A disabled painter, or an
// unknown colour, returns the text as is.
type painter struct {
	enabled bool
}

func (p painter) paint(color, s string) string {
	code, ok := colorCodes[color]
	if !p.enabled || !ok {
		return s
	}
	return "\x1b[" + strconv.Itoa(code) + "m" + s + "\x1b[0m"
}
