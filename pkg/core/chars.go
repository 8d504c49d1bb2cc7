package core

import "strings"

// charNames maps every accepted case-insensitive character name (spec
// §4.1) to its scalar value. Canonical names (used when printing) are
// listed first in charCanonical.
var charNames = map[string]rune{
	"nul": 0, "null": 0,
	"soh": 1,
	"stx": 2,
	"etx": 3,
	"eot": 4,
	"enq": 5,
	"ack": 6,
	"bel": 7,
	"bs": 8,
	"tab": 9, "ht": 9,
	"newline": 10, "nl": 10, "linefeed": 10,
	"vt": 11,
	"ff": 12,
	"return": 13, "cr": 13,
	"so": 14,
	"si": 15,
	"dle": 16,
	"dc1": 17,
	"dc2": 18,
	"dc3": 19,
	"dc4": 20,
	"nak": 21,
	"syn": 22,
	"etb": 23,
	"can": 24,
	"em": 25,
	"sub": 26,
	"escape": 27, "esc": 27,
	"fs": 28,
	"gs": 29,
	"rs": 30,
	"us": 31,
	"space": 32, "sp": 32,
	"rubout": 127, "delete": 127, "del": 127,
}

var charCanonical = map[rune]string{
	0: "null", 1: "soh", 2: "stx", 3: "etx", 4: "eot", 5: "enq", 6: "ack",
	7: "bel", 8: "bs", 9: "tab", 10: "newline", 11: "vt", 12: "ff",
	13: "return", 14: "so", 15: "si", 16: "dle", 17: "dc1", 18: "dc2",
	19: "dc3", 20: "dc4", 21: "nak", 22: "syn", 23: "etb", 24: "can",
	25: "em", 26: "sub", 27: "escape", 28: "fs", 29: "gs", 30: "rs",
	31: "us", 32: "space", 127: "rubout",
}

// charByName resolves a case-insensitive character name to a scalar.
func charByName(name string) (rune, bool) {
	r, ok := charNames[strings.ToLower(name)]
	return r, ok
}

// charName returns the canonical printed name for a scalar, if it has one.
func charName(r rune) (string, bool) {
	name, ok := charCanonical[r]
	return name, ok
}
