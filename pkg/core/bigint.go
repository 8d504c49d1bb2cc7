package core

import "math/big"

// newBigIntFromString parses text (optionally signed) in the given radix,
// rejecting anything SetString doesn't consume in full — the reader's
// "invalid number" condition.
func newBigIntFromString(text string, radix int) (*big.Int, bool) {
	if text == "" {
		return nil, false
	}
	neg := false
	body := text
	if body[0] == '+' || body[0] == '-' {
		neg = body[0] == '-'
		body = body[1:]
	}
	if body == "" {
		return nil, false
	}
	n, ok := new(big.Int).SetString(body, radix)
	if !ok {
		return nil, false
	}
	if neg {
		n.Neg(n)
	}
	return n, true
}
