package payments

import "math"

// MinorUnits converts a major-unit amount to the gateway's integer minor
// units (cents). Rounding is half away from zero on the scaled value, so
// any amount with at most 2 decimal places round-trips exactly. Note that
// an input like 19.995 sits just below the half in binary floating point
// (19.995*100 = 1999.4999...) and therefore yields 1999.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// MajorUnits is the exact inverse of MinorUnits for integer cents.
func MajorUnits(minor int64) float64 {
	return float64(minor) / 100
}
