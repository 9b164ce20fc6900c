package stockgpt

import "math"

// Fundamentals carries the per-share inputs the valuation helpers work
// from. Zero fields disable the corresponding model.
type Fundamentals struct {
	EPS             float64
	RevenuePerShare float64
	GrowthRate      float64 // annual, fractional (0.08 = 8%)
	DiscountRate    float64 // annual, fractional
	PeerPE          float64
	PeerPS          float64
}

// FairValueDCF discounts EPS grown at growthRate over years plus a
// terminal value at terminalPE back to the present. Returns 0 when the
// inputs cannot produce a meaningful value.
func FairValueDCF(eps, growthRate, discountRate float64, years int, terminalPE float64) float64 {
	if eps <= 0 || years <= 0 || discountRate <= -1 {
		return 0
	}
	value := 0.0
	projected := eps
	for y := 1; y <= years; y++ {
		projected *= 1 + growthRate
		value += projected / math.Pow(1+discountRate, float64(y))
	}
	if terminalPE > 0 {
		value += projected * terminalPE / math.Pow(1+discountRate, float64(years))
	}
	return value
}

// FairValuePE is the peer-multiple earnings valuation.
func FairValuePE(eps, peerPE float64) float64 {
	if eps <= 0 || peerPE <= 0 {
		return 0
	}
	return eps * peerPE
}

// FairValuePS is the peer-multiple sales valuation.
func FairValuePS(revenuePerShare, peerPS float64) float64 {
	if revenuePerShare <= 0 || peerPS <= 0 {
		return 0
	}
	return revenuePerShare * peerPS
}
