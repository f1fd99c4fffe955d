package pricing

import "errors"

// Package pricing holds the age bracket classifier and the discount rate
// table. Pure functions only; no I/O and no business state.

// Bracket is one of the four fixed age bands the program prices against.
type Bracket string

const (
	BracketChild  Bracket = "child"
	BracketTeen   Bracket = "teen"
	BracketAdult  Bracket = "adult"
	BracketSenior Bracket = "senior"
)

// Age thresholds, checked in order. A member younger than the threshold
// falls into the matching bracket; anyone at or above seniorAge is a senior.
const (
	teenAge   = 13
	adultAge  = 18
	seniorAge = 65
)

var ErrNegativeAge = errors.New("age must not be negative")

// BracketFor maps a non-negative age to its bracket via ordered threshold
// comparisons. Negative ages are rejected with ErrNegativeAge.
func BracketFor(age int) (Bracket, error) {
	switch {
	case age < 0:
		return "", ErrNegativeAge
	case age < teenAge:
		return BracketChild, nil
	case age < adultAge:
		return BracketTeen, nil
	case age < seniorAge:
		return BracketAdult, nil
	default:
		return BracketSenior, nil
	}
}

// Base discount rates per bracket. Adults pay full price.
var rates = map[Bracket]float64{
	BracketChild:  0.40,
	BracketTeen:   0.20,
	BracketAdult:  0.00,
	BracketSenior: 0.30,
}

// Mirror promo codes add a flat bonus on top of the bracket rate,
// capped so a quote never exceeds maxRate.
const (
	promoBonus = 0.05
	maxRate    = 0.60
)

// RateFor returns the base discount rate for a bracket.
// Unknown brackets price at zero.
func RateFor(b Bracket) float64 {
	return rates[b]
}

// Combine applies the promo bonus to a base rate when promo is set.
func Combine(base float64, promo bool) float64 {
	if !promo {
		return base
	}
	r := base + promoBonus
	if r > maxRate {
		return maxRate
	}
	return r
}
