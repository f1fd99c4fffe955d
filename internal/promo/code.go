package promo

import (
	"errors"
	"strings"
	"unicode"
)

// Package promo validates mirror codes: promotion codes that read the same
// forward and backward. Campaign tooling issues codes with separators and
// mixed case ("LVL-1-LVL"), so validation normalizes before comparing instead
// of special-casing individual formats.

var (
	ErrEmptyCode    = errors.New("promo code is empty")
	ErrCodeTooShort = errors.New("promo code is too short")
	ErrNotMirror    = errors.New("promo code is not a mirror code")
)

// Codes need at least this many significant characters to be redeemable.
const minCodeLen = 3

// normalize lowercases the input and strips everything that is not a letter
// or a digit.
func normalize(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return out
}

// IsPalindrome reports whether s reads identically forward and backward,
// ignoring case, punctuation, and spacing. A string with no letters or
// digits is not a palindrome.
func IsPalindrome(s string) bool {
	rs := normalize(s)
	if len(rs) == 0 {
		return false
	}
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		if rs[i] != rs[j] {
			return false
		}
	}
	return true
}

// ValidateCode checks that a submitted promo code is a redeemable mirror code.
func ValidateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrEmptyCode
	}
	if len(normalize(code)) < minCodeLen {
		return ErrCodeTooShort
	}
	if !IsPalindrome(code) {
		return ErrNotMirror
	}
	return nil
}
