package model

import "time"

// Quote is the priced outcome of a discount calculation for one member.
// Rate is the final fraction applied (0.0 - 1.0) after any promo bonus.
type Quote struct {
	MemberID     string    `json:"member_id"`
	Bracket      string    `json:"bracket"`
	Rate         float64   `json:"rate"`
	PromoApplied bool      `json:"promo_applied"`
	Code         string    `json:"code,omitempty"`
	ReceiptKey   string    `json:"receipt_key"`
	ReceiptURL   string    `json:"receipt_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
