package model

import "time"

// Member represents a registered member of the discount program.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
type Member struct {
	ID          string    `json:"id"`
	DirectoryID int64     `json:"directory_id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	CreatedAt   time.Time `json:"created_at"`
}
