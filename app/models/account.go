package models

import "time"

// Account is the external identity that owns all dining and housing
// records. It is referenced by foreign key, never embedded.
type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
