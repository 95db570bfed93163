package domain

// Product mirrors the catalog document shape the storefront consumes.
// Ids are small integers assigned in insertion order, not surrogate keys.
type Product struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Image     string  `db:"image" json:"image"`
	Category  string  `db:"category" json:"category"` // women | men | kids
	NewPrice  float64 `db:"new_price" json:"new_price"`
	OldPrice  float64 `db:"old_price" json:"old_price"`
	Date      string  `db:"created_at" json:"date"`
	Available bool    `db:"available" json:"available"`
}
