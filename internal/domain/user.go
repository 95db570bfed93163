package domain

import "encoding/json"

type User struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Hash      string `db:"password_hash"`
	CartJSON  string `db:"cart_json"`
	CreatedAt string `db:"created_at"`
}

// Cart maps a product id to a quantity. Only non-zero entries are kept,
// so the serialized form stays sparse no matter how large the catalog is.
type Cart map[string]int

func NewCart() Cart { return Cart{} }

func (c Cart) Qty(itemID string) int { return c[itemID] }

func (c Cart) Add(itemID string) { c[itemID]++ }

// Remove decrements the quantity and reports whether anything changed.
// Removing from an empty slot is a no-op.
func (c Cart) Remove(itemID string) bool {
	if c[itemID] <= 0 {
		return false
	}
	c[itemID]--
	if c[itemID] == 0 {
		delete(c, itemID)
	}
	return true
}

func (c Cart) Encode() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Cart decodes the user's persisted cart. A missing or empty column
// yields an empty cart.
func (u *User) Cart() (Cart, error) {
	c := NewCart()
	if u.CartJSON == "" {
		return c, nil
	}
	if err := json.Unmarshal([]byte(u.CartJSON), &c); err != nil {
		return nil, err
	}
	return c, nil
}
