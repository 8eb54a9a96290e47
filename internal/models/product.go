package models

// Product represents a product entity in the inventory.
// JSON field names follow the wire format of the API (Portuguese keys).
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"nome"`
	Quantity int     `json:"quantidade"`
	Price    float64 `json:"preco"`
}
