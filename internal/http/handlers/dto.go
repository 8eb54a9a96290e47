package handlers

// ProductRequest is the create/update body. Updates are full replacements:
// all three fields are written, whatever the caller sent.
type ProductRequest struct {
	Name     string  `json:"nome"`
	Quantity int     `json:"quantidade"`
	Price    float64 `json:"preco"`
}

type ProductResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"nome"`
	Quantity int     `json:"quantidade"`
	Price    float64 `json:"preco"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
