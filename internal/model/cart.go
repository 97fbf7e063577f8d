package model

// CartItem is an ephemeral, in-memory cart entry. The product snapshot is
// taken at add time; the quantity is always a positive integer.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
}
