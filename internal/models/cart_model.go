package models

// CartItem is one entry of a session-scoped cart, keyed by ProductID.
// UnitPrice is in minor currency units; the total is always recomputed
// from the current items and never stored.
type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	ImageRef  string `json:"imageRef,omitempty"`
	Quantity  int    `json:"quantity"`
}
