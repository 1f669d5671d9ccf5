package models

// Product is the subset of the commerce catalog's product schema that the
// portal exposes to clients.
type Product struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Price       string             `json:"price"` // decimal string, as the commerce API reports it
	Description string             `json:"description,omitempty"`
	Images      []ProductImage     `json:"images,omitempty"`
	Attributes  []ProductAttribute `json:"attributes,omitempty"`
}

// ProductImage is a single gallery image reference.
type ProductImage struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// ProductAttribute is a named attribute with its option values.
type ProductAttribute struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options,omitempty"`
}
