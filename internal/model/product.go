package model

// Product represents a record in the in-memory product catalogue.
type Product struct {
	ID     int     `json:"id" yaml:"id"`
	Nombre string  `json:"nombre" yaml:"nombre"`
	Precio float64 `json:"precio" yaml:"precio"`
}

// ProductInput represents the request payload for creating or updating a product.
// Nil fields were not supplied by the client.
type ProductInput struct {
	Nombre *string  `json:"nombre,omitempty"`
	Precio *float64 `json:"precio,omitempty"`
}

// DeleteResponse represents the response payload for a deleted product.
type DeleteResponse struct {
	Message  string  `json:"message"`
	Producto Product `json:"producto"`
}
