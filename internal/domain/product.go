package domain

// ProductRepository is the authoritative product collection. Implementations
// keep insertion order and assign ids on AddProduct.
type ProductRepository interface {
	AddProduct(product Product) (*Product, error)
	GetProductByID(id string) (*Product, error)
	UpdateProduct(product Product) (*Product, error)
	DeleteProduct(id string) error
	ListProducts() ([]Product, error)
}
