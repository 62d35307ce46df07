package repository

import "github.com/flogin/flogin-api/internal/domain/entity"

// ProductRepository defines the persistence port for Product.
// Lookups return (nil, nil) when no row matches.
type ProductRepository interface {
	// Create persists a new product and assigns its ID.
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	ExistsByID(id int64) (bool, error)
	Count() (int64, error)
	// List returns products in primary-key order.
	List(limit, offset int) ([]*entity.Product, error)
}
