package usecase

import (
	"strings"

	"github.com/flogin/flogin-api/internal/application/dto"
	"github.com/flogin/flogin-api/internal/domain"
	"github.com/flogin/flogin-api/internal/domain/entity"
	"github.com/flogin/flogin-api/internal/domain/repository"
)

// ProductUseCase CRUD and pagination over the product catalog. Stateless:
// every call is a function of the store contents and its arguments.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create validates the payload and persists a new product. The store assigns
// the ID; validation failures never reach the store.
func (uc *ProductUseCase) Create(in *dto.ProductRequest) (*dto.ProductResponse, error) {
	if in == nil {
		return nil, domain.ErrNilProduct
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrMissingName
	}
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}

	product := &entity.Product{
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Category:    in.Category,
		Description: in.Description,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns the product or (nil, nil) when no row matches. A
// non-positive id is an error, a missing row is not.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update applies a partial update: only non-nil fields overwrite the stored
// values. Returns (nil, nil) when the id matches no row.
func (uc *ProductUseCase) Update(id int64, in *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	if in == nil {
		return nil, domain.ErrNilProduct
	}

	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes the product. Reports true when a row existed and was
// removed, false when nothing matched; the delete primitive is not invoked
// for missing rows.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
	if id <= 0 {
		return false, domain.ErrInvalidID
	}
	exists, err := uc.repo.ExistsByID(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}

// List returns one page of products in primary-key order plus totals.
func (uc *ProductUseCase) List(page, size int) (*dto.ProductPage, error) {
	if page < 0 {
		return nil, domain.ErrInvalidPage
	}
	if size <= 0 {
		return nil, domain.ErrInvalidPageSize
	}

	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(size, page*size)
	if err != nil {
		return nil, err
	}

	content := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		content = append(content, *toProductResponse(p))
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &dto.ProductPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		Description: p.Description,
	}
}
