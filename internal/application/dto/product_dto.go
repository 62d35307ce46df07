package dto

import "github.com/shopspring/decimal"

// ProductRequest input for creating a product. The ID is ignored on input;
// the store assigns one.
type ProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// UpdateProductRequest input for a partial update. Only non-nil fields
// overwrite the stored values (patch semantics).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
}

// ProductResponse wire shape of a stored product.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// ProductPage paginated product listing. Field names follow the envelope the
// legacy clients consume (content + totals).
type ProductPage struct {
	Content       []ProductResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}
