package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flogin/flogin-api/internal/application/dto"
	"github.com/flogin/flogin-api/internal/application/usecase"
	"github.com/flogin/flogin-api/internal/domain"
	"github.com/flogin/flogin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRepo in-memory ProductRepository with call counters, so tests can
// assert that validation short-circuits before the store is touched.
type fakeProductRepo struct {
	byID    map[int64]*entity.Product
	order   []int64
	nextID  int64
	creates int
	deletes int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.creates++
	r.nextID++
	product.ID = r.nextID
	clone := *product
	r.byID[product.ID] = &clone
	r.order = append(r.order, product.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	clone := *product
	r.byID[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	r.deletes++
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeProductRepo) ExistsByID(id int64) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for i := offset; i < len(r.order) && len(out) < limit; i++ {
		clone := *r.byID[r.order[i]]
		out = append(out, &clone)
	}
	return out, nil
}

func validRequest() *dto.ProductRequest {
	return &dto.ProductRequest{
		Name:        "Mouse",
		Price:       decimal.NewFromInt(200000),
		Quantity:    50,
		Category:    "Electronics",
		Description: "Wireless mouse",
	}
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Valid(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(validRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(1), out.ID, "store assigns the id")
	assert.Equal(t, "Mouse", out.Name)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(200000)))
	assert.Equal(t, 50, out.Quantity)
	assert.Equal(t, "Electronics", out.Category)
}

func TestCreate_ValidationNeverReachesStore(t *testing.T) {
	cases := []struct {
		name    string
		in      *dto.ProductRequest
		wantErr error
	}{
		{"nil payload", nil, domain.ErrNilProduct},
		{"blank name", &dto.ProductRequest{Name: "   ", Price: decimal.NewFromInt(10)}, domain.ErrMissingName},
		{"missing name", &dto.ProductRequest{Price: decimal.NewFromInt(10)}, domain.ErrMissingName},
		{"zero price", &dto.ProductRequest{Name: "X"}, domain.ErrInvalidPrice},
		{"negative price", &dto.ProductRequest{Name: "X", Price: decimal.NewFromInt(-5)}, domain.ErrInvalidPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeProductRepo()
			uc := usecase.NewProductUseCase(repo)

			out, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, out)
			assert.Zero(t, repo.creates, "save must not be invoked on validation failure")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(validRequest())
	require.NoError(t, err)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, created, out)

	// Valid id, missing row: empty result, not an error.
	out, err = uc.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, out)

	// Non-positive id: error, distinct from the missing-row case.
	_, err = uc.GetByID(0)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	_, err = uc.GetByID(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_PatchMergesOnlyPresentFields(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(validRequest())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, &dto.UpdateProductRequest{
		Price:    decPtr(decimal.NewFromInt(180000)),
		Quantity: intPtr(40),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Price.Equal(decimal.NewFromInt(180000)))
	assert.Equal(t, 40, out.Quantity)
	// Absent fields keep their stored values.
	assert.Equal(t, "Mouse", out.Name)
	assert.Equal(t, "Electronics", out.Category)
	assert.Equal(t, "Wireless mouse", out.Description)

	// The merge must also be persisted, not just echoed.
	stored, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, out, stored)
}

func TestUpdate_AllFields(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(validRequest())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, &dto.UpdateProductRequest{
		Name:        strPtr("Trackball"),
		Price:       decPtr(decimal.NewFromInt(250000)),
		Quantity:    intPtr(7),
		Category:    strPtr("Accessories"),
		Description: strPtr("Ergonomic"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Trackball", out.Name)
	assert.Equal(t, "Accessories", out.Category)
	assert.Equal(t, "Ergonomic", out.Description)
}

func TestUpdate_MissingRowAndInvalidInput(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	// Missing row: empty result, not an error.
	out, err := uc.Update(42, &dto.UpdateProductRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, out)

	_, err = uc.Update(0, &dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = uc.Update(1, nil)
	assert.ErrorIs(t, err, domain.ErrNilProduct)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(validRequest())
	require.NoError(t, err)

	deleted, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The row is gone afterward.
	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, out)

	// Missing row: false, and the delete primitive is not invoked again.
	before := repo.deletes
	deleted, err = uc.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, before, repo.deletes)

	_, err = uc.Delete(-3)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_SingleRow(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	_, err := uc.Create(validRequest())
	require.NoError(t, err)

	out, err := uc.List(0, 5)
	require.NoError(t, err)
	assert.Len(t, out.Content, 1)
	assert.Equal(t, int64(1), out.TotalElements)
	assert.Equal(t, 1, out.TotalPages)
	assert.Equal(t, 0, out.Page)
	assert.Equal(t, 5, out.Size)
}

func TestList_PagingMath(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	for i := 0; i < 7; i++ {
		in := validRequest()
		_, err := uc.Create(in)
		require.NoError(t, err)
	}

	first, err := uc.List(0, 3)
	require.NoError(t, err)
	assert.Len(t, first.Content, 3)
	assert.Equal(t, int64(7), first.TotalElements)
	assert.Equal(t, 3, first.TotalPages)

	last, err := uc.List(2, 3)
	require.NoError(t, err)
	assert.Len(t, last.Content, 1)

	// Primary-key order across pages.
	assert.Equal(t, int64(1), first.Content[0].ID)
	assert.Equal(t, int64(7), last.Content[0].ID)

	empty, err := uc.List(5, 3)
	require.NoError(t, err)
	assert.Empty(t, empty.Content)
}

func TestList_Validation(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.List(-1, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidPage)

	_, err = uc.List(0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPageSize)

	_, err = uc.List(0, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidPageSize)
}
