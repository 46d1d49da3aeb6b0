package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltshop/storefront/internal/catalog/domain"
	"github.com/voltshop/storefront/internal/catalog/repository"
)

func day(n int) time.Time {
	return time.Date(2024, time.January, n, 0, 0, 0, 0, time.UTC)
}

func seededRepo(t *testing.T) *repository.MemoryProductRepository {
	t.Helper()
	repo := repository.NewMemoryProductRepository()
	require.NoError(t, repo.Seed([]domain.Product{
		{ID: "1", Name: "Iphone 15 ProMax", Category: "phone", Price: 1_200_000, CreatedAt: day(10)},
		{ID: "2", Name: "Galaxy Buds", Category: "headphone", Price: 45_000, CreatedAt: day(9)},
		{ID: "3", Name: "Pixel 8", Category: "phone", Price: 750_000, CreatedAt: day(8)},
		{ID: "4", Name: "Asus Zenbook 14", Category: "laptop", Price: 600_000, CreatedAt: day(7)},
		{ID: "5", Name: "Sony WH-1000XM5", Category: "headphone", Price: 220_000, CreatedAt: day(6)},
		{ID: "6", Name: "iPad Air", Category: "tablet", Price: 90_000, CreatedAt: day(5)},
		{ID: "7", Name: "Thinkpad X1", Category: "laptop", Price: 1_100_000, CreatedAt: day(4)},
		{ID: "8", Name: "JBL Flip", Category: "speaker", Price: 30_000, CreatedAt: day(3)},
	}))
	return repo
}

func TestListDefaultsToNewestFirstPageOfSix(t *testing.T) {
	handler := NewListProductsHandler(seededRepo(t))

	page, err := handler.Handle(ListProductsQuery{})
	require.NoError(t, err)

	assert.Equal(t, int64(8), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultPageSize, page.PerPage)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Products, 6)
	assert.Equal(t, "1", page.Products[0].ID)
	assert.Equal(t, "6", page.Products[5].ID)
}

func TestListOldestSort(t *testing.T) {
	handler := NewListProductsHandler(seededRepo(t))

	page, err := handler.Handle(ListProductsQuery{Sort: domain.SortOldest})
	require.NoError(t, err)

	require.NotEmpty(t, page.Products)
	assert.Equal(t, "8", page.Products[0].ID)
}

func TestListFiltersCombine(t *testing.T) {
	handler := NewListProductsHandler(seededRepo(t))

	page, err := handler.Handle(ListProductsQuery{
		Category: "phone",
		Price:    domain.BandAbove500K,
	})
	require.NoError(t, err)

	require.Len(t, page.Products, 2)
	for _, p := range page.Products {
		assert.Equal(t, "phone", p.Category)
		assert.Greater(t, p.Price, int64(500_000))
	}
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	handler := NewListProductsHandler(seededRepo(t))

	page, err := handler.Handle(ListProductsQuery{Search: "zenbook"})
	require.NoError(t, err)

	require.Len(t, page.Products, 1)
	assert.Equal(t, "4", page.Products[0].ID)
}

func TestListPriceBandBoundaries(t *testing.T) {
	handler := NewListProductsHandler(seededRepo(t))

	page, err := handler.Handle(ListProductsQuery{Price: domain.BandUnder50K})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	// The sidebar has no 250k-500k band; prices in the gap only show
	// under the unfiltered listing.
	page, err = handler.Handle(ListProductsQuery{Price: domain.Band100KTo250K})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, "5", page.Products[0].ID)
}

func TestListOutOfRangePageClampsToLastPage(t *testing.T) {
	handler := NewListProductsHandler(seededRepo(t))

	page, err := handler.Handle(ListProductsQuery{Page: 99})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Products, 2)

	page, err = handler.Handle(ListProductsQuery{Page: -1})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestListEmptyResult(t *testing.T) {
	handler := NewListProductsHandler(seededRepo(t))

	page, err := handler.Handle(ListProductsQuery{Search: "no such product"})
	require.NoError(t, err)

	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Products)
}
