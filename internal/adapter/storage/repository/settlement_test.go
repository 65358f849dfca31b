package repository

import (
	"testing"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestByProduct(t *testing.T) {
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	mid := uuid.MustParse("7f000000-0000-0000-0000-000000000000")
	high := uuid.MustParse("ff000000-0000-0000-0000-000000000000")

	items := []domain.OrderItem{
		{ProductID: high, Quantity: 1},
		{ProductID: low, Quantity: 2},
		{ProductID: mid, Quantity: 3},
	}

	sorted := byProduct(items)
	assert.Equal(t, []uuid.UUID{low, mid, high},
		[]uuid.UUID{sorted[0].ProductID, sorted[1].ProductID, sorted[2].ProductID})
	assert.Equal(t, 2, sorted[0].Quantity)
	assert.Equal(t, high, items[0].ProductID, "the order keeps its own line order")

	// two carts holding the same products in opposite order lock them identically
	reversed := []domain.OrderItem{items[2], items[1], items[0]}
	assert.Equal(t, sorted, byProduct(reversed))
}
