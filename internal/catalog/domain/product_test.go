package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorsDerivedFromGallery(t *testing.T) {
	single := Product{Images: []string{"front.webp"}}
	assert.Equal(t, []string{"Carbon Black"}, single.Colors())

	dual := Product{Images: []string{"front.webp", "back.webp"}}
	assert.Equal(t, []string{"Carbon Black", "Robot White"}, dual.Colors())

	assert.True(t, dual.HasColor("Robot White"))
	assert.False(t, single.HasColor("Robot White"))
}

func TestPriceBandGap(t *testing.T) {
	// 250k-500k is deliberately uncovered by any band except "all"
	var price int64 = 300_000

	assert.True(t, BandAll.Contains(price))
	assert.False(t, BandUnder50K.Contains(price))
	assert.False(t, Band50KTo100K.Contains(price))
	assert.False(t, Band100KTo250K.Contains(price))
	assert.False(t, BandAbove500K.Contains(price))
}
