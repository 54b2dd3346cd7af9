package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPark_RecalculateTotalArea(t *testing.T) {
	t.Run("sums building areas", func(t *testing.T) {
		park := Park{
			TotalArea: 999,
			Buildings: []Building{
				{ID: "b1", Area: 25000},
				{ID: "b2", Area: 25000},
			},
		}

		park.RecalculateTotalArea()

		assert.Equal(t, float64(50000), park.TotalArea)
	})

	t.Run("non-positive areas do not contribute", func(t *testing.T) {
		park := Park{
			Buildings: []Building{
				{ID: "b1", Area: 1000},
				{ID: "b2", Area: -500},
				{ID: "b3", Area: 0},
			},
		}

		park.RecalculateTotalArea()

		assert.Equal(t, float64(1000), park.TotalArea)
	})

	t.Run("no buildings means zero area", func(t *testing.T) {
		park := Park{TotalArea: 12345}

		park.RecalculateTotalArea()

		assert.Zero(t, park.TotalArea)
	})
}

func TestPark_FindBuilding(t *testing.T) {
	park := Park{
		Buildings: []Building{
			{ID: "b1"},
			{ID: "b2"},
		},
	}

	assert.Equal(t, 1, park.FindBuilding("b2"))
	assert.Equal(t, -1, park.FindBuilding("missing"))
}

func TestPark_Sanitize(t *testing.T) {
	park := Park{
		TotalArea: 777,
		Buildings: []Building{
			{ID: "b1", Area: -100},
			{ID: "b2", Area: 2000},
		},
	}

	park.Sanitize()

	assert.Zero(t, park.Buildings[0].Area)
	assert.Equal(t, float64(2000), park.TotalArea)

	var empty Park
	empty.Sanitize()
	assert.NotNil(t, empty.Buildings)
}
