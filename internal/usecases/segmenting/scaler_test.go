package segmenting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func TestBuildFeatureMatrix(t *testing.T) {
	rows := []*domain.CustomerRFM{
		{CustomerID: 1, Recency: 10, Frequency: 3, Monetary: 99.0},
	}

	features := buildFeatureMatrix(rows)

	require.Len(t, features, 1)
	assert.Equal(t, 10.0, features[0][0])
	assert.Equal(t, 3.0, features[0][1])
	assert.InDelta(t, math.Log1p(99.0), features[0][2], 1e-12)
}

func TestStandardize(t *testing.T) {
	t.Run("colunas reescaladas para média zero", func(t *testing.T) {
		features := [][]float64{
			{1.0, 10.0},
			{2.0, 20.0},
			{3.0, 30.0},
		}

		scaled := standardize(features)

		require.Len(t, scaled, 3)
		for d := 0; d < 2; d++ {
			var sum float64
			for i := range scaled {
				sum += scaled[i][d]
			}
			assert.InDelta(t, 0.0, sum, 1e-9)
		}
		// Coluna crescente preserva a ordem relativa
		assert.Less(t, scaled[0][0], scaled[1][0])
		assert.Less(t, scaled[1][0], scaled[2][0])
	})

	t.Run("variância zero vira 0.0 em vez de NaN", func(t *testing.T) {
		features := [][]float64{
			{5.0, 1.0},
			{5.0, 2.0},
			{5.0, 3.0},
		}

		scaled := standardize(features)

		for i := range scaled {
			assert.Equal(t, 0.0, scaled[i][0])
			assert.False(t, math.IsNaN(scaled[i][1]))
		}
	})

	t.Run("entrada vazia passa direto", func(t *testing.T) {
		assert.Empty(t, standardize(nil))
	})
}
