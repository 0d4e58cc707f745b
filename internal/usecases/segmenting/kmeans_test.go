package segmenting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKMeansOptions(k int) kMeansOptions {
	return kMeansOptions{
		Clusters:        k,
		Initializations: 10,
		MaxIterations:   300,
		Seed:            42,
	}
}

func TestKMeansSeparatesDistantGroups(t *testing.T) {
	// Dois grupos bem separados em 3 dimensões
	points := [][]float64{
		{0.0, 0.1, 0.0},
		{0.1, 0.0, 0.1},
		{0.0, 0.0, 0.2},
		{0.2, 0.1, 0.0},
		{0.1, 0.1, 0.1},
		{10.0, 10.1, 10.0},
		{10.1, 10.0, 10.1},
		{10.0, 10.0, 10.2},
		{10.2, 10.1, 10.0},
		{10.1, 10.1, 10.1},
	}

	labels, err := kMeans(points, testKMeansOptions(2))

	require.NoError(t, err)
	require.Len(t, labels, len(points))

	for i := 1; i < 5; i++ {
		assert.Equal(t, labels[0], labels[i])
	}
	for i := 6; i < 10; i++ {
		assert.Equal(t, labels[5], labels[i])
	}
	assert.NotEqual(t, labels[0], labels[5])
}

func TestKMeansDeterministicForFixedSeed(t *testing.T) {
	points := [][]float64{
		{1.0, 2.0}, {1.1, 2.1}, {0.9, 1.9},
		{5.0, 5.0}, {5.1, 4.9}, {4.9, 5.1},
		{9.0, 0.0}, {9.1, 0.1}, {8.9, -0.1},
	}

	first, err := kMeans(points, testKMeansOptions(3))
	require.NoError(t, err)

	second, err := kMeans(points, testKMeansOptions(3))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestKMeansRejectsBadInput(t *testing.T) {
	points := [][]float64{{1.0}, {2.0}}

	_, err := kMeans(points, testKMeansOptions(0))
	assert.Error(t, err)

	_, err = kMeans(points, testKMeansOptions(5))
	assert.Error(t, err)
}
