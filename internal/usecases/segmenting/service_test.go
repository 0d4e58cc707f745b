package segmenting

import (
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

type stubLoader struct {
	records []*domain.TransactionRecord
}

func (s *stubLoader) Load(_ *domain.RecordFilter) []*domain.TransactionRecord {
	return s.records
}

func testSegmentationConfig() *config.Config {
	return &config.Config{
		Segmentation: config.Segmentation{
			MinClusters:     2,
			MaxClusters:     8,
			Initializations: 10,
			MaxIterations:   300,
			Seed:            42,
		},
	}
}

func TestSegmentValidatesClusterCount(t *testing.T) {
	service := NewService(testSegmentationConfig(), &stubLoader{})

	_, err := service.Segment(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidClusterCount))

	_, err = service.Segment(9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidClusterCount))
}

func TestSegmentDegeneratePath(t *testing.T) {
	now := time.Now()

	// Três clientes e k = 5: a clusterização é pulada e todos ficam no
	// cluster 0
	records := []*domain.TransactionRecord{
		rfmRecord("A1", 100, now.AddDate(0, 0, -1), 10.0),
		rfmRecord("A2", 200, now.AddDate(0, 0, -2), 20.0),
		rfmRecord("A3", 300, now.AddDate(0, 0, -3), 30.0),
	}

	service := NewService(testSegmentationConfig(), &stubLoader{records: records})

	rows, err := service.Segment(5)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 0, row.Cluster)
	}
}

func TestSegmentSeparatesDistinctPopulations(t *testing.T) {
	now := time.Now()

	var records []*domain.TransactionRecord

	// Grupo A: compras recentes, frequentes e de alto valor
	for i := int64(0); i < 5; i++ {
		customerID := 100 + i
		for day := 0; day < 10; day++ {
			records = append(records, rfmRecord(
				fmt.Sprintf("A-%d-%d", customerID, day),
				customerID,
				now.AddDate(0, 0, -1-day),
				500.0,
			))
		}
	}

	// Grupo B: uma compra antiga e barata por cliente
	for i := int64(0); i < 5; i++ {
		customerID := 900 + i
		records = append(records, rfmRecord(
			fmt.Sprintf("B-%d", customerID),
			customerID,
			now.AddDate(0, 0, -360),
			5.0,
		))
	}

	service := NewService(testSegmentationConfig(), &stubLoader{records: records})

	rows, err := service.Segment(2)

	require.NoError(t, err)
	require.Len(t, rows, 10)

	clusterByCustomer := make(map[int64]int, len(rows))
	for _, row := range rows {
		clusterByCustomer[row.CustomerID] = row.Cluster
	}

	groupA := clusterByCustomer[100]
	groupB := clusterByCustomer[900]
	for i := int64(0); i < 5; i++ {
		assert.Equal(t, groupA, clusterByCustomer[100+i])
		assert.Equal(t, groupB, clusterByCustomer[900+i])
	}
	assert.NotEqual(t, groupA, groupB)
}

func TestSegmentIsRepeatable(t *testing.T) {
	now := time.Now()

	var records []*domain.TransactionRecord
	for i := int64(0); i < 12; i++ {
		records = append(records, rfmRecord(
			fmt.Sprintf("A-%d", i),
			100+i,
			now.AddDate(0, 0, -int(i+1)*7),
			float64(i+1)*13.5,
		))
	}

	service := NewService(testSegmentationConfig(), &stubLoader{records: records})

	first, err := service.Segment(3)
	require.NoError(t, err)

	second, err := service.Segment(3)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].CustomerID, second[i].CustomerID)
		assert.Equal(t, first[i].Cluster, second[i].Cluster)
	}
}
