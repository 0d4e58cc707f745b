package analyzing

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{
			RecordCap:          100000,
			DefaultTopProducts: 10,
			DefaultListLimit:   1000,
		},
	}
}

func TestNormalize(t *testing.T) {
	raws := []*domain.RawTransaction{
		{
			ID:          "t1",
			Invoice:     "536365",
			StockCode:   "85123A",
			Description: "WHITE HANGING HEART",
			Quantity:    "6",
			Price:       "2.55",
			CustomerID:  "17850",
			InvoiceDate: "2010-12-01T08:26:00Z",
			Country:     "United Kingdom",
		},
		{
			ID:          "t2",
			Invoice:     "536366",
			Quantity:    "not-a-number",
			Price:       "garbage",
			CustomerID:  "",
			InvoiceDate: "31-31-9999",
			Country:     "France",
		},
	}

	records := Normalize(raws)
	require.Len(t, records, 2)

	// Campos válidos coeridos e Revenue derivado
	assert.Equal(t, 6, records[0].Quantity)
	assert.Equal(t, 2.55, records[0].Price)
	assert.InDelta(t, 15.3, records[0].Revenue, 1e-9)
	require.NotNil(t, records[0].CustomerID)
	assert.Equal(t, int64(17850), *records[0].CustomerID)
	require.NotNil(t, records[0].InvoiceDate)

	// Campos malformados recebem os defaults documentados, o registro fica
	assert.Equal(t, 0, records[1].Quantity)
	assert.Equal(t, 0.0, records[1].Price)
	assert.Equal(t, 0.0, records[1].Revenue)
	assert.Nil(t, records[1].CustomerID)
	assert.Nil(t, records[1].InvoiceDate)
}

func TestServiceLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("repassa o filtro e o teto de registros", func(t *testing.T) {
		mockRepo := mocks.NewMockTransactionRepository(ctrl)
		service := NewService(testConfig(), mockRepo)

		filter := &domain.RecordFilter{Countries: []string{"France"}}
		mockRepo.EXPECT().
			Fetch(filter, uint64(100000)).
			Return([]*domain.RawTransaction{
				{ID: "t1", Invoice: "A1", Quantity: "2", Price: "5.0", Country: "France"},
			}, nil)

		records := service.Load(filter)

		require.Len(t, records, 1)
		assert.Equal(t, 10.0, records[0].Revenue)
	})

	t.Run("store indisponível degrada para coleção vazia", func(t *testing.T) {
		mockRepo := mocks.NewMockTransactionRepository(ctrl)
		service := NewService(testConfig(), mockRepo)

		mockRepo.EXPECT().
			Fetch(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection refused"))

		records := service.Load(nil)

		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}

func TestServiceSummaryUsesWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepository(ctrl)
	service := NewService(testConfig(), mockRepo)

	mockRepo.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return([]*domain.RawTransaction{
			{ID: "t1", Invoice: "A1", Quantity: "1", Price: "10.0", InvoiceDate: "2024-01-10T00:00:00Z"},
			{ID: "t2", Invoice: "A2", Quantity: "1", Price: "20.0", InvoiceDate: "2024-02-10T00:00:00Z"},
		}, nil).
		Times(2)

	all := service.Summary(nil, domain.DateRange{})
	assert.Equal(t, 30.0, all.TotalRevenue)

	start := timePtr(mustParseDate(t, "2024-02-01"))
	february := service.Summary(nil, domain.DateRange{Start: start})
	assert.Equal(t, 20.0, february.TotalRevenue)
	assert.Equal(t, 1, february.TotalOrders)
}

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	date := CoerceInvoiceDate(value)
	require.NotNil(t, date)
	return *date
}
