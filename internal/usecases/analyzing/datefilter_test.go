package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestFilterByDateRange(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	jan15 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	jan20 := time.Date(2024, 1, 20, 23, 59, 0, 0, time.UTC)

	records := []*domain.TransactionRecord{
		{Invoice: "A1", InvoiceDate: timePtr(jan10)},
		{Invoice: "A2", InvoiceDate: timePtr(jan15)},
		{Invoice: "A3", InvoiceDate: timePtr(jan20)},
		{Invoice: "A4", InvoiceDate: nil},
	}

	tests := []struct {
		name     string
		window   domain.DateRange
		expected []string
	}{
		{
			name:     "sem limites retorna tudo, inclusive sem data",
			window:   domain.DateRange{},
			expected: []string{"A1", "A2", "A3", "A4"},
		},
		{
			name: "start inclusivo",
			window: domain.DateRange{
				Start: timePtr(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
			},
			expected: []string{"A2", "A3"},
		},
		{
			name: "end inclusivo até o fim do dia",
			window: domain.DateRange{
				End: timePtr(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
			},
			expected: []string{"A1", "A2", "A3"},
		},
		{
			name: "janela fechada exclui registros sem data",
			window: domain.DateRange{
				Start: timePtr(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)),
				End:   timePtr(time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC)),
			},
			expected: []string{"A2"},
		},
		{
			name: "qualquer limite exclui registros sem data",
			window: domain.DateRange{
				Start: timePtr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
			expected: []string{"A1", "A2", "A3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterByDateRange(records, tt.window)

			invoices := make([]string, 0, len(filtered))
			for _, record := range filtered {
				invoices = append(invoices, record.Invoice)
			}
			assert.Equal(t, tt.expected, invoices)
		})
	}
}

func TestFilterByDateRangeDoesNotMutateInput(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	records := []*domain.TransactionRecord{
		{Invoice: "A1", InvoiceDate: timePtr(jan10)},
		{Invoice: "A2", InvoiceDate: nil},
	}

	FilterByDateRange(records, domain.DateRange{Start: timePtr(jan10)})

	assert.Len(t, records, 2)
	assert.Equal(t, "A1", records[0].Invoice)
	assert.Equal(t, "A2", records[1].Invoice)
}
