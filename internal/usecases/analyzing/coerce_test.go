package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceQuantity(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "inteiro válido", raw: "12", expected: 12},
		{name: "decimal vira inteiro", raw: "2.0", expected: 2},
		{name: "negativo preservado", raw: "-3", expected: -3},
		{name: "vazio vira zero", raw: "", expected: 0},
		{name: "não numérico vira zero", raw: "abc", expected: 0},
		{name: "espaços são ignorados", raw: "  7 ", expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoerceQuantity(tt.raw))
		})
	}
}

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "decimal válido", raw: "5.95", expected: 5.95},
		{name: "inteiro válido", raw: "10", expected: 10.0},
		{name: "vazio vira zero", raw: "", expected: 0.0},
		{name: "não numérico vira zero", raw: "free", expected: 0.0},
		{name: "infinito vira zero", raw: "Inf", expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoercePrice(tt.raw))
		})
	}
}

func TestCoerceCustomerID(t *testing.T) {
	id := CoerceCustomerID("17850.0")
	require.NotNil(t, id)
	assert.Equal(t, int64(17850), *id)

	assert.Nil(t, CoerceCustomerID(""))
	assert.Nil(t, CoerceCustomerID("nan"))
	assert.Nil(t, CoerceCustomerID("None"))
	assert.Nil(t, CoerceCustomerID("abc"))
}

func TestCoerceInvoiceDate(t *testing.T) {
	// Formato do CSV original
	date := CoerceInvoiceDate("01-12-2009 07:45")
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2009, 12, 1, 7, 45, 0, 0, time.UTC), *date)

	// RFC3339
	date = CoerceInvoiceDate("2010-01-04T10:00:00Z")
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2010, 1, 4, 10, 0, 0, 0, time.UTC), *date)

	// Data não interpretável vira nil, nunca "agora"
	assert.Nil(t, CoerceInvoiceDate("not-a-date"))
	assert.Nil(t, CoerceInvoiceDate(""))
}
