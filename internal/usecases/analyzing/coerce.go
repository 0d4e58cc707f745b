package analyzing

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Layouts aceitos para InvoiceDate, na ordem em que são tentados. O primeiro
// é o formato do CSV de varejo original ("01-12-2009 07:45").
var invoiceDateLayouts = []string{
	"02-01-2006 15:04",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// CoerceQuantity converte o campo Quantity bruto. Valores não numéricos
// viram 0, nunca um erro.
func CoerceQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	// Aceita notação decimal ("2.0") como a fonte original fazia
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int(f)
}

// CoercePrice converte o campo Price bruto. Valores não numéricos ou não
// finitos viram 0.0.
func CoercePrice(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0.0
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0.0
	}

	return f
}

// CoerceCustomerID converte o identificador de cliente. Ausente ou inválido
// vira nil, não 0, para distinguir "sem cliente" de um cliente real.
func CoerceCustomerID(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") || strings.EqualFold(raw, "none") {
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	id := int64(f)
	return &id
}

// CoerceInvoiceDate converte a data da fatura. Datas não interpretáveis
// viram nil — nunca são substituídas por "agora".
func CoerceInvoiceDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	return nil
}
