package analyzing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Normalize converte tuplas brutas do record store em registros tipados,
// aplicando a política de coerção campo a campo e derivando Revenue.
// Revenue é sempre recalculado como Quantity × Price, nunca confiado da
// fonte.
func Normalize(raws []*domain.RawTransaction) []*domain.TransactionRecord {
	records := make([]*domain.TransactionRecord, 0, len(raws))

	for _, raw := range raws {
		quantity := CoerceQuantity(raw.Quantity)
		price := CoercePrice(raw.Price)

		records = append(records, &domain.TransactionRecord{
			ID:          raw.ID,
			Invoice:     raw.Invoice,
			StockCode:   raw.StockCode,
			Description: raw.Description,
			Quantity:    quantity,
			Price:       price,
			CustomerID:  CoerceCustomerID(raw.CustomerID),
			InvoiceDate: CoerceInvoiceDate(raw.InvoiceDate),
			Country:     raw.Country,
			Revenue:     float64(quantity) * price,
		})
	}

	return records
}

// loadRecords busca uma janela limitada de registros e os normaliza.
// Indisponibilidade do store degrada para uma coleção vazia com warning,
// nunca um erro para o chamador.
func loadRecords(repo repository.TransactionRepository, filter *domain.RecordFilter, cap int) []*domain.TransactionRecord {
	raws, err := repo.Fetch(filter, uint64(cap))
	if err != nil {
		logrus.WithError(err).Warn("analytics: record store unavailable, degrading to empty set")
		return []*domain.TransactionRecord{}
	}

	return Normalize(raws)
}
