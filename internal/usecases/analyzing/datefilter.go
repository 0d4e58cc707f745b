package analyzing

import (
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// FilterByDateRange restringe a coleção à janela informada. Start é
// inclusivo; End é inclusivo até o fim do dia (InvoiceDate < End + 1 dia).
// Registros sem InvoiceDate são excluídos sempre que houver pelo menos um
// limite, pois não podem ser provados dentro nem fora da janela. Sem
// limites, a coleção retorna inalterada. Não muta a entrada.
func FilterByDateRange(records []*domain.TransactionRecord, window domain.DateRange) []*domain.TransactionRecord {
	if !window.HasBounds() {
		return records
	}

	filtered := make([]*domain.TransactionRecord, 0, len(records))
	for _, record := range records {
		if record.InvoiceDate == nil {
			continue
		}
		if window.Start != nil && record.InvoiceDate.Before(*window.Start) {
			continue
		}
		if window.End != nil {
			endOfDay := window.End.AddDate(0, 0, 1)
			if !record.InvoiceDate.Before(endOfDay) {
				continue
			}
		}
		filtered = append(filtered, record)
	}

	return filtered
}
