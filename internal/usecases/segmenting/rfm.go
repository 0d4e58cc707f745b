package segmenting

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// BuildRFM deriva a tabela Recency/Frequency/Monetary por cliente a partir
// do conjunto normalizado completo. Só entram registros com CustomerID e
// InvoiceDate presentes. Linhas com Recency < 0, Frequency <= 0,
// Monetary <= 0 ou valores não finitos são descartadas antes da
// clusterização. A saída é ordenada por CustomerID para estabilidade.
func BuildRFM(records []*domain.TransactionRecord, now time.Time) []*domain.CustomerRFM {
	type accumulator struct {
		latest   time.Time
		invoices map[string]struct{}
		monetary float64
	}

	perCustomer := make(map[int64]*accumulator)
	for _, record := range records {
		if record.CustomerID == nil || record.InvoiceDate == nil {
			continue
		}

		acc, ok := perCustomer[*record.CustomerID]
		if !ok {
			acc = &accumulator{invoices: make(map[string]struct{})}
			perCustomer[*record.CustomerID] = acc
		}

		if record.InvoiceDate.After(acc.latest) {
			acc.latest = *record.InvoiceDate
		}
		acc.invoices[record.Invoice] = struct{}{}
		acc.monetary += record.Revenue
	}

	rows := make([]*domain.CustomerRFM, 0, len(perCustomer))
	for customerID, acc := range perCustomer {
		recency := int(now.Sub(acc.latest).Hours() / 24)
		frequency := len(acc.invoices)

		if recency < 0 || frequency <= 0 || acc.monetary <= 0 {
			continue
		}
		if math.IsNaN(acc.monetary) || math.IsInf(acc.monetary, 0) {
			continue
		}

		rows = append(rows, &domain.CustomerRFM{
			CustomerID: customerID,
			Recency:    recency,
			Frequency:  frequency,
			Monetary:   acc.monetary,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CustomerID < rows[j].CustomerID
	})

	return rows
}
