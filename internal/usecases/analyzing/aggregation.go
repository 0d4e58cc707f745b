package analyzing

import (
	"fmt"
	"sort"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Summary calcula os KPIs agregados do conjunto. Entrada vazia produz o
// struct zerado; avg_order_value é 0.0 quando não há pedidos.
func Summary(records []*domain.TransactionRecord) *domain.SummaryKPI {
	summary := &domain.SummaryKPI{}

	invoices := make(map[string]struct{})
	customers := make(map[int64]struct{})

	for _, record := range records {
		summary.TotalRevenue += record.Revenue
		if record.Invoice != "" {
			invoices[record.Invoice] = struct{}{}
		}
		if record.CustomerID != nil {
			customers[*record.CustomerID] = struct{}{}
		}
	}

	summary.TotalOrders = len(invoices)
	summary.UniqueCustomers = len(customers)
	if summary.TotalOrders > 0 {
		summary.AvgOrderValue = summary.TotalRevenue / float64(summary.TotalOrders)
	}

	return summary
}

// RevenueByCountry agrupa a receita por país, em ordem decrescente de
// receita. Grupos empatados mantêm uma ordem estável e determinística
// (as chaves são pré-ordenadas lexicograficamente antes do sort estável).
func RevenueByCountry(records []*domain.TransactionRecord) []*domain.CountryRevenue {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[record.Country] += record.Revenue
	}

	countries := make([]string, 0, len(totals))
	for country := range totals {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	rows := make([]*domain.CountryRevenue, 0, len(countries))
	for _, country := range countries {
		rows = append(rows, &domain.CountryRevenue{
			Country: country,
			Revenue: totals[country],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})

	return rows
}

// TopProducts agrupa receita e quantidade por par (StockCode, Description),
// em ordem decrescente de receita, truncado em limit. Pares repetidos são
// somados, não deduplicados.
func TopProducts(records []*domain.TransactionRecord, limit int) []*domain.ProductRevenue {
	type productKey struct {
		stockCode   string
		description string
	}

	totals := make(map[productKey]*domain.ProductRevenue)
	for _, record := range records {
		key := productKey{stockCode: record.StockCode, description: record.Description}
		row, ok := totals[key]
		if !ok {
			row = &domain.ProductRevenue{
				StockCode:   record.StockCode,
				Description: record.Description,
			}
			totals[key] = row
		}
		row.Revenue += record.Revenue
		row.Quantity += record.Quantity
	}

	rows := make([]*domain.ProductRevenue, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].StockCode != rows[j].StockCode {
			return rows[i].StockCode < rows[j].StockCode
		}
		return rows[i].Description < rows[j].Description
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return rows
}

// MonthlyTrend soma a receita por mês-calendário ("YYYY-MM"), em ordem
// cronológica. Registros sem InvoiceDate ficam de fora.
func MonthlyTrend(records []*domain.TransactionRecord) []*domain.MonthlyRevenue {
	totals := make(map[string]float64)
	for _, record := range records {
		if record.InvoiceDate == nil {
			continue
		}
		bucket := fmt.Sprintf("%04d-%02d", record.InvoiceDate.Year(), int(record.InvoiceDate.Month()))
		totals[bucket] += record.Revenue
	}

	buckets := make([]string, 0, len(totals))
	for bucket := range totals {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)

	rows := make([]*domain.MonthlyRevenue, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, &domain.MonthlyRevenue{
			YearMonth: bucket,
			Revenue:   totals[bucket],
		})
	}

	return rows
}

// Countries retorna os países distintos não vazios, em ordem lexicográfica
// crescente.
func Countries(records []*domain.TransactionRecord) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		if record.Country != "" {
			seen[record.Country] = struct{}{}
		}
	}

	countries := make([]string, 0, len(seen))
	for country := range seen {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	return countries
}
