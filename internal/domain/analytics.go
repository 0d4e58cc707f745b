package domain

// SummaryKPI agrega os indicadores principais de um conjunto de registros.
type SummaryKPI struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	UniqueCustomers int     `json:"unique_customers"`
	AvgOrderValue   float64 `json:"avg_order_value"`
}

// CountryRevenue é uma linha do agrupamento de receita por país.
type CountryRevenue struct {
	Country string  `json:"Country"`
	Revenue float64 `json:"Revenue"`
}

// ProductRevenue é uma linha do ranking de produtos por receita. Pares
// (StockCode, Description) repetidos são somados, não deduplicados.
type ProductRevenue struct {
	StockCode   string  `json:"StockCode"`
	Description string  `json:"Description"`
	Revenue     float64 `json:"Revenue"`
	Quantity    int     `json:"Quantity"`
}

// MonthlyRevenue é uma linha da série mensal de receita. YearMonth usa o
// formato literal "YYYY-MM".
type MonthlyRevenue struct {
	YearMonth string  `json:"year_month"`
	Revenue   float64 `json:"Revenue"`
}
