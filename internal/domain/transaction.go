package domain

import "time"

// RawTransaction é a tupla bruta devolvida pelo record store, antes de
// qualquer coerção. Os campos numéricos e a data permanecem como texto
// porque a coleção original aceitava valores não validados.
type RawTransaction struct {
	ID          string
	Invoice     string
	StockCode   string
	Description string
	Quantity    string
	Price       string
	CustomerID  string
	InvoiceDate string
	Country     string
}

// TransactionRecord é o registro normalizado usado por todo o núcleo de
// análise. Revenue é sempre derivado de Quantity × Price, nunca lido da
// fonte.
type TransactionRecord struct {
	ID          string     `json:"id,omitempty"`
	Invoice     string     `json:"Invoice"`
	StockCode   string     `json:"StockCode"`
	Description string     `json:"Description"`
	Quantity    int        `json:"Quantity"`
	Price       float64    `json:"Price"`
	CustomerID  *int64     `json:"CustomerID"`
	InvoiceDate *time.Time `json:"InvoiceDate"`
	Country     string     `json:"Country"`
	Revenue     float64    `json:"Revenue"`
}

// RecordFilter descreve os únicos predicados que o record store suporta:
// igualdade exata de Invoice e pertencimento a um conjunto de países.
type RecordFilter struct {
	Invoice   string
	Countries []string
}

// DateRange é a janela de datas aplicada sobre registros já carregados.
// Start é inclusivo; End é inclusivo até o fim do dia informado.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// HasBounds informa se algum limite foi fornecido.
func (r DateRange) HasBounds() bool {
	return r.Start != nil || r.End != nil
}
