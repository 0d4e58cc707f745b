package analyzing

import (
	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Analyzer é a interface do núcleo de análise exposta à camada de
// transporte. Nenhum método retorna erro: carregamento e agregação degradam
// para saídas vazias bem definidas.
type Analyzer interface {
	// Load busca e normaliza uma janela limitada de registros.
	Load(filter *domain.RecordFilter) []*domain.TransactionRecord

	Summary(filter *domain.RecordFilter, window domain.DateRange) *domain.SummaryKPI
	RevenueByCountry(filter *domain.RecordFilter, window domain.DateRange) []*domain.CountryRevenue
	TopProducts(filter *domain.RecordFilter, window domain.DateRange, limit int) []*domain.ProductRevenue
	MonthlyTrend(filter *domain.RecordFilter, window domain.DateRange) []*domain.MonthlyRevenue
	Countries() []string
}

type Service struct {
	cfg                   *config.Config
	transactionRepository repository.TransactionRepository
}

// NewService cria o serviço de análise sobre o record store injetado. Cada
// chamada rebusca e rederiva seu próprio conjunto de trabalho; não há
// estado mutável compartilhado entre chamadas.
func NewService(cfg *config.Config, transactionRepo repository.TransactionRepository) Analyzer {
	return &Service{
		cfg:                   cfg,
		transactionRepository: transactionRepo,
	}
}

func (s *Service) Load(filter *domain.RecordFilter) []*domain.TransactionRecord {
	return loadRecords(s.transactionRepository, filter, s.cfg.Analytics.RecordCap)
}

func (s *Service) Summary(filter *domain.RecordFilter, window domain.DateRange) *domain.SummaryKPI {
	records := FilterByDateRange(s.Load(filter), window)
	return Summary(records)
}

func (s *Service) RevenueByCountry(filter *domain.RecordFilter, window domain.DateRange) []*domain.CountryRevenue {
	records := FilterByDateRange(s.Load(filter), window)
	return RevenueByCountry(records)
}

func (s *Service) TopProducts(filter *domain.RecordFilter, window domain.DateRange, limit int) []*domain.ProductRevenue {
	if limit <= 0 {
		limit = s.cfg.Analytics.DefaultTopProducts
	}

	records := FilterByDateRange(s.Load(filter), window)
	return TopProducts(records, limit)
}

func (s *Service) MonthlyTrend(filter *domain.RecordFilter, window domain.DateRange) []*domain.MonthlyRevenue {
	records := FilterByDateRange(s.Load(filter), window)
	return MonthlyTrend(records)
}

func (s *Service) Countries() []string {
	return Countries(s.Load(nil))
}
