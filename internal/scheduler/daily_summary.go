// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
)

type DailySummaryConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailySummaryService publica no log, uma vez por dia, os KPIs do dia
// anterior. Ele apenas invoca o núcleo de análise e registra o resultado —
// nada é persistido nem cacheado, preservando o contrato sem estado do
// núcleo.
type DailySummaryService struct {
	scheduler        *gocron.Scheduler
	analyticsService analyzing.Analyzer
	config           DailySummaryConfig
	reportRunning    bool
	reportMutex      sync.Mutex
	lastReportAt     time.Time
}

func NewDailySummaryService(
	analyticsService analyzing.Analyzer,
	cfg *config.Config,
) *DailySummaryService {
	summaryConfig := DailySummaryConfig{
		CronSchedule: cfg.DailySummary.CronSchedule, // Default: 6h da manhã todos os dias
		Enabled:      cfg.DailySummary.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": summaryConfig.CronSchedule,
	}).Info("Configuração do agendador de resumo diário carregada")

	return &DailySummaryService{
		scheduler:        scheduler,
		analyticsService: analyticsService,
		config:           summaryConfig,
	}
}

func (s *DailySummaryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de resumo diário desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ReportYesterday(); err != nil {
			logrus.WithError(err).Error("Erro ao gerar resumo diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// ReportYesterday calcula e loga os KPIs da janela de ontem
func (s *DailySummaryService) ReportYesterday() error {
	s.reportMutex.Lock()
	defer s.reportMutex.Unlock()

	if s.reportRunning {
		logrus.Warn("Resumo diário já está em execução")
		return nil
	}

	s.reportRunning = true
	defer func() {
		s.reportRunning = false
		s.lastReportAt = time.Now()
	}()

	yesterday := time.Now().AddDate(0, 0, -1)
	day := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())

	window := domain.DateRange{Start: &day, End: &day}
	summary := s.analyticsService.Summary(nil, window)

	logrus.WithFields(logrus.Fields{
		"date":             day.Format(time.DateOnly),
		"total_revenue":    summary.TotalRevenue,
		"total_orders":     summary.TotalOrders,
		"unique_customers": summary.UniqueCustomers,
		"avg_order_value":  summary.AvgOrderValue,
	}).Info("Resumo diário de vendas")

	return nil
}
