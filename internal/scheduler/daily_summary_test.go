package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

type stubAnalyzer struct {
	summaryWindows []domain.DateRange
}

func (s *stubAnalyzer) Load(_ *domain.RecordFilter) []*domain.TransactionRecord {
	return nil
}

func (s *stubAnalyzer) Summary(_ *domain.RecordFilter, window domain.DateRange) *domain.SummaryKPI {
	s.summaryWindows = append(s.summaryWindows, window)
	return &domain.SummaryKPI{TotalRevenue: 100.0, TotalOrders: 2, AvgOrderValue: 50.0}
}

func (s *stubAnalyzer) RevenueByCountry(_ *domain.RecordFilter, _ domain.DateRange) []*domain.CountryRevenue {
	return nil
}

func (s *stubAnalyzer) TopProducts(_ *domain.RecordFilter, _ domain.DateRange, _ int) []*domain.ProductRevenue {
	return nil
}

func (s *stubAnalyzer) MonthlyTrend(_ *domain.RecordFilter, _ domain.DateRange) []*domain.MonthlyRevenue {
	return nil
}

func (s *stubAnalyzer) Countries() []string {
	return nil
}

func TestDailySummaryService_ReportYesterday(t *testing.T) {
	analyzer := &stubAnalyzer{}
	service := &DailySummaryService{
		analyticsService: analyzer,
		config: DailySummaryConfig{
			CronSchedule: "0 6 * * *",
			Enabled:      true,
		},
	}

	err := service.ReportYesterday()

	require.NoError(t, err)
	require.Len(t, analyzer.summaryWindows, 1)

	window := analyzer.summaryWindows[0]
	require.NotNil(t, window.Start)
	require.NotNil(t, window.End)

	// Janela de um único dia: ontem, à meia-noite
	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Year(), window.Start.Year())
	assert.Equal(t, yesterday.Month(), window.Start.Month())
	assert.Equal(t, yesterday.Day(), window.Start.Day())
	assert.Equal(t, 0, window.Start.Hour())
	assert.Equal(t, *window.Start, *window.End)

	assert.False(t, service.lastReportAt.IsZero())
}

func TestDailySummaryService_SkipsWhenAlreadyRunning(t *testing.T) {
	analyzer := &stubAnalyzer{}
	service := &DailySummaryService{
		analyticsService: analyzer,
		reportRunning:    true,
	}

	// Com o flag de execução marcado, a chamada é pulada sem invocar o núcleo
	err := service.ReportYesterday()

	require.NoError(t, err)
	assert.Empty(t, analyzer.summaryWindows)
}
