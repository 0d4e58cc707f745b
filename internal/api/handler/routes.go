package handler

import (
	"net/http"

	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/segmenting"
)

func Healthcheck(conn *postgres.Connection) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

func Transactions(service analyzing.Analyzer, repo repository.TransactionRepository, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(service, cfg),
		},
		{
			Path:    "/v1/transactions",
			Method:  http.MethodPost,
			Handler: CreateTransaction(repo),
		},
		{
			Path:    "/v1/transactions/:id",
			Method:  http.MethodPut,
			Handler: UpdateTransaction(repo),
		},
		{
			Path:    "/v1/transactions/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTransaction(repo),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/analytics/revenue-by-country",
			Method:  http.MethodGet,
			Handler: GetRevenueByCountry(service),
		},
		{
			Path:    "/v1/analytics/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    "/v1/analytics/monthly-trend",
			Method:  http.MethodGet,
			Handler: GetMonthlyTrend(service),
		},
		{
			Path:    "/v1/analytics/countries",
			Method:  http.MethodGet,
			Handler: GetCountries(service),
		},
	}
}

func Segmentation(service segmenting.Segmenter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/rfm",
			Method:  http.MethodGet,
			Handler: GetRFM(service, cfg),
		},
	}
}
