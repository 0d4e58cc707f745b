package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
)

// GetSummary retorna os KPIs agregados da janela filtrada
func GetSummary(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := parseDateRange(r)
		if err != nil {
			logrus.WithError(err).Warn("analytics: invalid date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem usar o formato YYYY-MM-DD", nil)
			return
		}

		summary := service.Summary(parseRecordFilter(r), window)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.WithError(err).Error("analytics: failed to encode summary response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetRevenueByCountry retorna a receita agrupada por país
func GetRevenueByCountry(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := parseDateRange(r)
		if err != nil {
			logrus.WithError(err).Warn("analytics: invalid date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem usar o formato YYYY-MM-DD", nil)
			return
		}

		rows := service.RevenueByCountry(parseRecordFilter(r), window)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logrus.WithError(err).Error("analytics: failed to encode revenue by country response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetTopProducts retorna o ranking de produtos por receita
func GetTopProducts(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := parseDateRange(r)
		if err != nil {
			logrus.WithError(err).Warn("analytics: invalid date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem usar o formato YYYY-MM-DD", nil)
			return
		}

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			limit, err = strconv.Atoi(limitStr)
			if err != nil || limit < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
		}

		rows := service.TopProducts(parseRecordFilter(r), window, limit)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logrus.WithError(err).Error("analytics: failed to encode top products response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetMonthlyTrend retorna a série mensal de receita
func GetMonthlyTrend(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := parseDateRange(r)
		if err != nil {
			logrus.WithError(err).Warn("analytics: invalid date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem usar o formato YYYY-MM-DD", nil)
			return
		}

		rows := service.MonthlyTrend(parseRecordFilter(r), window)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logrus.WithError(err).Error("analytics: failed to encode monthly trend response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCountries retorna os países distintos presentes nos registros
func GetCountries(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		countries := service.Countries()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(countries); err != nil {
			logrus.WithError(err).Error("analytics: failed to encode countries response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
