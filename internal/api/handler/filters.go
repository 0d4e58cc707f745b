package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// parseRecordFilter monta o filtro do record store a partir da query string:
// invoice (igualdade exata) e countries (lista separada por vírgula).
func parseRecordFilter(r *http.Request) *domain.RecordFilter {
	filter := &domain.RecordFilter{
		Invoice: r.URL.Query().Get("invoice"),
	}

	if countries := r.URL.Query().Get("countries"); countries != "" {
		for _, country := range strings.Split(countries, ",") {
			if country = strings.TrimSpace(country); country != "" {
				filter.Countries = append(filter.Countries, country)
			}
		}
	}

	if filter.Invoice == "" && len(filter.Countries) == 0 {
		return nil
	}

	return filter
}

// parseDateRange monta a janela de datas a partir de start_date/end_date.
func parseDateRange(r *http.Request) (domain.DateRange, error) {
	window := domain.DateRange{}

	start, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return window, err
	}

	end, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return window, err
	}

	window.Start = start
	window.End = end
	return window, nil
}
