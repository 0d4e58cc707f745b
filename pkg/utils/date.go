package utils

import "time"

// ParseDate interpreta um parâmetro de data vindo da query string. Retorna
// nil quando o parâmetro está vazio. Aceita "2006-01-02" e RFC3339.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		date, err = time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return nil, err
		}
	}

	return &date, nil
}
