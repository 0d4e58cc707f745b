package segmenting

import (
	"math"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// buildFeatureMatrix monta a matriz de características [Recency, Frequency,
// log(1+Monetary)] na mesma ordem das linhas da tabela RFM. O log1p só no
// Monetary compensa a cauda pesada que dominaria a métrica de distância.
func buildFeatureMatrix(rows []*domain.CustomerRFM) [][]float64 {
	features := make([][]float64, len(rows))
	for i, row := range rows {
		features[i] = []float64{
			float64(row.Recency),
			float64(row.Frequency),
			math.Log1p(row.Monetary),
		}
	}
	return features
}

// standardize reescala cada coluna para média zero e variância unitária,
// reajustada a cada chamada sobre a população corrente — não há parâmetros
// de escala persistidos. Valores não finitos (ex.: coluna de variância
// zero) viram 0.0 em vez de propagar NaN/Inf para a clusterização.
func standardize(features [][]float64) [][]float64 {
	if len(features) == 0 {
		return features
	}

	dims := len(features[0])
	scaled := make([][]float64, len(features))
	for i := range scaled {
		scaled[i] = make([]float64, dims)
	}

	column := make([]float64, len(features))
	for d := 0; d < dims; d++ {
		for i := range features {
			column[i] = features[i][d]
		}

		mean, std := stat.MeanStdDev(column, nil)

		for i := range features {
			value := 0.0
			if std > 0 && !math.IsNaN(std) && !math.IsInf(std, 0) {
				value = (features[i][d] - mean) / std
			}
			if math.IsNaN(value) || math.IsInf(value, 0) {
				value = 0.0
			}
			scaled[i][d] = value
		}
	}

	return scaled
}
