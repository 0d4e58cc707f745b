package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/segmenting"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
)

const defaultClusterCount = 3

// GetRFM executa a análise RFM com clusterização. O parâmetro k é
// restringido ao intervalo configurado antes de chegar ao núcleo.
func GetRFM(service segmenting.Segmenter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		k := defaultClusterCount
		if kStr := r.URL.Query().Get("k"); kStr != "" {
			parsed, err := strconv.Atoi(kStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "k deve ser um inteiro", nil)
				return
			}
			k = parsed
		}

		// Clamp de k para [min,max]
		if k < cfg.Segmentation.MinClusters {
			k = cfg.Segmentation.MinClusters
		}
		if k > cfg.Segmentation.MaxClusters {
			k = cfg.Segmentation.MaxClusters
		}

		logrus.WithField("k", k).Info("segmentation: running rfm analysis")

		rows, err := service.Segment(k)
		if err != nil {
			if errors.Is(err, segmenting.ErrClusteringFailed) {
				logrus.WithError(err).Error("segmentation: clustering failure")
				apiErrors.WriteError(w, apiErrors.ErrClustering, "Erro durante a clusterização", nil)
				return
			}

			logrus.WithError(err).Error("segmentation: rfm analysis failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar análise RFM", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logrus.WithError(err).Error("segmentation: failed to encode rfm response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
