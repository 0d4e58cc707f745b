package segmenting

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// RecordLoader define o que a segmentação precisa do núcleo de análise:
// o conjunto normalizado completo, sem filtro de datas.
type RecordLoader interface {
	Load(filter *domain.RecordFilter) []*domain.TransactionRecord
}

// Segmenter particiona os clientes em segmentos a partir da tabela RFM.
type Segmenter interface {
	// Segment monta a tabela RFM e atribui um cluster a cada cliente.
	// k deve chegar já restrito ao intervalo configurado. Escassez de dados
	// não é erro: com menos linhas que k, todas recebem cluster 0 e a
	// clusterização é pulada. Só ErrClusteringFailed escapa.
	Segment(k int) ([]*domain.CustomerRFM, error)
}

type Service struct {
	cfg    *config.Config
	loader RecordLoader
}

func NewService(cfg *config.Config, loader RecordLoader) Segmenter {
	return &Service{
		cfg:    cfg,
		loader: loader,
	}
}

func (s *Service) Segment(k int) ([]*domain.CustomerRFM, error) {
	if k < s.cfg.Segmentation.MinClusters || k > s.cfg.Segmentation.MaxClusters {
		return nil, errors.Wrapf(ErrInvalidClusterCount, "k=%d fora de [%d,%d]",
			k, s.cfg.Segmentation.MinClusters, s.cfg.Segmentation.MaxClusters)
	}

	records := s.loader.Load(nil)
	rows := BuildRFM(records, time.Now())

	// Caminho degenerado: menos clientes que clusters. Todos ficam no
	// cluster 0 e o pipeline nunca falha por entrada esparsa.
	if len(rows) < k {
		logrus.WithFields(logrus.Fields{
			"customers": len(rows),
			"k":         k,
		}).Warn("segmentation: not enough customers for clustering, assigning single cluster")
		return rows, nil
	}

	scaled := standardize(buildFeatureMatrix(rows))

	labels, err := kMeans(scaled, kMeansOptions{
		Clusters:        k,
		Initializations: s.cfg.Segmentation.Initializations,
		MaxIterations:   s.cfg.Segmentation.MaxIterations,
		Seed:            s.cfg.Segmentation.Seed,
	})
	if err != nil {
		logrus.WithError(err).WithField("k", k).Error("segmentation: clustering failed")
		return nil, errors.Wrap(ErrClusteringFailed, err.Error())
	}

	// Mescla os rótulos de volta por posição; linhas que ainda carreguem
	// valor inválido são descartadas do resultado final, não propagadas.
	result := make([]*domain.CustomerRFM, 0, len(rows))
	for i, row := range rows {
		if math.IsNaN(row.Monetary) || math.IsInf(row.Monetary, 0) {
			continue
		}
		row.Cluster = labels[i]
		result = append(result, row)
	}

	logrus.WithFields(logrus.Fields{
		"customers": len(result),
		"k":         k,
	}).Info("segmentation: rfm clustering completed")

	return result, nil
}
