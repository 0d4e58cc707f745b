package segmenting

import "errors"

// Erros específicos do contexto de segmentação
var (
	// ErrClusteringFailed indica uma falha numérica inesperada durante o
	// escalonamento ou a clusterização. É o único erro que o núcleo deixa
	// escapar para a camada de transporte; escassez de dados NÃO é um erro
	// (produz a saída degenerada de cluster único).
	ErrClusteringFailed = errors.New("clustering failed")

	// ErrInvalidClusterCount indica um k fora do intervalo permitido após o
	// clamp da camada de transporte.
	ErrInvalidClusterCount = errors.New("invalid cluster count")
)
