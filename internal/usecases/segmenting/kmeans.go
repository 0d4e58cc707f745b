package segmenting

import (
	"fmt"
	"math"
	"math/rand"
)

// kMeansOptions parametriza o particionamento. Seed fixa garante
// reprodutibilidade para entradas idênticas; múltiplas inicializações
// mitigam a sensibilidade à posição inicial dos centroides sem custo
// ilimitado.
type kMeansOptions struct {
	Clusters        int
	Initializations int
	MaxIterations   int
	Seed            int64
}

// kMeans particiona os pontos em k clusters minimizando a soma dos
// quadrados das distâncias euclidianas intra-cluster. Executa
// Initializations rodadas com centroides sorteados e devolve os rótulos da
// rodada de menor inércia.
func kMeans(points [][]float64, opts kMeansOptions) ([]int, error) {
	if opts.Clusters < 1 {
		return nil, fmt.Errorf("número de clusters inválido: %d", opts.Clusters)
	}
	if len(points) < opts.Clusters {
		return nil, fmt.Errorf("pontos insuficientes: %d para %d clusters", len(points), opts.Clusters)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	bestInertia := math.Inf(1)
	var bestLabels []int

	for run := 0; run < opts.Initializations; run++ {
		labels, inertia, err := runKMeans(points, opts.Clusters, opts.MaxIterations, rng)
		if err != nil {
			return nil, err
		}
		if inertia < bestInertia {
			bestInertia = inertia
			bestLabels = labels
		}
	}

	if bestLabels == nil {
		return nil, fmt.Errorf("nenhuma rodada de k-means convergiu")
	}

	return bestLabels, nil
}

func runKMeans(points [][]float64, k, maxIterations int, rng *rand.Rand) ([]int, float64, error) {
	dims := len(points[0])

	// Centroides iniciais: k pontos distintos sorteados
	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(len(points))[:k] {
		centroids[i] = append([]float64(nil), points[idx]...)
	}

	labels := make([]int, len(points))
	for iter := 0; iter < maxIterations; iter++ {
		changed := false

		// Atribuição: cada ponto vai para o centroide mais próximo
		for i, point := range points {
			best := labels[i]
			bestDist := math.Inf(1)
			for c, centroid := range centroids {
				dist := squaredDistance(point, centroid)
				if dist < bestDist {
					bestDist = dist
					best = c
				}
			}
			if best != labels[i] {
				labels[i] = best
				changed = true
			}
		}

		if iter > 0 && !changed {
			break
		}

		// Atualização: centroide vira a média dos pontos atribuídos.
		// Cluster esvaziado é ressemeado com um ponto aleatório.
		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, point := range points {
			counts[labels[i]]++
			for d, v := range point {
				sums[labels[i]][d] += v
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				centroids[c] = append([]float64(nil), points[rng.Intn(len(points))]...)
				continue
			}
			for d := range centroids[c] {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	inertia := 0.0
	for i, point := range points {
		inertia += squaredDistance(point, centroids[labels[i]])
	}
	if math.IsNaN(inertia) || math.IsInf(inertia, 0) {
		return nil, 0, fmt.Errorf("inércia não finita")
	}

	return labels, inertia, nil
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
