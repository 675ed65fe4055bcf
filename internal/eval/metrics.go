package eval

import (
	"math"

	"fuzzyrec-tf/internal/recommend"
)

// PrecisionAtK: fracción de los primeros k recomendados que son relevantes.
func PrecisionAtK(recommended []int, relevant map[int]bool, k int) float64 {
	if k <= 0 || len(recommended) == 0 {
		return 0
	}
	topK := recommended
	if len(topK) > k {
		topK = topK[:k]
	}
	hits := 0
	for _, id := range topK {
		if relevant[id] {
			hits++
		}
	}
	return float64(hits) / float64(k)
}

// RecallAtK: fracción de los relevantes que aparecen en los primeros k.
func RecallAtK(recommended []int, relevant map[int]bool, k int) float64 {
	if k <= 0 || len(recommended) == 0 || len(relevant) == 0 {
		return 0
	}
	topK := recommended
	if len(topK) > k {
		topK = topK[:k]
	}
	hits := 0
	for _, id := range topK {
		if relevant[id] {
			hits++
		}
	}
	return float64(hits) / float64(len(relevant))
}

// NDCGAtK: ganancia acumulada descontada normalizada con relevancia binaria.
func NDCGAtK(recommended []int, relevant map[int]bool, k int) float64 {
	if k <= 0 || len(recommended) == 0 {
		return 0
	}
	topK := recommended
	if len(topK) > k {
		topK = topK[:k]
	}

	var dcg float64
	for i, id := range topK {
		if relevant[id] {
			dcg += 1 / math.Log2(float64(i)+2)
		}
	}

	ideal := len(relevant)
	if ideal > k {
		ideal = k
	}
	var idcg float64
	for i := 0; i < ideal; i++ {
		idcg += 1 / math.Log2(float64(i)+2)
	}
	if idcg == 0 {
		return 0
	}
	return dcg / idcg
}

// IntraListDiversity: disimilitud híbrida promedio entre pares de la lista.
// 1 = lista totalmente diversa, 0 = todos los ítems idénticos.
func IntraListDiversity(vectors [][]float64, w recommend.HybridWeights) float64 {
	if len(vectors) < 2 {
		return 0
	}
	var total float64
	pairs := 0
	for i := 0; i < len(vectors); i++ {
		for j := i + 1; j < len(vectors); j++ {
			total += 1 - w.Similarity(vectors[i], vectors[j])
			pairs++
		}
	}
	return total / float64(pairs)
}
