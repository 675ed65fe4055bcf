package recommend

import (
	"fmt"
	"math"

	"fuzzyrec-tf/internal/genre"
)

// Jaccard difuso: sum(min) / sum(max). 0/0 se define como 0.
func Jaccard(a, b []float64) float64 {
	var inter, union float64
	for i := 0; i < len(a) && i < len(b); i++ {
		inter += math.Min(a[i], b[i])
		union += math.Max(a[i], b[i])
	}
	if union == 0 {
		return 0
	}
	return inter / union
}

// Cosine difuso: coseno estándar, 0 si algún vector es todo ceros.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := 0; i < len(a) && i < len(b); i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Dice difuso: 2*sum(min) / (sum(a) + sum(b)). 0 si el denominador es 0.
func Dice(a, b []float64) float64 {
	var inter, total float64
	for i := 0; i < len(a) && i < len(b); i++ {
		inter += math.Min(a[i], b[i])
		total += a[i] + b[i]
	}
	if total == 0 {
		return 0
	}
	return 2 * inter / total
}

// HybridWeights pondera las tres métricas. Deben sumar 1.
type HybridWeights struct {
	Jaccard float64
	Cosine  float64
	Dice    float64
}

// DefaultHybridWeights es la combinación 0.4/0.4/0.2 del diseño original.
func DefaultHybridWeights() HybridWeights {
	return HybridWeights{Jaccard: 0.4, Cosine: 0.4, Dice: 0.2}
}

// Validate se ejecuta una sola vez, al configurar el recomendador.
func (w HybridWeights) Validate() error {
	if w.Jaccard < 0 || w.Cosine < 0 || w.Dice < 0 {
		return fmt.Errorf("%w: pesos híbridos negativos", genre.ErrConfig)
	}
	sum := w.Jaccard + w.Cosine + w.Dice
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("%w: pesos híbridos suman %.4f, deben sumar 1", genre.ErrConfig, sum)
	}
	return nil
}

// Similarity es el score híbrido entre dos vectores difusos.
// Se usa igual para perfil-película y película-película.
func (w HybridWeights) Similarity(a, b []float64) float64 {
	return w.Jaccard*Jaccard(a, b) + w.Cosine*Cosine(a, b) + w.Dice*Dice(a, b)
}
