package recommend

import (
	"fmt"
	"sort"

	"fuzzyrec-tf/internal/models"
)

// InvalidParameterError indica parámetros de recomendación fuera de rango.
// Se reporta al caller sin resultado parcial.
type InvalidParameterError struct {
	Param string
	Msg   string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("parámetro %s inválido: %s", e.Param, e.Msg)
}

// Options controla una corrida de recomendación.
type Options struct {
	// TopN es el largo máximo de la lista (>= 1).
	TopN int
	// Lambda es el trade-off relevancia/diversidad de MMR, en [0,1].
	// 0 = ranking puro por relevancia, 1 = castigo máximo a duplicados.
	Lambda float64
	// Pool, si es > 0, pre-filtra los candidatos a los Pool más relevantes
	// antes de aplicar MMR. Optimización pura: con Pool suficientemente
	// grande el resultado es idéntico al exacto.
	Pool int
}

// Recommender rankea y diversifica candidatos contra un perfil.
// Sin estado mutable: seguro para llamadas concurrentes por usuario.
type Recommender struct {
	weights HybridWeights
}

// New valida los pesos híbridos y construye el recomendador.
func New(w HybridWeights) (*Recommender, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Recommender{weights: w}, nil
}

// Weights expone los pesos configurados (para evaluación y explicaciones).
func (r *Recommender) Weights() HybridWeights { return r.weights }

// candidate lleva el score de relevancia fijo y el vector de la película.
type candidate struct {
	movieID int
	vector  []float64
	score   float64 // híbrido contra el perfil, no cambia durante MMR
}

// Recommend calcula el score híbrido de cada candidato contra el perfil y
// selecciona topN por Maximal Marginal Relevance:
//
//	MMR(m) = H(m) - lambda * max similitud(m, ya seleccionados)
//
// Las películas excluidas (ya valoradas) jamás aparecen. Determinístico:
// empates se rompen por movieId menor. Si tras excluir no quedan candidatos
// devuelve lista vacía, no error.
func (r *Recommender) Recommend(profile []float64, catalog map[int][]float64, exclude map[int]bool, opts Options) ([]models.RecItem, error) {
	if opts.TopN < 1 {
		return nil, &InvalidParameterError{Param: "topN", Msg: fmt.Sprintf("%d, debe ser >= 1", opts.TopN)}
	}
	if opts.Lambda < 0 || opts.Lambda > 1 {
		return nil, &InvalidParameterError{Param: "lambda", Msg: fmt.Sprintf("%.2f, debe estar en [0,1]", opts.Lambda)}
	}

	// 1) candidatos = catálogo menos exclusiones, con relevancia precalculada
	cands := make([]candidate, 0, len(catalog))
	for id, vec := range catalog {
		if exclude[id] {
			continue
		}
		cands = append(cands, candidate{
			movieID: id,
			vector:  vec,
			score:   r.weights.Similarity(profile, vec),
		})
	}
	if len(cands) == 0 {
		return []models.RecItem{}, nil
	}

	// orden base determinístico: relevancia desc, empate por id menor
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].movieID < cands[j].movieID
	})

	// 2) pre-filtro opcional por relevancia
	if opts.Pool > 0 && len(cands) > opts.Pool {
		cands = cands[:opts.Pool]
	}

	// 3) selección greedy MMR. La primera iteración no tiene seleccionados,
	// así que el término de penalización es 0 y gana la mayor relevancia.
	selected := make([]models.RecItem, 0, opts.TopN)
	selectedVecs := make([][]float64, 0, opts.TopN)

	for len(selected) < opts.TopN && len(cands) > 0 {
		bestIdx := -1
		var bestMMR float64

		for i, c := range cands {
			var maxSim float64
			for _, sv := range selectedVecs {
				if s := r.weights.Similarity(c.vector, sv); s > maxSim {
					maxSim = s
				}
			}
			mmr := c.score - opts.Lambda*maxSim

			// empate: gana el movieId menor; como cands está ordenado por
			// (score desc, id asc), basta con la desigualdad estricta salvo
			// que MMR reordene, donde comparamos id explícitamente
			if bestIdx < 0 || mmr > bestMMR ||
				(mmr == bestMMR && c.movieID < cands[bestIdx].movieID) {
				bestIdx = i
				bestMMR = mmr
			}
		}

		best := cands[bestIdx]
		selected = append(selected, models.RecItem{
			MovieID:  best.movieID,
			Score:    best.score,
			MMRScore: bestMMR,
			Rank:     len(selected) + 1,
		})
		selectedVecs = append(selectedVecs, best.vector)
		cands = append(cands[:bestIdx], cands[bestIdx+1:]...)
	}

	return selected, nil
}
