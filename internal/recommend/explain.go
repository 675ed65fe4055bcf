package recommend

import (
	"math"
	"sort"

	"fuzzyrec-tf/internal/models"
)

// aportes por debajo de esto no se muestran en la explicación
const minContribution = 0.3

// Explain justifica una recomendación: qué géneros del perfil empujaron el
// score (la intersección min(pref, membresía)), qué tan fuerte es el match y
// qué géneros nuevos introduce la película respecto a los gránulos dominantes.
func (r *Recommender) Explain(vocab []string, profile, movie []float64, movieID int, dominant []models.Granule) *models.Explanation {
	score := r.weights.Similarity(profile, movie)

	matches := make([]models.GenreContribution, 0, 4)
	for i := 0; i < len(vocab) && i < len(profile) && i < len(movie); i++ {
		c := math.Min(profile[i], movie[i])
		if c < minContribution {
			continue
		}
		matches = append(matches, models.GenreContribution{
			Genre:         vocab[i],
			UserStrength:  profile[i],
			MovieStrength: movie[i],
			Contribution:  c,
		})
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Contribution > matches[b].Contribution
	})

	// géneros fuertes en la película que no están en los gránulos del usuario
	dom := make(map[string]bool, len(dominant))
	for _, g := range dominant {
		dom[g.Genre] = true
	}
	var newGenres []string
	for i := 0; i < len(vocab) && i < len(movie); i++ {
		if movie[i] >= minContribution && !dom[vocab[i]] {
			newGenres = append(newGenres, vocab[i])
		}
	}

	strength := "exploratoria"
	switch {
	case score > 0.7:
		strength = "fuerte"
	case score > 0.5:
		strength = "buena"
	}

	return &models.Explanation{
		MovieID:   movieID,
		Score:     score,
		Strength:  strength,
		Matches:   matches,
		NewGenres: newGenres,
	}
}
