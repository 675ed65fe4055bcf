package profile

import (
	"sort"

	"fuzzyrec-tf/internal/models"
)

// Umbral de deriva para clasificar la tendencia de un género.
const driftThreshold = 0.1

// PreferenceDrift compara la ventana temprana del historial contra la
// reciente (primer y último tercio por timestamp) y reporta la deriva de
// preferencia por género. Requiere historial suficiente para dos ventanas.
func (p *Profiler) PreferenceDrift(userID int, ratings []models.RatingDoc, catalog Catalog) ([]models.GenreDrift, error) {
	if len(ratings) == 0 {
		return nil, &EmptyHistoryError{UserID: userID}
	}

	sorted := make([]models.RatingDoc, len(ratings))
	copy(sorted, ratings)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Timestamp < sorted[b].Timestamp
	})

	window := len(sorted) / 3
	if window == 0 {
		// menos de 3 ratings: una sola ventana, sin deriva medible
		window = len(sorted)
	}

	early, err := p.BuildProfile(userID, sorted[:window], catalog)
	if err != nil {
		return nil, err
	}
	recent, err := p.BuildProfile(userID, sorted[len(sorted)-window:], catalog)
	if err != nil {
		return nil, err
	}

	g := p.graph.Size()
	out := make([]models.GenreDrift, 0, g)
	for i := 0; i < g; i++ {
		e := early.Preferences[i]
		r := recent.Preferences[i]
		d := r - e

		trend := "estable"
		if d > driftThreshold {
			trend = "subiendo"
		} else if d < -driftThreshold {
			trend = "bajando"
		}

		out = append(out, models.GenreDrift{
			Genre:  p.graph.Name(i),
			Early:  e,
			Recent: r,
			Drift:  d,
			Trend:  trend,
		})
	}
	return out, nil
}
