package eval

import (
	"sort"

	"fuzzyrec-tf/internal/models"
)

// Split son los ratings de un usuario partidos en entrenamiento y prueba.
type Split struct {
	Train []models.RatingDoc
	Test  []models.RatingDoc
}

// LeaveRecentOut parte el historial de cada usuario por timestamp: los más
// recientes (testFrac del total, mínimo 1) quedan como prueba. Usuarios con
// un solo rating se quedan enteros en entrenamiento.
func LeaveRecentOut(ratings []models.RatingDoc, testFrac float64) map[int]Split {
	if testFrac <= 0 {
		testFrac = 0.2
	}
	if testFrac > 0.5 {
		testFrac = 0.5
	}

	byUser := make(map[int][]models.RatingDoc)
	for _, r := range ratings {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	out := make(map[int]Split, len(byUser))
	for userID, rs := range byUser {
		sort.SliceStable(rs, func(a, b int) bool {
			if rs[a].Timestamp != rs[b].Timestamp {
				return rs[a].Timestamp < rs[b].Timestamp
			}
			return rs[a].MovieID < rs[b].MovieID
		})

		if len(rs) < 2 {
			out[userID] = Split{Train: rs}
			continue
		}

		n := int(float64(len(rs)) * testFrac)
		if n < 1 {
			n = 1
		}
		cut := len(rs) - n
		out[userID] = Split{Train: rs[:cut], Test: rs[cut:]}
	}
	return out
}
