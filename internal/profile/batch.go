package profile

import (
	"sort"
	"sync"

	"fuzzyrec-tf/internal/models"
)

// UserResult es el resultado por usuario de un lote de perfiles.
// Un usuario con historial malo no afecta a los demás.
type UserResult struct {
	UserID  int
	Profile *models.ProfileDoc
	Err     error
}

// BuildAllProfiles construye un perfil por cada usuario distinto de la tabla
// de ratings, en paralelo. El resultado va ordenado por userId y es
// independiente del orden de procesamiento (cada perfil es función pura del
// historial de su usuario).
func (p *Profiler) BuildAllProfiles(ratings []models.RatingDoc, catalog Catalog, workers int) []UserResult {
	if workers <= 0 {
		workers = 4
	}

	byUser := make(map[int][]models.RatingDoc)
	for _, r := range ratings {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	userIDs := make([]int, 0, len(byUser))
	for id := range byUser {
		userIDs = append(userIDs, id)
	}
	sort.Ints(userIDs)

	results := make([]UserResult, len(userIDs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, id := range userIDs {
		sem <- struct{}{}
		wg.Add(1)

		go func(idx, userID int) {
			defer wg.Done()
			defer func() { <-sem }()

			prof, err := p.BuildProfile(userID, byUser[userID], catalog)
			results[idx] = UserResult{UserID: userID, Profile: prof, Err: err}
		}(i, id)
	}

	wg.Wait()
	return results
}
