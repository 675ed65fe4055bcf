package eval

import (
	"math/rand"
	"sort"

	"fuzzyrec-tf/internal/models"
)

// PopularityTopN: las n películas con más ratings, excluyendo las ya vistas.
// Baseline clásico contra el que se compara el recomendador difuso.
func PopularityTopN(ratings []models.RatingDoc, exclude map[int]bool, n int) []int {
	counts := make(map[int]int)
	for _, r := range ratings {
		counts[r.MovieID]++
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		if !exclude[id] {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(a, b int) bool {
		if counts[ids[a]] != counts[ids[b]] {
			return counts[ids[a]] > counts[ids[b]]
		}
		return ids[a] < ids[b]
	})

	if len(ids) > n {
		ids = ids[:n]
	}
	return ids
}

// RandomTopN: n películas al azar con semilla fija (corridas reproducibles).
func RandomTopN(movieIDs []int, exclude map[int]bool, n int, seed int64) []int {
	pool := make([]int, 0, len(movieIDs))
	for _, id := range movieIDs {
		if !exclude[id] {
			pool = append(pool, id)
		}
	}
	sort.Ints(pool) // orden estable antes de barajar, para reproducibilidad

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}
