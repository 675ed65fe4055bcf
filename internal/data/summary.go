package data

import "fuzzyrec-tf/internal/models"

// Summary es el resumen de calidad del dataset cargado.
type Summary struct {
	TotalMovies        int            `json:"totalMovies"`
	TotalUsers         int            `json:"totalUsers"`
	TotalRatings       int            `json:"totalRatings"`
	AvgRatingsPerUser  float64        `json:"avgRatingsPerUser"`
	AvgRatingsPerMovie float64        `json:"avgRatingsPerMovie"`
	RatingDistribution map[int]int    `json:"ratingDistribution"`
	GenreDistribution  map[string]int `json:"genreDistribution"`
	DuplicateRatings   int            `json:"duplicateRatings"`
}

// Summarize calcula el resumen del dataset, incluyendo duplicados
// (usuario, película) que indicarían un problema de calidad.
func Summarize(movies []models.MovieDoc, ratings []models.RatingDoc) *Summary {
	s := &Summary{
		TotalMovies:        len(movies),
		TotalRatings:       len(ratings),
		RatingDistribution: make(map[int]int),
		GenreDistribution:  make(map[string]int),
	}

	users := make(map[int]bool)
	seen := make(map[[2]int]bool, len(ratings))
	for _, r := range ratings {
		users[r.UserID] = true
		s.RatingDistribution[int(r.Rating)]++
		key := [2]int{r.UserID, r.MovieID}
		if seen[key] {
			s.DuplicateRatings++
		}
		seen[key] = true
	}
	s.TotalUsers = len(users)

	for _, m := range movies {
		for _, g := range m.Genres {
			s.GenreDistribution[g]++
		}
	}

	if s.TotalUsers > 0 {
		s.AvgRatingsPerUser = float64(s.TotalRatings) / float64(s.TotalUsers)
	}
	if s.TotalMovies > 0 {
		s.AvgRatingsPerMovie = float64(s.TotalRatings) / float64(s.TotalMovies)
	}
	return s
}
