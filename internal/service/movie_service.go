package service

import (
	"context"
	"fmt"
	"sort"

	"fuzzyrec-tf/internal/genre"
	"fuzzyrec-tf/internal/models"
	"fuzzyrec-tf/internal/repository"
)

type MovieService struct {
	movies *repository.MovieRepository
	graph  *genre.Graph
}

func NewMovieService(m *repository.MovieRepository, g *genre.Graph) *MovieService {
	return &MovieService{movies: m, graph: g}
}

func (s *MovieService) GetMovie(ctx context.Context, id int) (*models.MovieDoc, error) {
	return s.movies.GetByID(ctx, id)
}

// GetFuzzy expone el vector difuso de una película con sus géneros más
// fuertes ya ordenados (para inspección y visualización externa).
func (s *MovieService) GetFuzzy(ctx context.Context, id int) (*models.FuzzyMovieResponse, error) {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if len(m.Fuzzy) == 0 {
		return nil, fmt.Errorf("película %d sin vector difuso (falta rebuild)", id)
	}

	top := make([]models.GenreStrength, 0, 3)
	vocab := s.graph.Genres()
	for i, v := range m.Fuzzy {
		if i < len(vocab) && v > 0.1 {
			top = append(top, models.GenreStrength{Genre: vocab[i], Strength: v})
		}
	}
	sort.SliceStable(top, func(a, b int) bool { return top[a].Strength > top[b].Strength })
	if len(top) > 3 {
		top = top[:3]
	}

	return &models.FuzzyMovieResponse{
		MovieID:   m.MovieID,
		Title:     m.Title,
		Fuzzy:     m.Fuzzy,
		TopGenres: top,
	}, nil
}

func (s *MovieService) Search(
	ctx context.Context,
	q, genreName string,
	yearFrom, yearTo, limit, offset int,
) ([]models.MovieDoc, error) {
	return s.movies.Search(ctx, q, genreName, yearFrom, yearTo, limit, offset)
}

func (s *MovieService) Top(ctx context.Context, metric string, limit int) ([]models.MovieDoc, error) {
	return s.movies.Top(ctx, metric, limit)
}
