package service

import (
	"context"
	"fmt"
	"time"

	"fuzzyrec-tf/internal/models"
	"fuzzyrec-tf/internal/repository"
)

type RatingService struct {
	ratings  *repository.RatingRepository
	movies   *repository.MovieRepository
	profiles *ProfileService
}

func NewRatingService(r *repository.RatingRepository, m *repository.MovieRepository, p *ProfileService) *RatingService {
	return &RatingService{
		ratings:  r,
		movies:   m,
		profiles: p,
	}
}

func (s *RatingService) AddOrUpdate(ctx context.Context, userID, movieID int, rating float64) error {
	// el perfilador exige ratings positivos; validamos en el borde
	if rating <= 0 || rating > 5 {
		return fmt.Errorf("rating %.2f fuera de (0,5]", rating)
	}

	// 1) Ver si ya existía un rating previo
	prev, err := s.ratings.GetOne(ctx, userID, movieID)
	if err != nil {
		return err
	}
	existedBefore := prev != nil

	// 2) Upsert del rating (guarda timestamp como epoch)
	if err := s.ratings.UpsertRating(ctx, userID, movieID, rating); err != nil {
		return err
	}

	// 3) Actualizar stats de la película
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	if movie == nil {
		return fmt.Errorf("movie %d no encontrada", movieID)
	}

	if movie.RatingStats == nil {
		movie.RatingStats = &models.RatingStats{}
	}
	rs := movie.RatingStats

	if !existedBefore {
		// Nuevo rating
		total := rs.Average*float64(rs.Count) + rating
		rs.Count++
		if rs.Count > 0 {
			rs.Average = total / float64(rs.Count)
		}
	} else {
		// Update de rating existente
		total := rs.Average*float64(rs.Count) - prev.Rating + rating
		if rs.Count > 0 {
			rs.Average = total / float64(rs.Count)
		}
		// rs.Count no cambia
	}

	rs.LastRatedAt = time.Now().Format(time.RFC3339)

	if err := s.movies.Update(ctx, movie); err != nil {
		return err
	}

	// 4) el perfil cacheado quedó viejo
	s.profiles.Invalidate(ctx, userID)
	return nil
}

func (s *RatingService) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.RatingDoc, error) {
	return s.ratings.GetByUser(ctx, userID, limit, offset)
}
