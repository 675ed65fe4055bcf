package service

import (
	"context"
	"fmt"

	"fuzzyrec-tf/internal/cache"
	"fuzzyrec-tf/internal/models"
	"fuzzyrec-tf/internal/profile"
	"fuzzyrec-tf/internal/repository"
)

// ProfileService construye (y cachea) el perfil difuso de un usuario a partir
// de sus ratings y del catálogo difuso.
type ProfileService struct {
	ratings  *repository.RatingRepository
	profiles *repository.ProfileRepository
	catalog  *CatalogService
	profiler *profile.Profiler
	cacheTTL int
}

func NewProfileService(
	r *repository.RatingRepository,
	p *repository.ProfileRepository,
	c *CatalogService,
	pr *profile.Profiler,
	cacheTTL int,
) *ProfileService {
	return &ProfileService{
		ratings:  r,
		profiles: p,
		catalog:  c,
		profiler: pr,
		cacheTTL: cacheTTL,
	}
}

func profileCacheKey(userID int) string {
	return fmt.Sprintf("profile:user:%d", userID)
}

// GetProfile devuelve el perfil del usuario. Con refresh=false intenta Redis
// primero; si no está, lo reconstruye desde los ratings, lo persiste en
// Mongo (historial reproducible) y lo cachea.
func (s *ProfileService) GetProfile(ctx context.Context, userID int, refresh bool) (*models.ProfileDoc, error) {
	if !refresh {
		var cached models.ProfileDoc
		if ok, err := cache.GetJSON(ctx, profileCacheKey(userID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	prof, err := s.buildProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// persistimos y cacheamos; si falla alguno no rompemos la respuesta
	_ = s.profiles.Upsert(ctx, prof)
	_ = cache.SetJSON(ctx, profileCacheKey(userID), prof, s.cacheTTL)

	return prof, nil
}

// Drift analiza la deriva de preferencias del usuario (ventana temprana vs
// reciente del historial).
func (s *ProfileService) Drift(ctx context.Context, userID int) ([]models.GenreDrift, error) {
	ratings, err := s.ratings.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return s.profiler.PreferenceDrift(userID, ratings, catalog)
}

// Invalidate borra el perfil cacheado (tras un rating nuevo).
func (s *ProfileService) Invalidate(ctx context.Context, userID int) {
	_ = cache.Delete(ctx, profileCacheKey(userID))
}

func (s *ProfileService) buildProfile(ctx context.Context, userID int) (*models.ProfileDoc, error) {
	ratings, err := s.ratings.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return s.profiler.BuildProfile(userID, ratings, catalog)
}
