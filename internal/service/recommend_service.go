package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"fuzzyrec-tf/internal/cache"
	"fuzzyrec-tf/internal/config"
	"fuzzyrec-tf/internal/genre"
	"fuzzyrec-tf/internal/models"
	"fuzzyrec-tf/internal/recommend"
	"fuzzyrec-tf/internal/repository"

	"github.com/google/uuid"
)

// RecommendService orquesta el pipeline completo para un usuario:
// perfil difuso -> relevancia híbrida -> diversificación MMR,
// con cache Redis e historial en Mongo.
type RecommendService struct {
	ratings     *repository.RatingRepository
	recRepo     *repository.RecommendationRepository
	profiles    *ProfileService
	catalog     *CatalogService
	recommender *recommend.Recommender
	graph       *genre.Graph
	scoring     config.Scoring
	cacheTTL    int
}

func NewRecommendService(
	r *repository.RatingRepository,
	recRepo *repository.RecommendationRepository,
	profiles *ProfileService,
	catalog *CatalogService,
	rec *recommend.Recommender,
	graph *genre.Graph,
	scoring config.Scoring,
	cacheTTL int,
) *RecommendService {
	return &RecommendService{
		ratings:     r,
		recRepo:     recRepo,
		profiles:    profiles,
		catalog:     catalog,
		recommender: rec,
		graph:       graph,
		scoring:     scoring,
		cacheTTL:    cacheTTL,
	}
}

// ====== Petición de recomendaciones ======

type RecRequest struct {
	UserID  int
	K       int
	Lambda  *float64 // nil = usar el default configurado
	Refresh bool
}

func cacheKey(req RecRequest, lambda float64) string {
	// cachea por usuario + k + lambda (refresh solo decide si usar cache)
	return fmt.Sprintf("rec:user:%d:k:%d:l:%.2f", req.UserID, req.K, lambda)
}

// Recommend genera la lista diversificada para el usuario.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	// defaults y límites para K
	if req.K <= 0 {
		req.K = s.scoring.DefaultTopN
	} else if req.K > s.scoring.MaxTopN {
		req.K = s.scoring.MaxTopN
	}

	lambda := s.scoring.Lambda
	if req.Lambda != nil {
		lambda = *req.Lambda
	}

	// 1) Cache Redis (solo si refresh = false)
	var cached []models.RecItem
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req, lambda), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Ratings del usuario: perfil + exclusiones (lo ya visto jamás se recomienda)
	ratings, err := s.ratings.GetAllByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return []models.RecItem{}, nil
	}

	exclude := make(map[int]bool, len(ratings))
	for _, r := range ratings {
		exclude[r.MovieID] = true
	}

	prof, err := s.profiles.GetProfile(ctx, req.UserID, req.Refresh)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Ranking + MMR (el core es puro, esto no bloquea nada)
	items, err := s.recommender.Recommend(prof.Preferences, catalog, exclude, recommend.Options{
		TopN:   req.K,
		Lambda: lambda,
	})
	if err != nil {
		return nil, err
	}

	// 4) Guardar historial en Mongo (no rompemos la respuesta si falla)
	hist := &models.Recommendation{
		ID:     uuid.NewString(),
		UserID: req.UserID,
		Algo:   "fuzzy-mmr",
		Params: map[string]any{
			"k":       req.K,
			"lambda":  lambda,
			"hybrid":  []float64{s.scoring.WJaccard, s.scoring.WCosine, s.scoring.WDice},
			"refresh": req.Refresh,
		},
		Items:     items,
		CreatedAt: time.Now(),
	}
	if err := s.recRepo.Insert(ctx, hist); err != nil {
		log.Printf("[recommend] error guardando historial en Mongo: %v", err)
	}

	// 5) Cachear en Redis
	if err := cache.SetJSON(ctx, cacheKey(req, lambda), items, s.cacheTTL); err != nil {
		log.Printf("[recommend] error cacheando en Redis: %v", err)
	}

	return items, nil
}

// ====== Explicación de una recomendación ======

// Explain justifica el score de una película para un usuario: qué gránulos
// del perfil empujan la recomendación y qué géneros nuevos introduce.
func (s *RecommendService) Explain(ctx context.Context, userID, movieID int) (*models.Explanation, error) {
	prof, err := s.profiles.GetProfile(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	vec, ok := catalog[movieID]
	if !ok {
		return nil, fmt.Errorf("película %d sin vector difuso en el catálogo", movieID)
	}

	return s.recommender.Explain(s.graph.Genres(), prof.Preferences, vec, movieID, prof.Dominant), nil
}

// History lista las corridas persistidas del usuario.
func (s *RecommendService) History(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.recRepo.FindByUser(ctx, userID, limit)
}
