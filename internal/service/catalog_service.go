package service

import (
	"context"
	"log"
	"sync"

	"fuzzyrec-tf/internal/repository"
)

// CatalogService mantiene en memoria el catálogo difuso (movieId -> vector).
// Es la única pieza con estado compartido: las funciones core reciben el
// mapa como parámetro y nunca lo mutan, así que basta un RWMutex alrededor
// de la carga.
type CatalogService struct {
	movies *repository.MovieRepository

	mu      sync.RWMutex
	catalog map[int][]float64
}

func NewCatalogService(m *repository.MovieRepository) *CatalogService {
	return &CatalogService{movies: m}
}

// Catalog devuelve el catálogo difuso, cargándolo de Mongo la primera vez.
// Las películas sin vector difuso calculado no entran como candidatas.
func (s *CatalogService) Catalog(ctx context.Context) (map[int][]float64, error) {
	s.mu.RLock()
	if s.catalog != nil {
		c := s.catalog
		s.mu.RUnlock()
		return c, nil
	}
	s.mu.RUnlock()

	return s.reload(ctx)
}

// Invalidate fuerza recarga en el siguiente acceso (tras un rebuild difuso).
func (s *CatalogService) Invalidate() {
	s.mu.Lock()
	s.catalog = nil
	s.mu.Unlock()
}

func (s *CatalogService) reload(ctx context.Context) (map[int][]float64, error) {
	docs, err := s.movies.AllWithBinary(ctx, false, 0)
	if err != nil {
		return nil, err
	}

	catalog := make(map[int][]float64, len(docs))
	skipped := 0
	for _, m := range docs {
		if len(m.Fuzzy) == 0 {
			skipped++
			continue
		}
		catalog[m.MovieID] = m.Fuzzy
	}
	if skipped > 0 {
		log.Printf("[catalog] %d películas sin vector difuso quedaron fuera del catálogo", skipped)
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	log.Printf("[catalog] %d películas cargadas en memoria", len(catalog))
	return catalog, nil
}
