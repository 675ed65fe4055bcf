package service

import (
	"context"
	"log"

	"fuzzyrec-tf/internal/fuzzy"
	"fuzzyrec-tf/internal/models"
	"fuzzyrec-tf/internal/repository"
)

// FuzzifyService mantiene los vectores difusos del catálogo en Mongo.
// Es el reemplazo del mantenimiento de similitudes: aquí lo que se
// reconstruye por lotes son las membresías difusas.
type FuzzifyService struct {
	movies  *repository.MovieRepository
	fz      *fuzzy.Fuzzifier
	catalog *CatalogService
}

func NewFuzzifyService(m *repository.MovieRepository, fz *fuzzy.Fuzzifier, c *CatalogService) *FuzzifyService {
	return &FuzzifyService{movies: m, fz: fz, catalog: c}
}

// Summary devuelve cuántas películas tienen vector difuso y cuántas faltan.
func (s *FuzzifyService) Summary(ctx context.Context) (*models.FuzzySummary, error) {
	return s.movies.CountFuzzy(ctx)
}

// Rebuild refuzzifica el catálogo con un pool de workers. Cada película es
// independiente, así que los errores se acumulan por ítem y el lote sigue:
// un registro malo jamás corrompe el resto.
func (s *FuzzifyService) Rebuild(ctx context.Context, req *models.FuzzyRebuildRequest) (*models.FuzzyRebuildResult, error) {
	if req.Workers <= 0 {
		req.Workers = 4
	}

	docs, err := s.movies.AllWithBinary(ctx, req.OnlyMissing, req.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]fuzzy.Item, len(docs))
	for i, m := range docs {
		items[i] = fuzzy.Item{MovieID: m.MovieID, Binary: m.Binary}
	}

	results := s.fz.FuzzifyAll(items, req.Workers)

	out := &models.FuzzyRebuildResult{Processed: len(results)}
	for _, r := range results {
		if r.Err != nil {
			out.Failed++
			if len(out.Errors) < 50 {
				out.Errors = append(out.Errors, models.FuzzyItemError{
					MovieID: r.MovieID,
					Error:   r.Err.Error(),
				})
			}
			continue
		}
		if err := s.movies.SetFuzzy(ctx, r.MovieID, r.Vector); err != nil {
			return nil, err
		}
		out.Updated++
	}

	// el catálogo en memoria quedó viejo
	s.catalog.Invalidate()

	log.Printf("[fuzzify] rebuild: %d procesadas, %d actualizadas, %d con error",
		out.Processed, out.Updated, out.Failed)
	return out, nil
}
