package profile

import (
	"fmt"
	"sort"
	"time"

	"fuzzyrec-tf/internal/genre"
	"fuzzyrec-tf/internal/models"
)

// EmptyHistoryError indica un usuario sin ratings: no hay perfil posible.
type EmptyHistoryError struct {
	UserID int
}

func (e *EmptyHistoryError) Error() string {
	return fmt.Sprintf("usuario %d sin historial de ratings", e.UserID)
}

// UnknownMovieError indica un rating que apunta a una película fuera del catálogo.
type UnknownMovieError struct {
	UserID  int
	MovieID int
}

func (e *UnknownMovieError) Error() string {
	return fmt.Sprintf("rating de usuario %d referencia película %d ausente del catálogo", e.UserID, e.MovieID)
}

// InvalidRatingError indica un score no positivo: rompería el promedio ponderado.
type InvalidRatingError struct {
	UserID  int
	MovieID int
	Score   float64
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("rating %.2f inválido de usuario %d para película %d (debe ser > 0)", e.Score, e.UserID, e.MovieID)
}

// Params controla la extracción de gránulos y la re-escala opcional.
type Params struct {
	// Umbral de membresía para entrar al conjunto de gránulos dominantes.
	GranuleThreshold float64
	// Si está activo, estira el vector para que su máximo sea 1
	// (comparabilidad entre usuarios).
	Stretch bool
}

// DefaultParams usa el umbral 0.5 del diseño original y sin estirar.
func DefaultParams() Params {
	return Params{GranuleThreshold: 0.5}
}

// Validate revisa el umbral al construir.
func (p Params) Validate() error {
	if p.GranuleThreshold < 0 || p.GranuleThreshold > 1 {
		return fmt.Errorf("%w: umbral de gránulos %.2f fuera de [0,1]", genre.ErrConfig, p.GranuleThreshold)
	}
	return nil
}

// Catalog mapea movieId -> vector difuso de la película.
type Catalog = map[int][]float64

// Profiler construye perfiles granulares de preferencia por usuario.
// Función pura de sus inputs: sin estado compartido, seguro en paralelo.
type Profiler struct {
	graph  *genre.Graph
	params Params
}

// New valida los parámetros y construye el perfilador.
func New(g *genre.Graph, p Params) (*Profiler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Profiler{graph: g, params: p}, nil
}

// BuildProfile agrega los vectores difusos de las películas valoradas por el
// usuario, ponderados por rating:
//
//	pref(g) = sum(rating(m) * fuzzy(m)[g]) / sum(rating(m))
//
// El promedio ponderado ya queda en [0,1] con ratings positivos.
func (p *Profiler) BuildProfile(userID int, ratings []models.RatingDoc, catalog Catalog) (*models.ProfileDoc, error) {
	if len(ratings) == 0 {
		return nil, &EmptyHistoryError{UserID: userID}
	}

	g := p.graph.Size()
	prefs := make([]float64, g)
	var totalWeight, totalScore float64

	for _, r := range ratings {
		if r.Rating <= 0 {
			return nil, &InvalidRatingError{UserID: userID, MovieID: r.MovieID, Score: r.Rating}
		}
		vec, ok := catalog[r.MovieID]
		if !ok {
			return nil, &UnknownMovieError{UserID: userID, MovieID: r.MovieID}
		}
		for i := 0; i < g && i < len(vec); i++ {
			prefs[i] += r.Rating * vec[i]
		}
		totalWeight += r.Rating
		totalScore += r.Rating
	}

	for i := range prefs {
		prefs[i] /= totalWeight
	}

	if p.params.Stretch {
		stretchToUnitMax(prefs)
	}

	return &models.ProfileDoc{
		UserID:        userID,
		Preferences:   prefs,
		Dominant:      p.dominantGranules(prefs),
		RatingsCount:  len(ratings),
		AverageRating: totalScore / float64(len(ratings)),
		BuiltAt:       time.Now().UTC(),
	}, nil
}

// dominantGranules devuelve los géneros con preferencia >= umbral, ordenados
// por fuerza descendente. Empates se resuelven por orden de vocabulario
// (sort estable sobre el vector posicional).
func (p *Profiler) dominantGranules(prefs []float64) []models.Granule {
	idx := make([]int, len(prefs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return prefs[idx[a]] > prefs[idx[b]]
	})

	out := make([]models.Granule, 0, 4)
	for _, i := range idx {
		if prefs[i] < p.params.GranuleThreshold {
			break
		}
		out = append(out, models.Granule{Genre: p.graph.Name(i), Strength: prefs[i]})
	}
	return out
}

func stretchToUnitMax(v []float64) {
	var max float64
	for _, x := range v {
		if x > max {
			max = x
		}
	}
	if max <= 0 {
		return
	}
	for i := range v {
		v[i] /= max
	}
}
