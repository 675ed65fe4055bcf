package models

// ----- SUMMARY -----

// FuzzySummary resume el estado de los vectores difusos del catálogo.
type FuzzySummary struct {
	TotalMovies        int64 `json:"totalMovies"`
	MoviesWithFuzzy    int64 `json:"moviesWithFuzzy"`
	MoviesWithoutFuzzy int64 `json:"moviesWithoutFuzzy"`
}

// ----- REBUILD -----

// FuzzyRebuildRequest body de /admin/fuzzy/rebuild.
type FuzzyRebuildRequest struct {
	Workers     int  `json:"workers"`
	Limit       int  `json:"limit"`
	OnlyMissing bool `json:"onlyMissing"`
}

// FuzzyItemError es el detalle de un ítem que falló dentro del lote.
type FuzzyItemError struct {
	MovieID int    `json:"movieId"`
	Error   string `json:"error"`
}

// FuzzyRebuildResult resultado de /admin/fuzzy/rebuild. Los ítems con error
// se reportan uno por uno; el lote nunca se aborta por un registro malo.
type FuzzyRebuildResult struct {
	Processed int              `json:"processed"`
	Updated   int              `json:"updated"`
	Failed    int              `json:"failed"`
	Errors    []FuzzyItemError `json:"errors,omitempty"`
}
