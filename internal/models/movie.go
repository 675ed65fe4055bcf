package models

// RatingStats son las estadísticas agregadas de ratings de una película.
type RatingStats struct {
	Average     float64 `json:"average" bson:"average"`
	Count       int     `json:"count" bson:"count"`
	LastRatedAt string  `json:"lastRatedAt,omitempty" bson:"lastRatedAt,omitempty"`
}

// MovieDoc es el documento de la colección movies.
// Binary es el vector indicador de géneros (posicional, 0/1) y Fuzzy el
// vector de membresía difusa derivado; Fuzzy se calcula una vez y se cachea,
// nunca se muta después.
type MovieDoc struct {
	MovieID     int          `json:"movieId" bson:"movieId"`
	Title       string       `json:"title" bson:"title"`
	Year        *int         `json:"year,omitempty" bson:"year,omitempty"`
	Genres      []string     `json:"genres" bson:"genres"`
	Binary      []int        `json:"binary" bson:"binary"`
	Fuzzy       []float64    `json:"fuzzy,omitempty" bson:"fuzzy,omitempty"`
	RatingStats *RatingStats `json:"ratingStats,omitempty" bson:"ratingStats,omitempty"`
	CreatedAt   string       `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   string       `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// GenreStrength es un género con su membresía, para respuestas de API.
type GenreStrength struct {
	Genre    string  `json:"genre" bson:"genre"`
	Strength float64 `json:"strength" bson:"strength"`
}

// FuzzyMovieResponse expone el vector difuso de una película.
type FuzzyMovieResponse struct {
	MovieID   int             `json:"movieId"`
	Title     string          `json:"title"`
	Fuzzy     []float64       `json:"fuzzy"`
	TopGenres []GenreStrength `json:"topGenres"`
}
