package models

import "time"

// RecItem es una recomendación individual: score de relevancia (híbrido) y
// score ajustado por diversidad (MMR), con el rank que determinó su posición.
type RecItem struct {
	MovieID  int     `json:"movieId" bson:"movieId"`
	Score    float64 `json:"score" bson:"score"`
	MMRScore float64 `json:"mmrScore" bson:"mmrScore"`
	Rank     int     `json:"rank" bson:"rank"`
}

// Recommendation es el historial persistido de una corrida de recomendación.
type Recommendation struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    int       `json:"userId" bson:"userId"`
	Algo      string    `json:"algo" bson:"algo"`
	Params    any       `json:"params" bson:"params"`
	Items     []RecItem `json:"items" bson:"items"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ====== Explicación de una recomendación ======

// GenreContribution es el aporte de un género al score: la intersección
// min(preferencia, membresía de la película).
type GenreContribution struct {
	Genre         string  `json:"genre"`
	UserStrength  float64 `json:"userStrength"`
	MovieStrength float64 `json:"movieStrength"`
	Contribution  float64 `json:"contribution"`
}

// Explanation justifica por qué una película fue recomendada a un usuario.
type Explanation struct {
	MovieID   int                 `json:"movieId"`
	Score     float64             `json:"score"`
	Strength  string              `json:"strength"` // fuerte | buena | exploratoria
	Matches   []GenreContribution `json:"matches"`
	NewGenres []string            `json:"newGenres,omitempty"`
}
