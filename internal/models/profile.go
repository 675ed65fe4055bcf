package models

import "time"

// Granule es un género dominante del perfil: su membresía supera el umbral
// configurado. Van ordenados por fuerza descendente.
type Granule struct {
	Genre    string  `json:"genre" bson:"genre"`
	Strength float64 `json:"strength" bson:"strength"`
}

// ProfileDoc es el perfil difuso de preferencias de un usuario, derivado por
// completo de su historial de ratings. Inmutable: reconstruir con ratings
// nuevos produce un documento nuevo.
type ProfileDoc struct {
	UserID        int       `json:"userId" bson:"userId"`
	Preferences   []float64 `json:"preferences" bson:"preferences"`
	Dominant      []Granule `json:"dominant" bson:"dominant"`
	RatingsCount  int       `json:"ratingsCount" bson:"ratingsCount"`
	AverageRating float64   `json:"averageRating" bson:"averageRating"`
	BuiltAt       time.Time `json:"builtAt" bson:"builtAt"`
}

// GenreDrift describe el cambio de preferencia de un género entre la ventana
// temprana y la reciente del historial.
type GenreDrift struct {
	Genre  string  `json:"genre"`
	Early  float64 `json:"early"`
	Recent float64 `json:"recent"`
	Drift  float64 `json:"drift"`
	Trend  string  `json:"trend"` // subiendo | bajando | estable
}
