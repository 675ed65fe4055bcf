package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fuzzyrec-tf/internal/fuzzy"
	"fuzzyrec-tf/internal/profile"
	"fuzzyrec-tf/internal/recommend"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr mapea los errores tipados del core a códigos HTTP: el input malo
// del cliente nunca debe salir como 500.
func writeErr(w http.ResponseWriter, err error) {
	var (
		shapeErr  *fuzzy.ShapeError
		degenErr  *fuzzy.DegenerateInputError
		emptyErr  *profile.EmptyHistoryError
		movieErr  *profile.UnknownMovieError
		ratingErr *profile.InvalidRatingError
		paramErr  *recommend.InvalidParameterError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &paramErr), errors.As(err, &shapeErr), errors.As(err, &ratingErr):
		status = http.StatusBadRequest
	case errors.As(err, &emptyErr), errors.As(err, &movieErr), errors.As(err, &degenErr):
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
