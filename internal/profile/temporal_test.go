package profile

import (
	"errors"
	"testing"

	"fuzzyrec-tf/internal/models"
)

func TestPreferenceDrift(t *testing.T) {
	pr := testProfiler(t, DefaultParams())

	// el usuario arranca viendo Action puro y termina en Drama puro
	catalog := Catalog{
		1: vec(0.9, 0, 0, 0, 0, 0, 0, 0), // Action
		2: vec(0, 0, 0, 0, 0, 0, 0, 0.9), // Drama
	}
	ratings := []models.RatingDoc{
		{UserID: 1, MovieID: 1, Rating: 5, Timestamp: 100},
		{UserID: 1, MovieID: 1, Rating: 4, Timestamp: 200},
		{UserID: 1, MovieID: 1, Rating: 5, Timestamp: 300},
		{UserID: 1, MovieID: 2, Rating: 4, Timestamp: 400},
		{UserID: 1, MovieID: 2, Rating: 5, Timestamp: 500},
		{UserID: 1, MovieID: 2, Rating: 5, Timestamp: 600},
	}

	drift, err := pr.PreferenceDrift(1, ratings, catalog)
	if err != nil {
		t.Fatalf("PreferenceDrift: %v", err)
	}
	if len(drift) != 18 {
		t.Fatalf("len(drift) = %d, se esperaban 18", len(drift))
	}

	byGenre := make(map[string]models.GenreDrift, len(drift))
	for _, d := range drift {
		byGenre[d.Genre] = d
	}

	if d := byGenre["Action"]; d.Trend != "bajando" {
		t.Errorf("Action = %q (deriva %v), se esperaba bajando", d.Trend, d.Drift)
	}
	if d := byGenre["Drama"]; d.Trend != "subiendo" {
		t.Errorf("Drama = %q (deriva %v), se esperaba subiendo", d.Trend, d.Drift)
	}
	if d := byGenre["Western"]; d.Trend != "estable" {
		t.Errorf("Western = %q, un género nunca visto debe ser estable", d.Trend)
	}
}

func TestPreferenceDriftEmptyHistory(t *testing.T) {
	pr := testProfiler(t, DefaultParams())

	_, err := pr.PreferenceDrift(5, nil, Catalog{})
	var emptyErr *EmptyHistoryError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("se esperaba EmptyHistoryError, hubo %v", err)
	}
}
