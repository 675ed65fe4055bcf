package recommend

import (
	"testing"

	"fuzzyrec-tf/internal/models"
)

func TestExplain(t *testing.T) {
	r := testRecommender(t)

	vocab := []string{"Action", "Adventure", "Comedy", "Drama"}
	profile := []float64{0.9, 0.6, 0.1, 0.2}
	movie := []float64{0.8, 0.4, 0.7, 0.1}
	dominant := []models.Granule{
		{Genre: "Action", Strength: 0.9},
		{Genre: "Adventure", Strength: 0.6},
	}

	exp := r.Explain(vocab, profile, movie, 42, dominant)
	if exp.MovieID != 42 {
		t.Fatalf("MovieID = %d, se esperaba 42", exp.MovieID)
	}

	// aportes: Action min(0.9,0.8)=0.8, Adventure min(0.6,0.4)=0.4;
	// Comedy (0.1) y Drama (0.1) quedan bajo el umbral de 0.3
	if len(exp.Matches) != 2 {
		t.Fatalf("matches = %d, se esperaban 2", len(exp.Matches))
	}
	if exp.Matches[0].Genre != "Action" || exp.Matches[1].Genre != "Adventure" {
		t.Errorf("matches mal ordenados: %q, %q", exp.Matches[0].Genre, exp.Matches[1].Genre)
	}
	if exp.Matches[0].Contribution != 0.8 {
		t.Errorf("aporte de Action = %v, se esperaba 0.8", exp.Matches[0].Contribution)
	}

	// Comedy es fuerte en la película (0.7) y no es gránulo dominante
	if len(exp.NewGenres) != 1 || exp.NewGenres[0] != "Comedy" {
		t.Errorf("NewGenres = %v, se esperaba [Comedy]", exp.NewGenres)
	}
}

func TestExplainStrengthLabels(t *testing.T) {
	r := testRecommender(t)
	vocab := []string{"Action"}

	cases := []struct {
		name  string
		movie []float64
		want  string
	}{
		{"match fuerte", []float64{0.9}, "fuerte"},
		{"match exploratorio", []float64{0.0}, "exploratoria"},
	}
	profile := []float64{0.9}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			exp := r.Explain(vocab, profile, c.movie, 1, nil)
			if exp.Strength != c.want {
				t.Errorf("Strength = %q (score %v), se esperaba %q", exp.Strength, exp.Score, c.want)
			}
		})
	}
}
