package recommend

import (
	"errors"
	"math"
	"testing"

	"fuzzyrec-tf/internal/genre"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimilarityIdentity(t *testing.T) {
	v := []float64{0.9, 0.42, 0, 0.2, 0.7}
	w := DefaultHybridWeights()

	// un vector no nulo contra sí mismo da 1 en las tres métricas
	if got := Jaccard(v, v); !almostEqual(got, 1) {
		t.Errorf("Jaccard(v,v) = %v, se esperaba 1", got)
	}
	if got := Cosine(v, v); !almostEqual(got, 1) {
		t.Errorf("Cosine(v,v) = %v, se esperaba 1", got)
	}
	if got := Dice(v, v); !almostEqual(got, 1) {
		t.Errorf("Dice(v,v) = %v, se esperaba 1", got)
	}
	if got := w.Similarity(v, v); !almostEqual(got, 1) {
		t.Errorf("Similarity(v,v) = %v, se esperaba 1", got)
	}
}

func TestSimilarityZeroVectors(t *testing.T) {
	zero := []float64{0, 0, 0}
	v := []float64{0.5, 0.3, 0}

	cases := []struct {
		name string
		fn   func(a, b []float64) float64
	}{
		{"Jaccard", Jaccard},
		{"Cosine", Cosine},
		{"Dice", Dice},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// 0/0 se define como 0, nunca NaN
			if got := c.fn(zero, zero); got != 0 {
				t.Errorf("%s(0,0) = %v, se esperaba 0", c.name, got)
			}
			if got := c.fn(zero, v); got != 0 {
				t.Errorf("%s(0,v) = %v, se esperaba 0", c.name, got)
			}
			if math.IsNaN(c.fn(zero, v)) {
				t.Errorf("%s produjo NaN", c.name)
			}
		})
	}
}

func TestSimilarityKnownValues(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0.5, 0.5}

	// Jaccard: min = 0.5, max = 1.5 -> 1/3
	if got := Jaccard(a, b); !almostEqual(got, 1.0/3.0) {
		t.Errorf("Jaccard = %v, se esperaba %v", got, 1.0/3.0)
	}
	// Dice: 2*0.5 / (1 + 1) = 0.5
	if got := Dice(a, b); !almostEqual(got, 0.5) {
		t.Errorf("Dice = %v, se esperaba 0.5", got)
	}
	// Cosine: 0.5 / (1 * sqrt(0.5)) = 1/sqrt(2)
	if got := Cosine(a, b); !almostEqual(got, 1/math.Sqrt2) {
		t.Errorf("Cosine = %v, se esperaba %v", got, 1/math.Sqrt2)
	}

	w := DefaultHybridWeights()
	want := 0.4*(1.0/3.0) + 0.4*(1/math.Sqrt2) + 0.2*0.5
	if got := w.Similarity(a, b); !almostEqual(got, want) {
		t.Errorf("Similarity = %v, se esperaba %v", got, want)
	}
}

func TestHybridWeightsValidate(t *testing.T) {
	if err := DefaultHybridWeights().Validate(); err != nil {
		t.Fatalf("los pesos por defecto deben ser válidos: %v", err)
	}

	cases := []struct {
		name string
		w    HybridWeights
	}{
		{"suman menos de 1", HybridWeights{Jaccard: 0.4, Cosine: 0.4, Dice: 0.1}},
		{"suman más de 1", HybridWeights{Jaccard: 0.5, Cosine: 0.5, Dice: 0.2}},
		{"peso negativo", HybridWeights{Jaccard: -0.2, Cosine: 0.8, Dice: 0.4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.w.Validate()
			if err == nil {
				t.Fatal("se esperaba error de configuración")
			}
			if !errors.Is(err, genre.ErrConfig) {
				t.Fatalf("error %v no envuelve ErrConfig", err)
			}
		})
	}
}
