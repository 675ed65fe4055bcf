package recommend

import (
	"errors"
	"testing"
)

func testRecommender(t *testing.T) *Recommender {
	t.Helper()
	r, err := New(DefaultHybridWeights())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

// catálogo pequeño: 1 y 2 son casi duplicados cercanos al perfil,
// 3 es distinto pero con algo de relevancia.
func testCatalog() (profile []float64, catalog map[int][]float64) {
	profile = []float64{0.8, 0.6, 0.1}
	catalog = map[int][]float64{
		1: {0.85, 0.55, 0.1},
		2: {0.9, 0.5, 0.1},
		3: {0.1, 0.2, 0.9},
	}
	return profile, catalog
}

func TestRecommendPureRelevance(t *testing.T) {
	r := testRecommender(t)
	profile, catalog := testCatalog()

	// lambda 0 = ranking puro por score híbrido
	items, err := r.Recommend(profile, catalog, nil, Options{TopN: 3, Lambda: 0})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, se esperaban 3", len(items))
	}

	for i, want := range []int{1, 2, 3} {
		if items[i].MovieID != want {
			t.Errorf("posición %d: movieId %d, se esperaba %d", i, items[i].MovieID, want)
		}
	}

	// scores no crecientes y ranks consecutivos desde 1
	for i, it := range items {
		if it.Rank != i+1 {
			t.Errorf("posición %d: rank %d, se esperaba %d", i, it.Rank, i+1)
		}
		if i > 0 && it.Score > items[i-1].Score {
			t.Errorf("scores desordenados en posición %d", i)
		}
		// con lambda 0 el MMR coincide con la relevancia
		if it.MMRScore != it.Score {
			t.Errorf("posición %d: MMRScore %v != Score %v con lambda 0", i, it.MMRScore, it.Score)
		}
	}
}

func TestRecommendMMRDiversifies(t *testing.T) {
	r := testRecommender(t)
	profile, catalog := testCatalog()

	// con lambda 1 el casi duplicado de 1 queda castigado: la segunda
	// posición la gana la película distinta aunque sea menos relevante
	items, err := r.Recommend(profile, catalog, nil, Options{TopN: 3, Lambda: 1})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, se esperaban 3", len(items))
	}

	for i, want := range []int{1, 3, 2} {
		if items[i].MovieID != want {
			t.Errorf("posición %d: movieId %d, se esperaba %d", i, items[i].MovieID, want)
		}
	}

	// el primer seleccionado nunca tiene penalización
	if items[0].MMRScore != items[0].Score {
		t.Errorf("el primer ítem lleva penalización: MMR %v vs score %v", items[0].MMRScore, items[0].Score)
	}
}

func TestRecommendExclusions(t *testing.T) {
	r := testRecommender(t)
	profile, catalog := testCatalog()

	exclude := map[int]bool{1: true}
	items, err := r.Recommend(profile, catalog, exclude, Options{TopN: 3, Lambda: 0.3})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, it := range items {
		if it.MovieID == 1 {
			t.Fatal("una película excluida apareció en la lista")
		}
	}
	if len(items) != 2 {
		t.Errorf("len(items) = %d, se esperaban 2", len(items))
	}
}

func TestRecommendTopNCapsAndNoDuplicates(t *testing.T) {
	r := testRecommender(t)
	profile, catalog := testCatalog()

	items, err := r.Recommend(profile, catalog, nil, Options{TopN: 2, Lambda: 0.3})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, se esperaban 2", len(items))
	}

	// topN mayor que el catálogo devuelve todo, sin repetir
	items, err = r.Recommend(profile, catalog, nil, Options{TopN: 50, Lambda: 0.3})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, se esperaban 3", len(items))
	}
	seen := make(map[int]bool)
	for _, it := range items {
		if seen[it.MovieID] {
			t.Fatalf("película %d repetida", it.MovieID)
		}
		seen[it.MovieID] = true
	}
}

func TestRecommendEmptyCandidates(t *testing.T) {
	r := testRecommender(t)
	profile, catalog := testCatalog()

	// todo excluido: lista vacía, nunca error
	exclude := map[int]bool{1: true, 2: true, 3: true}
	items, err := r.Recommend(profile, catalog, exclude, Options{TopN: 5, Lambda: 0.3})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("items = %v, se esperaba lista vacía no nula", items)
	}

	// catálogo vacío, mismo contrato
	items, err = r.Recommend(profile, map[int][]float64{}, nil, Options{TopN: 5, Lambda: 0.3})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("items = %v, se esperaba lista vacía no nula", items)
	}
}

func TestRecommendInvalidParams(t *testing.T) {
	r := testRecommender(t)
	profile, catalog := testCatalog()

	cases := []struct {
		name string
		opts Options
	}{
		{"topN cero", Options{TopN: 0, Lambda: 0.3}},
		{"topN negativo", Options{TopN: -1, Lambda: 0.3}},
		{"lambda negativo", Options{TopN: 5, Lambda: -0.1}},
		{"lambda mayor a 1", Options{TopN: 5, Lambda: 1.1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := r.Recommend(profile, catalog, nil, c.opts)
			var paramErr *InvalidParameterError
			if !errors.As(err, &paramErr) {
				t.Fatalf("se esperaba InvalidParameterError, hubo %v", err)
			}
		})
	}
}

func TestRecommendPoolPrefilter(t *testing.T) {
	r := testRecommender(t)
	profile, catalog := testCatalog()

	// pool 2 descarta a la película 3 (la menos relevante) antes del MMR,
	// aunque con lambda 1 habría ganado la segunda posición
	items, err := r.Recommend(profile, catalog, nil, Options{TopN: 3, Lambda: 1, Pool: 2})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, se esperaban 2", len(items))
	}
	for _, it := range items {
		if it.MovieID == 3 {
			t.Fatal("el pre-filtro no descartó al candidato menos relevante")
		}
	}
}

func TestRecommendDeterministicTieBreak(t *testing.T) {
	r := testRecommender(t)

	// dos películas idénticas empatan en todo: gana el movieId menor
	profile := []float64{1, 0}
	catalog := map[int][]float64{
		9: {0.5, 0.5},
		4: {0.5, 0.5},
	}

	for i := 0; i < 10; i++ {
		items, err := r.Recommend(profile, catalog, nil, Options{TopN: 2, Lambda: 0.3})
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		if items[0].MovieID != 4 || items[1].MovieID != 9 {
			t.Fatalf("empate mal resuelto: %d, %d", items[0].MovieID, items[1].MovieID)
		}
	}
}
