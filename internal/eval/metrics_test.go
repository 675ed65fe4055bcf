package eval

import (
	"math"
	"testing"

	"fuzzyrec-tf/internal/models"
	"fuzzyrec-tf/internal/recommend"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPrecisionAtK(t *testing.T) {
	relevant := map[int]bool{1: true, 3: true, 5: true}

	cases := []struct {
		name        string
		recommended []int
		k           int
		want        float64
	}{
		{"todos aciertan", []int{1, 3}, 2, 1.0},
		{"mitad acierta", []int{1, 2, 3, 4}, 4, 0.5},
		{"nada acierta", []int{2, 4, 6}, 3, 0},
		{"k corta la lista", []int{1, 2, 3, 4}, 2, 0.5},
		{"lista vacía", nil, 5, 0},
		{"k cero", []int{1}, 0, 0},
		// lista más corta que k: el denominador sigue siendo k
		{"lista corta", []int{1}, 5, 0.2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PrecisionAtK(c.recommended, relevant, c.k); !almostEqual(got, c.want) {
				t.Errorf("PrecisionAtK = %v, se esperaba %v", got, c.want)
			}
		})
	}
}

func TestRecallAtK(t *testing.T) {
	relevant := map[int]bool{1: true, 3: true, 5: true, 7: true}

	cases := []struct {
		name        string
		recommended []int
		k           int
		want        float64
	}{
		{"recupera todo", []int{1, 3, 5, 7}, 4, 1.0},
		{"recupera la mitad", []int{1, 3, 2, 4}, 4, 0.5},
		{"sin relevantes", []int{2, 4}, 2, 0},
		{"k corta antes del acierto", []int{2, 1}, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RecallAtK(c.recommended, relevant, c.k); !almostEqual(got, c.want) {
				t.Errorf("RecallAtK = %v, se esperaba %v", got, c.want)
			}
		})
	}

	if got := RecallAtK([]int{1}, map[int]bool{}, 5); got != 0 {
		t.Errorf("RecallAtK sin relevantes = %v, se esperaba 0", got)
	}
}

func TestNDCGAtK(t *testing.T) {
	relevant := map[int]bool{1: true, 2: true}

	// orden ideal: NDCG = 1
	if got := NDCGAtK([]int{1, 2, 3}, relevant, 3); !almostEqual(got, 1) {
		t.Errorf("NDCG orden ideal = %v, se esperaba 1", got)
	}

	// relevante relegado al final: DCG = 1/log2(2) + 1/log2(4),
	// IDCG = 1/log2(2) + 1/log2(3)
	dcg := 1/math.Log2(2) + 1/math.Log2(4)
	idcg := 1/math.Log2(2) + 1/math.Log2(3)
	if got := NDCGAtK([]int{1, 3, 2}, relevant, 3); !almostEqual(got, dcg/idcg) {
		t.Errorf("NDCG = %v, se esperaba %v", got, dcg/idcg)
	}

	// sin aciertos: 0
	if got := NDCGAtK([]int{5, 6}, relevant, 2); got != 0 {
		t.Errorf("NDCG sin aciertos = %v, se esperaba 0", got)
	}
}

func TestIntraListDiversity(t *testing.T) {
	w := recommend.DefaultHybridWeights()

	// ítems idénticos: similitud 1, diversidad 0
	same := [][]float64{{0.9, 0.1}, {0.9, 0.1}, {0.9, 0.1}}
	if got := IntraListDiversity(same, w); !almostEqual(got, 0) {
		t.Errorf("diversidad de idénticos = %v, se esperaba 0", got)
	}

	// ítems ortogonales: similitud 0, diversidad 1
	opposite := [][]float64{{1, 0}, {0, 1}}
	if got := IntraListDiversity(opposite, w); !almostEqual(got, 1) {
		t.Errorf("diversidad de ortogonales = %v, se esperaba 1", got)
	}

	// listas de menos de dos ítems no tienen pares
	if got := IntraListDiversity([][]float64{{1, 0}}, w); got != 0 {
		t.Errorf("diversidad de lista unitaria = %v, se esperaba 0", got)
	}
}

func TestLeaveRecentOut(t *testing.T) {
	ratings := []models.RatingDoc{
		{UserID: 1, MovieID: 10, Rating: 4, Timestamp: 100},
		{UserID: 1, MovieID: 20, Rating: 3, Timestamp: 300},
		{UserID: 1, MovieID: 30, Rating: 5, Timestamp: 200},
		{UserID: 1, MovieID: 40, Rating: 2, Timestamp: 400},
		{UserID: 1, MovieID: 50, Rating: 4, Timestamp: 500},
		// usuario con un solo rating: todo a entrenamiento
		{UserID: 2, MovieID: 10, Rating: 5, Timestamp: 100},
	}

	splits := LeaveRecentOut(ratings, 0.2)

	sp1 := splits[1]
	if len(sp1.Train) != 4 || len(sp1.Test) != 1 {
		t.Fatalf("usuario 1: train=%d test=%d, se esperaba 4/1", len(sp1.Train), len(sp1.Test))
	}
	// el test es el rating más reciente
	if sp1.Test[0].MovieID != 50 {
		t.Errorf("test del usuario 1 = película %d, se esperaba 50", sp1.Test[0].MovieID)
	}
	// nada del test aparece en train
	for _, r := range sp1.Train {
		if r.MovieID == 50 {
			t.Fatal("el rating de prueba quedó también en entrenamiento")
		}
	}

	sp2 := splits[2]
	if len(sp2.Train) != 1 || len(sp2.Test) != 0 {
		t.Fatalf("usuario 2: train=%d test=%d, se esperaba 1/0", len(sp2.Train), len(sp2.Test))
	}
}

func TestBaselines(t *testing.T) {
	train := []models.RatingDoc{
		{UserID: 1, MovieID: 10, Rating: 4},
		{UserID: 2, MovieID: 10, Rating: 3},
		{UserID: 3, MovieID: 10, Rating: 5},
		{UserID: 1, MovieID: 20, Rating: 4},
		{UserID: 2, MovieID: 20, Rating: 2},
		{UserID: 1, MovieID: 30, Rating: 1},
	}

	t.Run("popularidad", func(t *testing.T) {
		top := PopularityTopN(train, nil, 2)
		if len(top) != 2 || top[0] != 10 || top[1] != 20 {
			t.Fatalf("PopularityTopN = %v, se esperaba [10 20]", top)
		}

		// las exclusiones se respetan
		top = PopularityTopN(train, map[int]bool{10: true}, 2)
		for _, id := range top {
			if id == 10 {
				t.Fatal("película excluida en el baseline de popularidad")
			}
		}
	})

	t.Run("aleatorio reproducible", func(t *testing.T) {
		pool := []int{1, 2, 3, 4, 5, 6, 7, 8}
		a := RandomTopN(pool, nil, 3, 42)
		b := RandomTopN(pool, nil, 3, 42)
		if len(a) != 3 || len(b) != 3 {
			t.Fatalf("longitudes %d/%d, se esperaban 3", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatal("misma semilla produjo listas distintas")
			}
		}

		c := RandomTopN(pool, map[int]bool{1: true, 2: true}, 6, 42)
		for _, id := range c {
			if id == 1 || id == 2 {
				t.Fatal("película excluida en el baseline aleatorio")
			}
		}
	})
}
