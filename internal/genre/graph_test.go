package genre

import (
	"errors"
	"testing"
)

func TestNewGraphDefaults(t *testing.T) {
	g, err := NewGraph(MovieLensGenres, DefaultRelations())
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if g.Size() != 18 {
		t.Fatalf("Size = %d, se esperaba 18", g.Size())
	}

	// la diagonal siempre es 1
	for i := 0; i < g.Size(); i++ {
		if w := g.Weight(i, i); w != 1.0 {
			t.Errorf("Weight(%d,%d) = %v, se esperaba 1", i, i, w)
		}
	}

	// simetría en todos los pares
	for a := 0; a < g.Size(); a++ {
		for b := 0; b < g.Size(); b++ {
			if g.Weight(a, b) != g.Weight(b, a) {
				t.Fatalf("asimetría entre %q y %q", g.Name(a), g.Name(b))
			}
		}
	}
}

func TestGraphWeightLookup(t *testing.T) {
	g, err := NewGraph(MovieLensGenres, DefaultRelations())
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}

	cases := []struct {
		a, b string
		want float64
	}{
		{"Action", "Adventure", 0.7},
		{"Adventure", "Action", 0.7},
		{"Comedy", "Romance", 0.8},
		{"Crime", "Thriller", 0.8},
		{"Animation", "Children's", 0.9},
		// par no declarado = 0
		{"Documentary", "Action", 0},
		{"Western", "Musical", 0},
	}
	for _, c := range cases {
		ia, ok := g.Index(c.a)
		if !ok {
			t.Fatalf("género %q no encontrado", c.a)
		}
		ib, ok := g.Index(c.b)
		if !ok {
			t.Fatalf("género %q no encontrado", c.b)
		}
		if got := g.Weight(ia, ib); got != c.want {
			t.Errorf("Weight(%s,%s) = %v, se esperaba %v", c.a, c.b, got, c.want)
		}
	}
}

func TestGraphWeightOutOfRange(t *testing.T) {
	g, _ := NewGraph(MovieLensGenres, DefaultRelations())

	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {18, 0}, {0, 18}} {
		if w := g.Weight(pair[0], pair[1]); w != 0 {
			t.Errorf("Weight(%d,%d) = %v, índices fuera de rango deben dar 0", pair[0], pair[1], w)
		}
	}
	if name := g.Name(-1); name != "" {
		t.Errorf("Name(-1) = %q, se esperaba vacío", name)
	}
}

func TestNewGraphConfigErrors(t *testing.T) {
	cases := []struct {
		name  string
		vocab []string
		rels  []Relation
	}{
		{"vocabulario vacío", nil, nil},
		{"género vacío", []string{"Action", ""}, nil},
		{"género duplicado", []string{"Action", "Action"}, nil},
		{"relación con género desconocido", []string{"Action", "Drama"}, []Relation{{"Action", "Comedy", 0.5}}},
		{"peso negativo", []string{"Action", "Drama"}, []Relation{{"Action", "Drama", -0.1}}},
		{"peso mayor a 1", []string{"Action", "Drama"}, []Relation{{"Action", "Drama", 1.1}}},
		{"auto-relación", []string{"Action", "Drama"}, []Relation{{"Action", "Action", 0.5}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewGraph(c.vocab, c.rels)
			if err == nil {
				t.Fatal("se esperaba error de configuración")
			}
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("error %v no envuelve ErrConfig", err)
			}
		})
	}
}

func TestGraphGenresIsCopy(t *testing.T) {
	g, _ := NewGraph(MovieLensGenres, DefaultRelations())

	cp := g.Genres()
	cp[0] = "mutado"
	if g.Name(0) != "Action" {
		t.Fatal("Genres() debe devolver una copia, no el slice interno")
	}
}
