package genre

import (
	"errors"
	"fmt"
)

// ErrConfig marca errores de configuración del grafo de géneros.
// Se detectan al construir, nunca en runtime.
var ErrConfig = errors.New("configuración de géneros inválida")

// MovieLensGenres es el vocabulario fijo (MovieLens 100K sin el flag 'unknown').
// El orden importa: todos los vectores del sistema se indexan por posición.
var MovieLensGenres = []string{
	"Action", "Adventure", "Animation", "Children's", "Comedy", "Crime",
	"Documentary", "Drama", "Fantasy", "Film-Noir", "Horror", "Musical",
	"Mystery", "Romance", "Sci-Fi", "Thriller", "War", "Western",
}

// Relation es una arista del grafo semántico de géneros.
// El peso es simétrico: se aplica en ambas direcciones.
type Relation struct {
	A, B   string
	Weight float64
}

// DefaultRelations devuelve la tabla de cercanía semántica entre géneros.
func DefaultRelations() []Relation {
	return []Relation{
		{"Action", "Adventure", 0.7},
		{"Action", "Thriller", 0.6},
		{"Action", "Sci-Fi", 0.5},
		{"Action", "War", 0.5},
		{"Action", "Western", 0.5},
		{"Adventure", "Fantasy", 0.6},
		{"Adventure", "Romance", 0.4},
		{"Adventure", "Sci-Fi", 0.6},
		{"Adventure", "War", 0.4},
		{"Adventure", "Western", 0.7},
		{"Animation", "Children's", 0.9},
		{"Animation", "Comedy", 0.7},
		{"Animation", "Fantasy", 0.6},
		{"Children's", "Comedy", 0.6},
		{"Children's", "Fantasy", 0.5},
		{"Comedy", "Drama", 0.5},
		{"Comedy", "Musical", 0.6},
		{"Comedy", "Romance", 0.8},
		{"Crime", "Drama", 0.6},
		{"Crime", "Film-Noir", 0.7},
		{"Crime", "Mystery", 0.8},
		{"Crime", "Thriller", 0.8},
		{"Documentary", "Drama", 0.3},
		{"Drama", "Film-Noir", 0.6},
		{"Drama", "Musical", 0.4},
		{"Drama", "Mystery", 0.4},
		{"Drama", "Romance", 0.7},
		{"Drama", "Thriller", 0.4},
		{"Drama", "War", 0.8},
		{"Drama", "Western", 0.6},
		{"Fantasy", "Horror", 0.3},
		{"Fantasy", "Sci-Fi", 0.7},
		{"Film-Noir", "Mystery", 0.6},
		{"Horror", "Mystery", 0.5},
		{"Horror", "Thriller", 0.6},
		{"Musical", "Romance", 0.5},
		{"Mystery", "Thriller", 0.7},
	}
}

// Graph es la relación de cercanía semántica género x género.
// Matriz densa GxG (G~18): lookup O(1) y sin mapas en el camino caliente.
// Inmutable después de construirse.
type Graph struct {
	vocab []string
	index map[string]int
	w     [][]float64
}

// NewGraph construye el grafo validando la tabla de relaciones contra el
// vocabulario. Pesos simétricos, diagonal en 1, pares no declarados en 0.
func NewGraph(vocab []string, rels []Relation) (*Graph, error) {
	if len(vocab) == 0 {
		return nil, fmt.Errorf("%w: vocabulario vacío", ErrConfig)
	}

	index := make(map[string]int, len(vocab))
	for i, name := range vocab {
		if name == "" {
			return nil, fmt.Errorf("%w: género vacío en posición %d", ErrConfig, i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: género duplicado %q", ErrConfig, name)
		}
		index[name] = i
	}

	g := len(vocab)
	w := make([][]float64, g)
	for i := range w {
		w[i] = make([]float64, g)
		w[i][i] = 1.0
	}

	for _, rel := range rels {
		ia, ok := index[rel.A]
		if !ok {
			return nil, fmt.Errorf("%w: género desconocido %q", ErrConfig, rel.A)
		}
		ib, ok := index[rel.B]
		if !ok {
			return nil, fmt.Errorf("%w: género desconocido %q", ErrConfig, rel.B)
		}
		if rel.Weight < 0 || rel.Weight > 1 {
			return nil, fmt.Errorf("%w: peso %.2f fuera de [0,1] para %s-%s",
				ErrConfig, rel.Weight, rel.A, rel.B)
		}
		if ia == ib {
			return nil, fmt.Errorf("%w: auto-relación de %q (la diagonal siempre es 1)",
				ErrConfig, rel.A)
		}
		w[ia][ib] = rel.Weight
		w[ib][ia] = rel.Weight
	}

	cp := make([]string, g)
	copy(cp, vocab)

	return &Graph{vocab: cp, index: index, w: w}, nil
}

// Size devuelve G, el tamaño del vocabulario.
func (g *Graph) Size() int { return len(g.vocab) }

// Weight devuelve la cercanía entre dos géneros por posición.
// Total: índices fuera de rango devuelven 0.
func (g *Graph) Weight(a, b int) float64 {
	if a < 0 || b < 0 || a >= len(g.vocab) || b >= len(g.vocab) {
		return 0
	}
	return g.w[a][b]
}

// Index devuelve la posición de un género por nombre.
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Name devuelve el nombre del género en la posición i.
func (g *Graph) Name(i int) string {
	if i < 0 || i >= len(g.vocab) {
		return ""
	}
	return g.vocab[i]
}

// Genres devuelve una copia del vocabulario ordenado.
func (g *Graph) Genres() []string {
	cp := make([]string, len(g.vocab))
	copy(cp, g.vocab)
	return cp
}
