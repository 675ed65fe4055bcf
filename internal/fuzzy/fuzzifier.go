package fuzzy

import (
	"errors"
	"fmt"

	"fuzzyrec-tf/internal/genre"
)

// ErrParams marca parámetros de fuzzificación inválidos (fatal al arrancar).
var ErrParams = errors.New("parámetros de fuzzificación inválidos")

// ShapeError indica un vector binario malformado. Aborta solo ese ítem.
type ShapeError struct {
	MovieID int
	Reason  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("vector binario inválido (movie %d): %s", e.MovieID, e.Reason)
}

// DegenerateInputError indica una película sin ningún género activo:
// no hay nada que fuzzificar.
type DegenerateInputError struct {
	MovieID int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("película %d sin géneros activos", e.MovieID)
}

// Params controla los rangos de membresía.
type Params struct {
	// Rango de membresía primaria para géneros activos (binario = 1).
	PrimaryLo, PrimaryHi float64
	// Rango al que se recorta la membresía propagada (binario = 0).
	SecondaryLo, SecondaryHi float64
	// Escala aplicada al peso del grafo antes de recortar.
	PropagationScale float64
}

// DefaultParams son los rangos del diseño original: primarios en [0.7,1.0],
// secundarios en [0.2,0.6].
func DefaultParams() Params {
	return Params{
		PrimaryLo:        0.7,
		PrimaryHi:        1.0,
		SecondaryLo:      0.2,
		SecondaryHi:      0.6,
		PropagationScale: 0.6,
	}
}

// Validate revisa los rangos una sola vez, al construir el fuzzificador.
func (p Params) Validate() error {
	check := func(lo, hi float64, name string) error {
		if lo < 0 || hi > 1 || lo > hi {
			return fmt.Errorf("%w: rango %s [%.2f,%.2f] fuera de [0,1]", ErrParams, name, lo, hi)
		}
		return nil
	}
	if err := check(p.PrimaryLo, p.PrimaryHi, "primario"); err != nil {
		return err
	}
	if err := check(p.SecondaryLo, p.SecondaryHi, "secundario"); err != nil {
		return err
	}
	if p.PrimaryLo <= 0 {
		return fmt.Errorf("%w: el límite inferior primario debe ser > 0", ErrParams)
	}
	if p.PropagationScale <= 0 || p.PropagationScale > 1 {
		return fmt.Errorf("%w: escala de propagación %.2f fuera de (0,1]", ErrParams, p.PropagationScale)
	}
	return nil
}

// Fuzzifier convierte vectores binarios de género en vectores de membresía
// difusa usando el grafo de relaciones. Inmutable y seguro para uso concurrente.
type Fuzzifier struct {
	graph  *genre.Graph
	params Params
}

// New valida los parámetros y construye el fuzzificador.
func New(g *genre.Graph, p Params) (*Fuzzifier, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Fuzzifier{graph: g, params: p}, nil
}

// Fuzzify convierte el vector binario de una película en su vector difuso.
//
// Géneros activos reciben una membresía primaria determinística dentro del
// rango primario (sorteo sembrado por movieID+género, reproducible). Géneros
// inactivos reciben la propagación del género activo más cercano:
// clamp(maxPeso * escala) al rango secundario, o 0 si nada los relaciona.
func (f *Fuzzifier) Fuzzify(movieID int, binary []int) ([]float64, error) {
	g := f.graph.Size()
	if len(binary) != g {
		return nil, &ShapeError{
			MovieID: movieID,
			Reason:  fmt.Sprintf("longitud %d, se esperaba %d", len(binary), g),
		}
	}

	active := make([]int, 0, 4)
	for i, v := range binary {
		switch v {
		case 1:
			active = append(active, i)
		case 0:
		default:
			return nil, &ShapeError{
				MovieID: movieID,
				Reason:  fmt.Sprintf("entrada %d en posición %d, solo se admite {0,1}", v, i),
			}
		}
	}
	if len(active) == 0 {
		return nil, &DegenerateInputError{MovieID: movieID}
	}

	out := make([]float64, g)
	for i := range out {
		if binary[i] == 1 {
			out[i] = f.primaryMembership(movieID, i)
			continue
		}
		// membresía secundaria: el mejor vecino activo propaga su peso
		var maxW float64
		for _, a := range active {
			if w := f.graph.Weight(a, i); w > maxW {
				maxW = w
			}
		}
		if maxW == 0 {
			continue // ningún género activo lo relaciona
		}
		out[i] = clamp(maxW*f.params.PropagationScale, f.params.SecondaryLo, f.params.SecondaryHi)
	}

	// post-condición: todo en [0,1]
	for i := range out {
		out[i] = clamp(out[i], 0, 1)
	}
	return out, nil
}

// primaryMembership sortea un valor reproducible en [PrimaryLo, PrimaryHi]
// a partir de (movieID, género) con FNV-1a. Mismo input, mismo resultado.
func (f *Fuzzifier) primaryMembership(movieID, g int) float64 {
	u := float64(hash32(movieID*31+g)) / float64(1<<32)
	return f.params.PrimaryLo + u*(f.params.PrimaryHi-f.params.PrimaryLo)
}

// hash32 es FNV-1a sobre los 4 bytes del id.
func hash32(x int) uint32 {
	h := uint32(2166136261)
	v := uint32(x)
	for k := 0; k < 4; k++ {
		h ^= (v >> (8 * uint(k))) & 0xff
		h *= 16777619
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
