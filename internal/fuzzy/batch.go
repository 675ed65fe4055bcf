package fuzzy

import "sync"

// Item es una película pendiente de fuzzificar.
type Item struct {
	MovieID int
	Binary  []int
}

// Result es el resultado por ítem de un lote: o vector o error, nunca ambos.
// Un registro malformado no tumba el lote completo.
type Result struct {
	MovieID int
	Vector  []float64
	Err     error
}

// FuzzifyAll fuzzifica un lote en paralelo con un pool de workers.
// Cada película es independiente (Fuzzify es función pura), así que no hay
// sincronización entre ítems: cada goroutine escribe solo su posición.
// El resultado conserva el orden del input y es idéntico a llamar Fuzzify
// película por película.
func (f *Fuzzifier) FuzzifyAll(items []Item, workers int) []Result {
	if workers <= 0 {
		workers = 4
	}

	results := make([]Result, len(items))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i := range items {
		sem <- struct{}{}
		wg.Add(1)

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			it := items[idx]
			vec, err := f.Fuzzify(it.MovieID, it.Binary)
			results[idx] = Result{MovieID: it.MovieID, Vector: vec, Err: err}
		}(i)
	}

	wg.Wait()
	return results
}
