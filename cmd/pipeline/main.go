package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"sync"

	"fuzzyrec-tf/internal/data"
	"fuzzyrec-tf/internal/eval"
	"fuzzyrec-tf/internal/fuzzy"
	"fuzzyrec-tf/internal/genre"
	"fuzzyrec-tf/internal/models"
	"fuzzyrec-tf/internal/profile"
	"fuzzyrec-tf/internal/recommend"

	"golang.org/x/sync/errgroup"
)

// Pipeline offline: carga MovieLens 100K, fuzzifica el catálogo, construye
// perfiles, recomienda con leave-recent-out y compara contra los baselines
// de popularidad y aleatorio. Todo en memoria, sin Mongo ni Redis.
func main() {
	dataDir := flag.String("data", "./ml-100k", "directorio con u.item y u.data")
	topN := flag.Int("k", 10, "tamaño de la lista de recomendaciones")
	lambda := flag.Float64("lambda", 0.3, "factor de diversidad MMR en [0,1]")
	workers := flag.Int("workers", 8, "workers para fuzzificación y perfiles")
	testFrac := flag.Float64("test", 0.2, "fracción de ratings recientes para prueba")
	relevant := flag.Float64("relevant", 4.0, "rating mínimo para considerar un test relevante")
	sample := flag.Int("sample", 0, "evaluar solo los primeros N usuarios (0 = todos)")
	seed := flag.Int64("seed", 42, "semilla del baseline aleatorio")
	flag.Parse()

	// ============================
	// 1) Carga concurrente del dataset
	// ============================
	var (
		movies  []models.MovieDoc
		ratings []models.RatingDoc
		mReport *data.Report
		rReport *data.Report
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		movies, mReport, err = data.LoadMovies(filepath.Join(*dataDir, "u.item"), genre.MovieLensGenres)
		return err
	})
	g.Go(func() error {
		var err error
		ratings, rReport, err = data.LoadRatings(filepath.Join(*dataDir, "u.data"))
		return err
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("[pipeline] error cargando dataset: %v", err)
	}

	log.Printf("[pipeline] películas: %d cargadas, %d descartadas", mReport.Parsed, mReport.Skipped)
	log.Printf("[pipeline] ratings: %d cargados, %d descartados", rReport.Parsed, rReport.Skipped)

	sum := data.Summarize(movies, ratings)
	log.Printf("[pipeline] %d usuarios, %.1f ratings/usuario, %d duplicados",
		sum.TotalUsers, sum.AvgRatingsPerUser, sum.DuplicateRatings)

	// ============================
	// 2) Núcleo difuso
	// ============================
	graph, err := genre.NewGraph(genre.MovieLensGenres, genre.DefaultRelations())
	if err != nil {
		log.Fatalf("[pipeline] grafo inválido: %v", err)
	}
	fuzzifier, err := fuzzy.New(graph, fuzzy.DefaultParams())
	if err != nil {
		log.Fatalf("[pipeline] fuzzificador inválido: %v", err)
	}
	profiler, err := profile.New(graph, profile.DefaultParams())
	if err != nil {
		log.Fatalf("[pipeline] perfilador inválido: %v", err)
	}
	weights := recommend.DefaultHybridWeights()
	recommender, err := recommend.New(weights)
	if err != nil {
		log.Fatalf("[pipeline] pesos híbridos inválidos: %v", err)
	}

	// ============================
	// 3) Fuzzificación del catálogo (pool de workers)
	// ============================
	items := make([]fuzzy.Item, len(movies))
	for i, m := range movies {
		items[i] = fuzzy.Item{MovieID: m.MovieID, Binary: m.Binary}
	}
	results := fuzzifier.FuzzifyAll(items, *workers)

	catalog := make(profile.Catalog, len(results))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		catalog[r.MovieID] = r.Vector
	}
	log.Printf("[pipeline] catálogo difuso: %d vectores, %d con error", len(catalog), failed)

	// ============================
	// 4) Split temporal + perfiles de entrenamiento
	// ============================
	splits := eval.LeaveRecentOut(ratings, *testFrac)

	var train []models.RatingDoc
	for _, sp := range splits {
		train = append(train, sp.Train...)
	}
	profiles := profiler.BuildAllProfiles(train, catalog, *workers)

	byUser := make(map[int]*models.ProfileDoc, len(profiles))
	for _, pr := range profiles {
		if pr.Err == nil {
			byUser[pr.UserID] = pr.Profile
		}
	}
	log.Printf("[pipeline] perfiles construidos: %d de %d usuarios", len(byUser), len(profiles))

	// lista ordenada de usuarios evaluables (con test y con perfil)
	userIDs := make([]int, 0, len(splits))
	for id, sp := range splits {
		if len(sp.Test) > 0 && byUser[id] != nil {
			userIDs = append(userIDs, id)
		}
	}
	sort.Ints(userIDs)
	if *sample > 0 && *sample < len(userIDs) {
		userIDs = userIDs[:*sample]
	}

	allMovieIDs := make([]int, 0, len(catalog))
	for id := range catalog {
		allMovieIDs = append(allMovieIDs, id)
	}
	sort.Ints(allMovieIDs)

	// ============================
	// 5) Evaluación: difuso vs popularidad vs aleatorio
	// ============================
	type agg struct {
		precision, recall, ndcg, diversity float64
		n                                  int
	}
	var (
		mu           sync.Mutex
		fz, pop, rnd agg
	)

	var wg sync.WaitGroup
	sem := make(chan struct{}, *workers)

	for _, userID := range userIDs {
		wg.Add(1)
		sem <- struct{}{}

		go func(userID int) {
			defer wg.Done()
			defer func() { <-sem }()

			sp := splits[userID]
			prof := byUser[userID]

			exclude := make(map[int]bool, len(sp.Train))
			for _, r := range sp.Train {
				exclude[r.MovieID] = true
			}
			relevantSet := make(map[int]bool)
			for _, r := range sp.Test {
				if r.Rating >= *relevant {
					relevantSet[r.MovieID] = true
				}
			}
			if len(relevantSet) == 0 {
				return
			}

			recs, err := recommender.Recommend(prof.Preferences, catalog, exclude, recommend.Options{
				TopN:   *topN,
				Lambda: *lambda,
			})
			if err != nil {
				log.Printf("[pipeline] usuario %d: %v", userID, err)
				return
			}

			recIDs := make([]int, len(recs))
			vectors := make([][]float64, 0, len(recs))
			for i, it := range recs {
				recIDs[i] = it.MovieID
				vectors = append(vectors, catalog[it.MovieID])
			}

			popIDs := eval.PopularityTopN(train, exclude, *topN)
			rndIDs := eval.RandomTopN(allMovieIDs, exclude, *topN, *seed+int64(userID))

			mu.Lock()
			defer mu.Unlock()
			fz.precision += eval.PrecisionAtK(recIDs, relevantSet, *topN)
			fz.recall += eval.RecallAtK(recIDs, relevantSet, *topN)
			fz.ndcg += eval.NDCGAtK(recIDs, relevantSet, *topN)
			fz.diversity += eval.IntraListDiversity(vectors, weights)
			fz.n++

			pop.precision += eval.PrecisionAtK(popIDs, relevantSet, *topN)
			pop.recall += eval.RecallAtK(popIDs, relevantSet, *topN)
			pop.ndcg += eval.NDCGAtK(popIDs, relevantSet, *topN)
			pop.n++

			rnd.precision += eval.PrecisionAtK(rndIDs, relevantSet, *topN)
			rnd.recall += eval.RecallAtK(rndIDs, relevantSet, *topN)
			rnd.ndcg += eval.NDCGAtK(rndIDs, relevantSet, *topN)
			rnd.n++
		}(userID)
	}
	wg.Wait()

	// ============================
	// 6) Reporte
	// ============================
	report := func(name string, a agg, withDiv bool) {
		if a.n == 0 {
			fmt.Printf("%-12s sin usuarios evaluables\n", name)
			return
		}
		n := float64(a.n)
		line := fmt.Sprintf("%-12s P@%d=%.4f  R@%d=%.4f  NDCG@%d=%.4f",
			name, *topN, a.precision/n, *topN, a.recall/n, *topN, a.ndcg/n)
		if withDiv {
			line += fmt.Sprintf("  diversidad=%.4f", a.diversity/n)
		}
		fmt.Println(line)
	}

	fmt.Printf("\nEvaluación sobre %d usuarios (λ=%.2f, test=%.0f%%)\n", fz.n, *lambda, *testFrac*100)
	report("fuzzy-mmr", fz, true)
	report("popularidad", pop, false)
	report("aleatorio", rnd, false)
}
