package repository

import (
	"context"
	"time"

	"fuzzyrec-tf/internal/db"
	"fuzzyrec-tf/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{col: db.DB().Collection("movies")}
}

func (r *MovieRepository) GetByID(ctx context.Context, movieID int) (*models.MovieDoc, error) {
	var m models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"movieId": movieID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

func (r *MovieRepository) Upsert(ctx context.Context, m *models.MovieDoc) error {
	if m.CreatedAt == "" {
		m.CreatedAt = time.Now().Format(time.RFC3339)
	}
	m.UpdatedAt = time.Now().Format(time.RFC3339)

	_, err := r.col.UpdateOne(ctx,
		bson.M{"movieId": m.MovieID},
		bson.M{"$set": m},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *MovieRepository) Update(ctx context.Context, m *models.MovieDoc) error {
	m.UpdatedAt = time.Now().Format(time.RFC3339)
	_, err := r.col.UpdateOne(ctx, bson.M{"movieId": m.MovieID}, bson.M{"$set": m})
	return err
}

// SetFuzzy guarda el vector difuso calculado de una película.
func (r *MovieRepository) SetFuzzy(ctx context.Context, movieID int, fuzzy []float64) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"movieId": movieID},
		bson.M{"$set": bson.M{
			"fuzzy":     fuzzy,
			"updatedAt": time.Now().Format(time.RFC3339),
		}},
	)
	return err
}

// AllWithBinary devuelve todas las películas con su vector binario (y el
// difuso si ya existe). Proyección mínima: es el input de los lotes.
func (r *MovieRepository) AllWithBinary(ctx context.Context, onlyMissingFuzzy bool, limit int) ([]models.MovieDoc, error) {
	filter := bson.M{}
	if onlyMissingFuzzy {
		filter["fuzzy"] = bson.M{"$exists": false}
	}

	opts := options.Find().SetProjection(bson.M{
		"movieId": 1, "title": 1, "binary": 1, "fuzzy": 1,
	})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// CountFuzzy cuenta películas totales y con vector difuso ya calculado.
func (r *MovieRepository) CountFuzzy(ctx context.Context) (*models.FuzzySummary, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	withFuzzy, err := r.col.CountDocuments(ctx, bson.M{"fuzzy": bson.M{"$exists": true}})
	if err != nil {
		return nil, err
	}
	missing := total - withFuzzy
	if missing < 0 {
		missing = 0
	}
	return &models.FuzzySummary{
		TotalMovies:        total,
		MoviesWithFuzzy:    withFuzzy,
		MoviesWithoutFuzzy: missing,
	}, nil
}

func (r *MovieRepository) Search(
	ctx context.Context,
	q string,
	genre string,
	yearFrom, yearTo int,
	limit, offset int,
) ([]models.MovieDoc, error) {

	filter := bson.M{}

	if q != "" {
		filter["title"] = bson.M{"$regex": q, "$options": "i"}
	}
	if genre != "" {
		// genres es un array, esto busca que contenga ese género
		filter["genres"] = genre
	}
	if yearFrom > 0 || yearTo > 0 {
		yearCond := bson.M{}
		if yearFrom > 0 {
			yearCond["$gte"] = yearFrom
		}
		if yearTo > 0 {
			yearCond["$lte"] = yearTo
		}
		filter["year"] = yearCond
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// Top por popularidad (count) o rating promedio
func (r *MovieRepository) Top(ctx context.Context, metric string, limit int) ([]models.MovieDoc, error) {
	sortField := "ratingStats.count" // popular
	if metric == "rating" {
		sortField = "ratingStats.average"
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
