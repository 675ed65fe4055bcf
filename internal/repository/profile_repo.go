package repository

import (
	"context"

	"fuzzyrec-tf/internal/db"
	"fuzzyrec-tf/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{col: db.DB().Collection("profiles")}
}

// Upsert reemplaza el perfil del usuario: reconstruir produce un documento
// nuevo, nunca se muta el vector de uno existente.
func (r *ProfileRepository) Upsert(ctx context.Context, p *models.ProfileDoc) error {
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"userId": p.UserID},
		p,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID int) (*models.ProfileDoc, error) {
	var p models.ProfileDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
