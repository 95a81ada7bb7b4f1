package repos

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// WorksRepo stores work entries as an independent collection keyed by
// employee surrogate id (the normalized half of the aggregate).
type WorksRepo struct {
	col *mongo.Collection
	lg  *zap.Logger
}

func NewWorksRepo(db *mongo.Database, lg *zap.Logger) *WorksRepo {
	return &WorksRepo{col: db.Collection("works"), lg: lg}
}

func (r *WorksRepo) GetAll(ctx context.Context) ([]models.Work, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find works: %w", err)
	}
	defer cur.Close(ctx)

	var works []models.Work
	if err := cur.All(ctx, &works); err != nil {
		return nil, fmt.Errorf("decode works: %w", err)
	}
	return works, nil
}

func (r *WorksRepo) CreateMany(ctx context.Context, works []models.Work) error {
	if len(works) == 0 {
		return nil
	}
	docs := make([]interface{}, len(works))
	for i := range works {
		docs[i] = works[i]
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert %d works: %w", len(works), err)
	}
	r.lg.Info("inserted work entries", zap.Int("count", len(works)))
	return nil
}

func (r *WorksRepo) Replace(ctx context.Context, work *models.Work) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": work.ID}, work)
	if err != nil {
		return fmt.Errorf("replace work %s: %w", work.ID.Hex(), err)
	}
	return nil
}
