package repos

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// ErrNotFound is returned when a lookup by natural key matches
// nothing.
var ErrNotFound = errors.New("not found")

type TeamsRepo struct {
	col *mongo.Collection
	lg  *zap.Logger
}

func NewTeamsRepo(db *mongo.Database, lg *zap.Logger) *TeamsRepo {
	return &TeamsRepo{col: db.Collection("teams"), lg: lg}
}

func (r *TeamsRepo) GetByCode(ctx context.Context, code string) (*models.Team, error) {
	var team models.Team
	err := r.col.FindOne(ctx, bson.M{"code": code}).Decode(&team)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("team %q: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find team %q: %w", code, err)
	}
	return &team, nil
}

func (r *TeamsRepo) Create(ctx context.Context, team *models.Team) error {
	if _, err := r.col.InsertOne(ctx, team); err != nil {
		return fmt.Errorf("insert team %q: %w", team.Code, err)
	}
	return nil
}

func (r *TeamsRepo) Replace(ctx context.Context, team *models.Team) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": team.ID}, team)
	if err != nil {
		return fmt.Errorf("replace team %q: %w", team.Code, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("replace team %q: %w", team.Code, ErrNotFound)
	}
	return nil
}
