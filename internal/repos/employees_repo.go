package repos

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

type EmployeesRepo struct {
	col *mongo.Collection
	lg  *zap.Logger
}

func NewEmployeesRepo(db *mongo.Database, lg *zap.Logger) *EmployeesRepo {
	return &EmployeesRepo{col: db.Collection("employees"), lg: lg}
}

func (r *EmployeesRepo) GetByTeam(ctx context.Context, teamID string) ([]*models.Employee, error) {
	cur, err := r.col.Find(ctx, bson.M{"team": teamID})
	if err != nil {
		return nil, fmt.Errorf("find employees for team %s: %w", teamID, err)
	}
	defer cur.Close(ctx)

	var emps []*models.Employee
	if err := cur.All(ctx, &emps); err != nil {
		return nil, fmt.Errorf("decode employees for team %s: %w", teamID, err)
	}
	return emps, nil
}

// Create inserts a new employee and stamps the generated surrogate id
// back onto the model.
func (r *EmployeesRepo) Create(ctx context.Context, emp *models.Employee) error {
	emp.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, emp); err != nil {
		return fmt.Errorf("insert employee %s: %w", emp.CompanyInfo.EmployeeID, err)
	}
	return nil
}

func (r *EmployeesRepo) Replace(ctx context.Context, emp *models.Employee) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": emp.ID}, emp)
	if err != nil {
		return fmt.Errorf("replace employee %s: %w", emp.CompanyInfo.EmployeeID, err)
	}
	return nil
}
