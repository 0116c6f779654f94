package bondRepo

import (
	"context"

	"suretydesk/database"
	"suretydesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BondRepository interface {
	Create(ctx context.Context, bond models.Bond) (string, error)
	GetByID(ctx context.Context, id string) (*models.Bond, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Bond, error)
	List(ctx context.Context) ([]models.Bond, error)
	Update(ctx context.Context, bond models.Bond) error
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoBondRepo struct {
	coll *mongo.Collection
}

// NewMongoBondRepo returns a new BondRepository instance using MongoDB.
func NewMongoBondRepo() BondRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBondRepo{
		coll: db.Collection("bonds"),
	}
}
