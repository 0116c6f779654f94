package clientRepo

import (
	"context"

	"suretydesk/database"
	"suretydesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ClientRepository interface {
	Create(ctx context.Context, client models.Client) (string, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, client models.Client) error
	DeleteByID(ctx context.Context, id string) error
	AppendNotice(ctx context.Context, clientID string, notice models.PortalNotice) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo returns a new ClientRepository instance using MongoDB.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}
