package documentRepo

import (
	"context"

	"suretydesk/database"
	"suretydesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc models.Document) (string, error)
	GetByID(ctx context.Context, id string) (*models.Document, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.Document, error)
	List(ctx context.Context) ([]models.Document, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoDocumentRepo struct {
	coll *mongo.Collection
}

// NewMongoDocumentRepo returns a new DocumentRepository instance using MongoDB.
func NewMongoDocumentRepo() DocumentRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoDocumentRepo{
		coll: db.Collection("documents"),
	}
}
