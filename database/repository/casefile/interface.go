package caseRepo

import (
	"context"
	"time"

	"suretydesk/database"
	"suretydesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CaseRepository interface {
	Create(ctx context.Context, cf models.CaseFile) (string, error)
	GetByID(ctx context.Context, id string) (*models.CaseFile, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.CaseFile, error)
	List(ctx context.Context) ([]models.CaseFile, error)
	Update(ctx context.Context, cf models.CaseFile) error
	DeleteByID(ctx context.Context, id string) error
	UpcomingCourtDates(ctx context.Context, within time.Duration) ([]models.CaseFile, error)
}

type mongoCaseRepo struct {
	coll *mongo.Collection
}

// NewMongoCaseRepo returns a new CaseRepository instance using MongoDB.
func NewMongoCaseRepo() CaseRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoCaseRepo{
		coll: db.Collection("cases"),
	}
}
